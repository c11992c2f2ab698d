package cli

import (
	"errors"
	"fmt"

	"github.com/21tools/sdkbanner/internal/banner"
	"github.com/21tools/sdkbanner/internal/hostrefresh"
	"github.com/21tools/sdkbanner/internal/project"
	"github.com/spf13/cobra"
)

func newDoctorCommand(opts *rootOptions) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose why the banner cannot be toggled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, opts, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show passing checks too")
	return cmd
}

type doctorContext struct {
	Project *project.Project
	State   *banner.State
}

type doctorCheck struct {
	Name string
	Fn   func(*doctorContext) error
}

func runDoctor(cmd *cobra.Command, opts *rootOptions, verbose bool) error {
	ctx := &doctorContext{}
	checks := []doctorCheck{
		{Name: "Unity project", Fn: func(c *doctorContext) error {
			proj, err := loadProject(opts)
			if err != nil {
				return err
			}
			c.Project = proj
			st := banner.New(proj.StylePath).Inspect()
			c.State = &st
			return nil
		}},
		{Name: "SDK stylesheet present", Fn: func(c *doctorContext) error {
			if c.State == nil {
				return errors.New("project not found")
			}
			if !c.State.Exists {
				return fmt.Errorf("missing %s; is com.vrchat.base installed?", banner.StylePath)
			}
			return nil
		}},
		{Name: fmt.Sprintf("stylesheet has line %d", banner.TargetLineNumber), Fn: func(c *doctorContext) error {
			if c.State == nil || !c.State.Exists {
				return errors.New("stylesheet unavailable")
			}
			if c.State.LineCount < banner.TargetLineNumber {
				return fmt.Errorf("only %d lines", c.State.LineCount)
			}
			return nil
		}},
		{Name: fmt.Sprintf("line %d declares max-height", banner.TargetLineNumber), Fn: func(c *doctorContext) error {
			if c.State == nil || c.State.LineCount < banner.TargetLineNumber {
				return errors.New("line unavailable")
			}
			if !c.State.Matched {
				return fmt.Errorf("found %q; the SDK layout may have changed", c.State.Line)
			}
			return nil
		}},
		{Name: "refresh script parses", Fn: func(c *doctorContext) error {
			if c.Project == nil {
				return errors.New("project not found")
			}
			_, err := hostrefresh.Parse(c.Project.Config.Refresh.Run)
			return err
		}},
	}

	var failures []string
	for _, check := range checks {
		err := check.Fn(ctx)
		if err != nil {
			failures = append(failures, fmt.Sprintf("✗ %s: %v", check.Name, err))
			continue
		}
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", check.Name)
		}
	}

	if len(failures) > 0 {
		for _, failure := range failures {
			fmt.Fprintln(cmd.ErrOrStderr(), failure)
		}
		return fmt.Errorf("%d doctor checks failed", len(failures))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "healthy!")
	return nil
}
