package cli

import (
	"fmt"

	"github.com/21tools/sdkbanner/internal/banner"
	"github.com/spf13/cobra"
)

func newHideCommand(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "hide",
		Short: "Hide the VRChat SDK banner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetVisibility(cmd, opts, banner.Hidden, force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "rewrite the stylesheet even if the banner is already hidden")
	return cmd
}

func newShowCommand(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the VRChat SDK banner again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetVisibility(cmd, opts, banner.Shown, force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "rewrite the stylesheet even if the banner is already shown")
	return cmd
}

func newToggleCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Hide the banner if it is shown, show it if it is hidden",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.Close()

			res, err := s.toggler.Toggle()
			if err != nil {
				return err
			}
			reportResult(cmd, res, fmt.Sprintf("VRC SDK banner %s.", visibilityWord(res.Visible)))
			return nil
		},
	}
}

func newSetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set PERCENT",
		Short: "Set the banner's max-height to an exact percentage (0% hides it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := banner.ParsePercent(args[0])
			if err != nil {
				return err
			}
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.Close()

			res, err := s.toggler.SetVisibility(p)
			if err != nil {
				return err
			}
			reportResult(cmd, res, fmt.Sprintf("VRC SDK banner max-height set to %s.", p))
			return nil
		},
	}
}

// runSetVisibility applies the same guard as the editor menu items: hiding
// is only offered while the banner is shown and vice versa. When the state
// cannot be determined the write is attempted so the real error surfaces.
func runSetVisibility(cmd *cobra.Command, opts *rootOptions, p banner.Percent, force bool) error {
	s, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	want := p.Visible()
	if !force {
		st := s.toggler.Inspect()
		if st.Err == nil && st.Visible == want {
			fmt.Fprintf(cmd.OutOrStdout(), "VRC SDK banner already %s.\n", visibilityWord(want))
			return nil
		}
	}

	res, err := s.toggler.SetVisibility(p)
	if err != nil {
		return err
	}
	reportResult(cmd, res, fmt.Sprintf("VRC SDK banner %s.", visibilityWord(want)))
	return nil
}

func reportResult(cmd *cobra.Command, res banner.Result, message string) {
	if !res.Matched {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: line %d has no max-height percentage; stylesheet left unchanged\n", res.Line)
		message = "VRC SDK banner unchanged."
	}
	fmt.Fprintln(cmd.OutOrStdout(), message)
}
