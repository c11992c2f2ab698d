package cli

import (
	"fmt"

	"github.com/21tools/sdkbanner/internal/config"
	"github.com/spf13/cobra"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default " + config.FileName + " at the Unity project root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := loadProject(opts)
			if err != nil {
				return err
			}
			_, created, err := proj.EnsureConfig()
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", config.FileName)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", config.FileName)
			return nil
		},
	}
}
