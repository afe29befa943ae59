package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gh6st66/metaloadout.gg/pkg/catalog"
	"github.com/gh6st66/metaloadout.gg/pkg/errors"
	"github.com/gh6st66/metaloadout.gg/pkg/save"
)

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	var version string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty catalog document",
		Long: `Create an empty catalog document at the configured path.

The version flag sets the starting version; major and minor components
are operator territory and are never bumped by ingestion.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := catalogPath()

			if !force {
				if _, err := save.Load(path); err == nil {
					return fmt.Errorf("catalog already exists at %s (use --force to overwrite)", path)
				} else if !errors.IsNotFound(err) {
					return err
				}
			}

			if _, err := catalog.ParseVersion(version); err != nil {
				return err
			}

			if err := save.Save(path, catalog.NewWithVersion(version)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s at version %s\n", path, version)
			return nil
		},
	}

	cmd.Flags().StringVar(&version, "version", catalog.DefaultVersion, "starting catalog version")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing catalog")

	return cmd
}
