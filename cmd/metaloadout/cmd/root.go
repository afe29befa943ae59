// Package cmd implements the metaloadout CLI commands.
package cmd

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gh6st66/metaloadout.gg/pkg/logging"
)

const defaultCatalogPath = "catalog.json"

// newRootCmd creates the root command with all subcommands attached.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "metaloadout",
		Short: "Manage the metaloadout item catalog",
		Long: `metaloadout ingests extracted transcript deltas into the canonical
versioned catalog of weapons, gadgets, and specializations.

The catalog lives in a single JSON document. Every ingestion bumps the
patch version and appends one provenance entry; the document is never
partially merged.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("catalog", "c", defaultCatalogPath, "path to the catalog document")
	_ = viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))

	rootCmd.AddCommand(
		newInitCmd(),
		newIngestCmd(),
		newValidateCmd(),
		newShowCmd(),
	)

	return rootCmd
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	// A missing .env file is fine; explicit env always wins.
	_ = godotenv.Load()

	viper.SetConfigName("metaloadout")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("METALOADOUT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		logging.Error().Err(err).Msg("Command failed")
		return err
	}
	return nil
}

// catalogPath resolves the configured catalog document path.
func catalogPath() string {
	if path := viper.GetString("catalog"); path != "" {
		return path
	}
	return defaultCatalogPath
}
