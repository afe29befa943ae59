package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gh6st66/metaloadout.gg/pkg/catalog"
	"github.com/gh6st66/metaloadout.gg/pkg/save"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	var asJSON bool
	var asYAML bool
	var showProvenance bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the catalog summary or full document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := save.Load(catalogPath())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			switch {
			case asJSON:
				data, err := json.MarshalIndent(cat, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			case asYAML:
				return save.ExportYAML(out, cat)
			case showProvenance:
				if len(cat.Provenance) == 0 {
					fmt.Fprintln(out, "No ingestions recorded")
					return nil
				}
				for i := range cat.Provenance {
					entry := cat.Provenance[i]
					fmt.Fprintf(out, "%3d  %s  %s\n", i+1, entry.Timestamp, entry.String())
				}
			default:
				fmt.Fprintf(out, "Catalog %s (updated %s)\n", cat.Version, cat.UpdatedAt)
				for _, c := range catalog.Categories() {
					fmt.Fprintf(out, "  %-16s %d\n", c.String(), len(cat.Entities(c)))
				}
				fmt.Fprintf(out, "  %-16s %d synergy, %d counters\n", "meta", len(cat.Meta.Synergy), len(cat.Meta.Counters))
				fmt.Fprintf(out, "  %-16s %d entries\n", "provenance", len(cat.Provenance))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full catalog document as JSON")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the full catalog document as YAML")
	cmd.Flags().BoolVar(&showProvenance, "provenance", false, "list the ingestion audit trail")

	return cmd
}
