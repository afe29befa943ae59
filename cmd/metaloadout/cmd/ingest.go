package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentstation/utc"
	"github.com/spf13/cobra"

	"github.com/gh6st66/metaloadout.gg/pkg/delta"
	"github.com/gh6st66/metaloadout.gg/pkg/errors"
	"github.com/gh6st66/metaloadout.gg/pkg/provenance"
	"github.com/gh6st66/metaloadout.gg/pkg/reconcile"
	"github.com/gh6st66/metaloadout.gg/pkg/save"
	"github.com/gh6st66/metaloadout.gg/pkg/tags"
)

// newIngestCmd creates the ingest command.
func newIngestCmd() *cobra.Command {
	var source string
	var dryRun bool
	var validateTags bool

	cmd := &cobra.Command{
		Use:   "ingest <delta.json>",
		Short: "Merge an extracted delta into the catalog",
		Long: `Merge an extracted transcript delta into the catalog document.

The delta is normalized first; a malformed delta is rejected as a whole
and the catalog is left untouched. On success the patch version bumps
by one and a provenance entry records what changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := loadDelta(args[0])
			if err != nil {
				return err
			}

			var normOpts []delta.Option
			if validateTags {
				normOpts = append(normOpts, delta.WithRegistry(tags.Valid))
			}
			d, err := delta.NewNormalizer(normOpts...).Normalize(raw)
			if err != nil {
				return err
			}

			path := catalogPath()
			cur, err := save.Load(path)
			if err != nil {
				return err
			}

			desc := provenance.Descriptor{Source: source, Timestamp: utc.Now()}
			if source == "" {
				desc.Source = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}

			next, err := reconcile.New().Merge(cur, d, desc)
			if err != nil {
				return err
			}

			entry := next.Provenance[len(next.Provenance)-1]
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "Would merge %s -> %s: %s\n", cur.Version, next.Version, entry.String())
				return nil
			}

			if err := save.Save(path, next); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Merged %s -> %s: %s\n", cur.Version, next.Version, entry.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "provenance source identifier (defaults to the delta file name)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute the merge without writing the catalog")
	cmd.Flags().BoolVar(&validateTags, "validate-tags", false, "reject tags outside the registry vocabulary")

	return cmd
}

// loadDelta reads a raw delta JSON file.
func loadDelta(path string) (*delta.Raw, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a CLI argument
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("delta", path)
		}
		return nil, errors.WrapIO("read", path, err)
	}

	var raw delta.Raw
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return &raw, nil
}
