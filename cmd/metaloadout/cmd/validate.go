package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gh6st66/metaloadout.gg/pkg/delta"
	"github.com/gh6st66/metaloadout.gg/pkg/tags"
)

// newValidateCmd creates the validate command.
func newValidateCmd() *cobra.Command {
	var validateTags bool

	cmd := &cobra.Command{
		Use:   "validate <delta.json>",
		Short: "Validate a delta without merging it",
		Args:  cobra.ExactArgs(1),
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

			fmt.Fprintf(cmd.OutOrStdout(), "Delta is valid: %d weapons, %d gadgets, %d specializations\n",
				len(d.Weapons), len(d.Gadgets), len(d.Specializations))
			return nil
		},
	}

	cmd.Flags().BoolVar(&validateTags, "validate-tags", false, "reject tags outside the registry vocabulary")

	return cmd
}
