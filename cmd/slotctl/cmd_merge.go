package main

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
)

func newMergeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "Merge windows into the canonical set",
		Long: `Build the canonical set from "windows", then insert each entry of "insert"
in order. Overlapping and touching windows are merged; the earliest entry keeps
its id, price and capacity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, opts)
			if err != nil {
				return err
			}

			set, err := doc.canonicalSet()
			if err != nil {
				return err
			}
			for _, w := range doc.Insert {
				if set, err = availability.Insert(set, w.toDomain()); err != nil {
					return err
				}
			}

			opts.log.Info("merge: %d input windows, %d inserted, %d in result",
				len(doc.Windows), len(doc.Insert), set.Len())
			return writeJSON(cmd, map[string]interface{}{"windows": fromDomainWindows(set.Windows())})
		},
	}
}
