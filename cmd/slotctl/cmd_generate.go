package main

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func newGenerateCmd(opts *options) *cobra.Command {
	var (
		duration int
		windowID string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Tile windows into slots and mark the booked ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, opts)
			if err != nil {
				return err
			}

			set, err := doc.canonicalSet()
			if err != nil {
				return err
			}
			booked := doc.bookedSlots()

			slots := make([]slotDoc, 0)
			for _, w := range set.Windows() {
				if windowID != "" && w.ID != windowID {
					continue
				}
				candidates, err := availability.Generate(w, duration)
				if err != nil {
					return err
				}
				for _, c := range candidates {
					s, err := decide(c, set, availability.Validate(c, set, booked))
					if err != nil {
						return err
					}
					slots = append(slots, s)
				}
			}

			opts.log.Info("generate: %d slots of %d minutes", len(slots), duration)
			return writeJSON(cmd, map[string]interface{}{"slots": slots})
		},
	}

	cmd.Flags().IntVarP(&duration, "duration", "d", domain.DefaultSlotDurationMinutes, "Slot duration in minutes")
	cmd.Flags().StringVar(&windowID, "window", "", "Only tile the window with this id")

	return cmd
}
