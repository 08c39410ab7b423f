package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func newPickCmd(opts *options) *cobra.Command {
	var (
		date        string
		click       float64
		duration    int
		granularity int
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Turn a click on the day timeline into a validated slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				return errors.New("--date is required")
			}
			day, err := time.Parse(domain.DateFormat, date)
			if err != nil {
				return err
			}

			doc, err := readDocument(cmd, opts)
			if err != nil {
				return err
			}
			set, err := doc.canonicalSet()
			if err != nil {
				return err
			}

			picker := availability.NewPicker(granularity)
			candidate, pickErr := picker.PickFromClick(click, day, duration, set, doc.bookedSlots())
			result, err := decide(candidate, set, pickErr)
			if err != nil {
				return err
			}

			opts.log.Info("pick: click=%v -> %s accepted=%t", click, result.Start.Format("15:04"), result.Accepted)
			return writeJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day of the timeline, YYYY-MM-DD")
	cmd.Flags().Float64Var(&click, "click", 0, "Click position, 0.0 = midnight, 1.0 = end of day")
	cmd.Flags().IntVarP(&duration, "duration", "d", domain.DefaultSlotDurationMinutes, "Slot duration in minutes")
	cmd.Flags().IntVar(&granularity, "granularity", domain.DefaultPickGranularityMinutes, "Rounding step in minutes")

	return cmd
}
