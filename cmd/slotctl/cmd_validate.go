package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func newValidateCmd(opts *options) *cobra.Command {
	var (
		start    string
		duration int
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check one candidate slot against windows and booked slots",
		Long: `Check that the candidate lies inside a single window and does not overlap
any booked slot. out_of_range is reported before conflict.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if start == "" {
				return errors.New("--start is required")
			}
			startAt, err := time.Parse(time.RFC3339, start)
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

			candidate := domain.NewCandidateSlot(startAt.UTC(), duration)
			result, err := decide(candidate, set, availability.Validate(candidate, set, doc.bookedSlots()))
			if err != nil {
				return err
			}

			opts.log.Info("validate: %s accepted=%t reason=%s", start, result.Accepted, result.Reason)
			return writeJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Candidate start, RFC3339")
	cmd.Flags().IntVarP(&duration, "duration", "d", domain.DefaultSlotDurationMinutes, "Slot duration in minutes")

	return cmd
}
