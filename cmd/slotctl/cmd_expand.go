package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func newExpandCmd(opts *options) *cobra.Command {
	var merge bool

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Expand the weekly rule into dated windows",
		Long: `Expand "rule" into one window per matching day. Days whose start already
exists in "windows" are skipped. With --merge the new windows are merged into
"windows" and the resulting set is printed as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, opts)
			if err != nil {
				return err
			}
			if doc.Rule == nil {
				return errors.New(`input has no "rule"`)
			}
			rule, err := doc.Rule.toDomain()
			if err != nil {
				return err
			}

			set, err := doc.canonicalSet()
			if err != nil {
				return err
			}

			created, err := availability.Expand(rule, set)
			if err != nil {
				return err
			}

			out := map[string]interface{}{"created": fromDomainWindows(created)}
			if merge {
				merged, err := availability.InsertAll(set, created...)
				if err != nil {
					return err
				}
				out["windows"] = fromDomainWindows(merged.Windows())
			}

			opts.log.Info("expand: %d windows created", len(created))
			return writeJSON(cmd, out)
		},
	}

	cmd.Flags().BoolVar(&merge, "merge", false, "Also print the merged set")

	return cmd
}

func (r *ruleDoc) toDomain() (domain.RecurringRule, error) {
	rangeStart, err := time.Parse(domain.DateFormat, r.RangeStart)
	if err != nil {
		return domain.RecurringRule{}, fmt.Errorf("rangeStart: %w", err)
	}
	rangeEnd, err := time.Parse(domain.DateFormat, r.RangeEnd)
	if err != nil {
		return domain.RecurringRule{}, fmt.Errorf("rangeEnd: %w", err)
	}

	capacity := r.Capacity
	if capacity == 0 {
		capacity = domain.DefaultWindowCapacity
	}

	return domain.RecurringRule{
		Weekdays:   r.Weekdays,
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		DailyStart: r.DailyStart,
		DailyEnd:   r.DailyEnd,
		Price:      domain.Money(r.Price),
		Capacity:   capacity,
	}, nil
}
