package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// document входной JSON документ
type document struct {
	Windows []windowDoc   `json:"windows"`
	Insert  []windowDoc   `json:"insert,omitempty"`
	Booked  []intervalDoc `json:"booked,omitempty"`
	Rule    *ruleDoc      `json:"rule,omitempty"`
}

type windowDoc struct {
	ID       string    `json:"id,omitempty"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Price    int64     `json:"price"`
	Capacity int       `json:"capacity,omitempty"`
}

type intervalDoc struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type ruleDoc struct {
	Weekdays   []time.Weekday   `json:"weekdays"` // 0 = воскресенье
	RangeStart string           `json:"rangeStart"`
	RangeEnd   string           `json:"rangeEnd"`
	DailyStart types.TimeString `json:"dailyStart"`
	DailyEnd   types.TimeString `json:"dailyEnd"`
	Price      int64            `json:"price"`
	Capacity   int              `json:"capacity,omitempty"`
}

// slotDoc слот в выводе
type slotDoc struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	WindowID string    `json:"windowId,omitempty"`
	Price    int64     `json:"price,omitempty"`
	Accepted bool      `json:"accepted"`
	Reason   string    `json:"reason,omitempty"`
}

func readDocument(cmd *cobra.Command, opts *options) (*document, error) {
	var r io.Reader = cmd.InOrStdin()
	if opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	opts.log.Debug("slotctl: read %d windows, %d booked", len(doc.Windows), len(doc.Booked))
	return &doc, nil
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (d windowDoc) toDomain() domain.Window {
	capacity := d.Capacity
	if capacity == 0 {
		capacity = domain.DefaultWindowCapacity
	}
	return domain.Window{
		ID:       d.ID,
		Interval: domain.Interval{Start: d.Start.UTC(), End: d.End.UTC()},
		Price:    domain.Money(d.Price),
		Capacity: capacity,
	}
}

func fromDomainWindows(ws []domain.Window) []windowDoc {
	out := make([]windowDoc, 0, len(ws))
	for _, w := range ws {
		out = append(out, windowDoc{
			ID:       w.ID,
			Start:    w.Start,
			End:      w.End,
			Price:    int64(w.Price),
			Capacity: w.Capacity,
		})
	}
	return out
}

// canonicalSet сливает окна документа в канонический набор
func (d *document) canonicalSet() (availability.CanonicalSet, error) {
	ws := make([]domain.Window, 0, len(d.Windows))
	for _, w := range d.Windows {
		ws = append(ws, w.toDomain())
	}
	return availability.NewCanonicalSet(ws...)
}

func (d *document) bookedSlots() []domain.BookedSlot {
	out := make([]domain.BookedSlot, 0, len(d.Booked))
	for _, b := range d.Booked {
		out = append(out, domain.BookedSlot{Interval: domain.Interval{Start: b.Start.UTC(), End: b.End.UTC()}})
	}
	return out
}

// decide переводит результат проверки в slotDoc.
// Ошибки, не являющиеся отказом по слоту, возвращаются как есть.
func decide(c domain.CandidateSlot, set availability.CanonicalSet, err error) (slotDoc, error) {
	out := slotDoc{Start: c.Start, End: c.End}
	if err != nil {
		reason := domain.ReasonOf(err)
		if reason == domain.ReasonNone {
			return out, err
		}
		out.Reason = string(reason)
		return out, nil
	}

	out.Accepted = true
	if w, ok := set.Find(c.Interval); ok {
		out.WindowID = w.ID
		out.Price = int64(w.Price)
	}
	return out, nil
}
