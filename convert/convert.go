// Package convert turns decoded charts into the canonical note stream the
// calculator consumes: quantized, rate-scaled, merged by row and sorted.
package convert

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Glubus/minacalc-go/model"
	"github.com/Glubus/minacalc-go/timing"
)

// ErrNoNotes means the chart produced an empty note stream.
var ErrNoNotes = errors.New("no notes found in chart")

// InvalidRateError means a non-positive playback rate was requested.
type InvalidRateError struct {
	Rate float32
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("invalid rate: %v (must be positive)", e.Rate)
}

// InvalidNoteError means a merged note failed validation.
type InvalidNoteError struct {
	Index  int
	Reason string
}

func (e *InvalidNoteError) Error() string {
	return fmt.Sprintf("invalid note %d: %s", e.Index, e.Reason)
}

// ToNotes converts raw keypress events into the canonical note stream.
// Each note is snapped to the 1/192-beat grid, scaled by the playback
// rate in the integer-microsecond domain, and notes sharing a scaled time
// are merged into a single row by OR-ing their column bitmasks. The
// result is sorted ascending by time with strictly unique times.
func ToNotes(raw []model.RawNote, sections []timing.BpmSection, rate float32) ([]model.Note, error) {
	if rate <= 0 {
		return nil, &InvalidRateError{Rate: rate}
	}

	// merge rows through a time-keyed map; ordering is restored by the
	// final sort
	rows := make(map[int64]uint32)
	for _, n := range raw {
		quantizedUs := timing.Quantize(n.TimeUs, sections)
		scaledUs := int64(float64(quantizedUs) / float64(rate))
		rows[scaledUs] |= 1 << n.Column
	}

	if len(rows) == 0 {
		return nil, ErrNoNotes
	}

	notes := make([]model.Note, 0, len(rows))
	for timeUs, mask := range rows {
		notes = append(notes, model.Note{
			Notes:   mask,
			RowTime: float32(timeUs) / 1_000_000.0,
		})
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].RowTime < notes[j].RowTime
	})

	if err := ValidateNotes(notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// ChartToNotes converts a decoded chart at the given playback rate.
func ChartToNotes(chart *model.Chart, rate float32) ([]model.Note, error) {
	sections := timing.BuildSections(chart.TimingPoints)
	return ToNotes(chart.Notes, sections, rate)
}

// ValidateNotes checks a note stream is non-empty with no zero-mask or
// negative-time rows.
func ValidateNotes(notes []model.Note) error {
	if len(notes) == 0 {
		return ErrNoNotes
	}
	for i, n := range notes {
		if n.Notes == 0 {
			return &InvalidNoteError{Index: i, Reason: "note has no columns"}
		}
		if n.RowTime < 0 {
			return &InvalidNoteError{Index: i, Reason: "note has negative time"}
		}
	}
	return nil
}
