package convert

import (
	"testing"

	"github.com/Glubus/minacalc-go/model"
	"github.com/Glubus/minacalc-go/timing"
	"github.com/stretchr/testify/assert"
)

func flat120Sections() []timing.BpmSection {
	return timing.BuildSections([]model.TimingPoint{{TimeUs: 0, Bpm: 120}})
}

func TestToNotesMergesSimultaneousColumns(t *testing.T) {
	raw := []model.RawNote{
		{TimeUs: 125_000, Column: 0},
		{TimeUs: 125_000, Column: 1},
	}

	notes, err := ToNotes(raw, flat120Sections(), 1.0)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Note{{Notes: 0b11, RowTime: 0.125}}, notes)
}

func TestToNotesRejectsNonPositiveRate(t *testing.T) {
	raw := []model.RawNote{{TimeUs: 0, Column: 0}}

	assert := assert.New(t)
	for _, rate := range []float32{0, -1.5} {
		_, err := ToNotes(raw, flat120Sections(), rate)
		var rateErr *InvalidRateError
		assert.ErrorAs(err, &rateErr)
		assert.Equal(rate, rateErr.Rate)
	}
}

func TestToNotesEmptyChart(t *testing.T) {
	_, err := ToNotes(nil, flat120Sections(), 1.0)
	assert.ErrorIs(t, err, ErrNoNotes)
}

func TestToNotesSortedStrictlyAscending(t *testing.T) {
	raw := []model.RawNote{
		{TimeUs: 1_000_000, Column: 3},
		{TimeUs: 0, Column: 0},
		{TimeUs: 500_000, Column: 2},
		{TimeUs: 500_000, Column: 1},
		{TimeUs: 250_000, Column: 0},
	}

	notes, err := ToNotes(raw, flat120Sections(), 1.0)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(notes, 4)
	for i := 1; i < len(notes); i++ {
		assert.Greater(notes[i].RowTime, notes[i-1].RowTime)
	}
	assert.Equal(uint32(0b0110), notes[2].Notes)
}

func TestToNotesRateScalingIsLinear(t *testing.T) {
	raw := []model.RawNote{
		{TimeUs: 250_000, Column: 0},
		{TimeUs: 500_000, Column: 1},
		{TimeUs: 1_000_000, Column: 2},
	}
	sections := flat120Sections()

	assert := assert.New(t)

	base, err := ToNotes(raw, sections, 1.0)
	assert.NoError(err)
	double, err := ToNotes(raw, sections, 2.0)
	assert.NoError(err)

	assert.Len(double, len(base))
	for i := range base {
		assert.InDelta(base[i].RowTime/2.0, double[i].RowTime, 1e-6)
	}
}

func TestToNotesRejectsNegativeTimes(t *testing.T) {
	raw := []model.RawNote{{TimeUs: -600_000, Column: 0}}

	_, err := ToNotes(raw, flat120Sections(), 1.0)

	var noteErr *InvalidNoteError
	assert.ErrorAs(t, err, &noteErr)
}

func TestChartToNotesEndToEnd(t *testing.T) {
	chart := &model.Chart{
		KeyCount:     4,
		TimingPoints: []model.TimingPoint{{TimeUs: 0, Bpm: 120}},
		Notes: []model.RawNote{
			{TimeUs: 125_000, Column: 0},
			{TimeUs: 125_000, Column: 1},
		},
	}

	notes, err := ChartToNotes(chart, 1.0)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Note{{Notes: 0b11, RowTime: 0.125}}, notes)
}

func TestChartToNotesDefaultTempo(t *testing.T) {
	// no timing points at all: flat 120 bpm, a note one beat in stays put
	chart := &model.Chart{
		KeyCount: 4,
		Notes:    []model.RawNote{{TimeUs: 500_000, Column: 2}},
	}

	notes, err := ChartToNotes(chart, 1.0)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Note{{Notes: 0b100, RowTime: 0.5}}, notes)
}

func TestValidateNotes(t *testing.T) {
	assert := assert.New(t)

	assert.ErrorIs(ValidateNotes(nil), ErrNoNotes)
	assert.NoError(ValidateNotes([]model.Note{{Notes: 1, RowTime: 0}}))

	err := ValidateNotes([]model.Note{{Notes: 1, RowTime: 0}, {Notes: 0, RowTime: 1}})
	var noteErr *InvalidNoteError
	assert.ErrorAs(err, &noteErr)
	assert.Equal(1, noteErr.Index)

	err = ValidateNotes([]model.Note{{Notes: 1, RowTime: -0.5}})
	assert.ErrorAs(err, &noteErr)
}
