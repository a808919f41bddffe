// Package timing handles tempo extraction and note quantization.
//
// Charts carry freeform timestamps; the calculator wants rows snapped to
// musical positions. Notes are snapped to a fixed 1/192-beat grid, the
// finest subdivision Etterna recognizes, using bidirectional time/beat
// conversion over the chart's BPM sections.
package timing

import (
	"math"
	"sort"

	"github.com/Glubus/minacalc-go/model"
)

// GridDivision is the snap resolution in grid lines per beat.
const GridDivision = 192

const usPerSecond = 1_000_000.0

const defaultBpm = 120.0

// BpmSection is one tempo region of a chart. StartBeat is the cumulative
// beat position at which the section begins, so sections are sorted
// ascending by both StartTimeUs and StartBeat.
type BpmSection struct {
	StartTimeUs int64
	Bpm         float64
	StartBeat   float64
}

// BuildSections derives BPM sections from raw timing points. Only
// non-inherited points with a positive bpm participate. Always returns at
// least one section; with no usable points the chart is treated as a flat
// 120 bpm.
func BuildSections(points []model.TimingPoint) []BpmSection {
	var usable []model.TimingPoint
	for _, tp := range points {
		if !tp.Inherited && tp.Bpm > 0 {
			usable = append(usable, tp)
		}
	}

	if len(usable) == 0 {
		return []BpmSection{{StartTimeUs: 0, Bpm: defaultBpm, StartBeat: 0}}
	}

	sort.Slice(usable, func(i, j int) bool {
		return usable[i].TimeUs < usable[j].TimeUs
	})

	sections := make([]BpmSection, 0, len(usable))
	sections = append(sections, BpmSection{
		StartTimeUs: usable[0].TimeUs,
		Bpm:         usable[0].Bpm,
		StartBeat:   0,
	})
	for _, tp := range usable[1:] {
		prev := sections[len(sections)-1]
		deltaSec := float64(tp.TimeUs-prev.StartTimeUs) / usPerSecond
		sections = append(sections, BpmSection{
			StartTimeUs: tp.TimeUs,
			Bpm:         tp.Bpm,
			StartBeat:   prev.StartBeat + deltaSec*(prev.Bpm/60.0),
		})
	}
	return sections
}

// sectionAtTime returns the last section starting at or before timeUs.
// Times before the first section fall back to it (beat positions
// extrapolate backward).
func sectionAtTime(sections []BpmSection, timeUs int64) BpmSection {
	i := sort.Search(len(sections), func(j int) bool {
		return sections[j].StartTimeUs > timeUs
	}) - 1
	if i < 0 {
		i = 0
	}
	return sections[i]
}

// sectionAtBeat returns the last section starting at or before beat.
func sectionAtBeat(sections []BpmSection, beat float64) BpmSection {
	i := sort.Search(len(sections), func(j int) bool {
		return sections[j].StartBeat > beat
	}) - 1
	if i < 0 {
		i = 0
	}
	return sections[i]
}

// safeBpm guards against degenerate sections. BuildSections never emits
// bpm <= 0, but a zero here would divide by zero downstream.
func safeBpm(bpm float64) float64 {
	if bpm <= 0 {
		return defaultBpm
	}
	return bpm
}

// TimeToBeat converts an absolute time in microseconds to a beat position.
func TimeToBeat(timeUs int64, sections []BpmSection) float64 {
	s := sectionAtTime(sections, timeUs)
	deltaSec := float64(timeUs-s.StartTimeUs) / usPerSecond
	return s.StartBeat + deltaSec*(safeBpm(s.Bpm)/60.0)
}

// BeatToTime converts a beat position back to an absolute time in
// microseconds. Inverse of TimeToBeat up to rounding.
func BeatToTime(beat float64, sections []BpmSection) int64 {
	s := sectionAtBeat(sections, beat)
	deltaUs := (beat - s.StartBeat) * (60.0 / safeBpm(s.Bpm)) * usPerSecond
	return s.StartTimeUs + int64(math.Round(deltaUs))
}

// Quantize snaps a time to the nearest 1/192-beat grid line. Idempotent:
// a time already on the grid maps to itself.
func Quantize(timeUs int64, sections []BpmSection) int64 {
	beat := TimeToBeat(timeUs, sections)
	snapped := math.Round(beat*GridDivision) / GridDivision
	return BeatToTime(snapped, sections)
}
