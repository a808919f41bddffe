package model

// TimingPoint is a raw tempo record as produced by a chart decoder.
// Inherited points (SV changes etc.) carry no bpm of their own and are
// skipped during tempo derivation.
type TimingPoint struct {
	TimeUs    int64
	Bpm       float64
	Inherited bool
	Signature uint8
}

// RawNote is a single keypress event, one entry per column hit. Notes at
// the same time are not pre-merged.
type RawNote struct {
	TimeUs int64
	Column uint8
}

type Metadata struct {
	Title   string
	Artist  string
	Creator string
	Version string
}

// Chart is the decoded form of a rhythm-game chart, format-independent.
type Chart struct {
	Metadata     Metadata
	KeyCount     int
	TimingPoints []TimingPoint
	Notes        []RawNote
}
