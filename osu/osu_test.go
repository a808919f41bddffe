package osu

import (
	"testing"

	"github.com/Glubus/minacalc-go/model"
	"github.com/stretchr/testify/assert"
)

const maniaBeatmap = `osu file format v14

[General]
AudioFilename: audio.mp3
Mode: 3

[Metadata]
Title:Test Song
Artist:Test Artist
Creator:mapper
Version:4K Hard

[Difficulty]
HPDrainRate:8
CircleSize:4
OverallDifficulty:8

[TimingPoints]
0,500,4,2,0,60,1,0
4000,-100,4,2,0,60,0,0
8000,333.333333,4,2,0,60,1,0

[HitObjects]
64,192,0,1,0,0:0:0:0:
192,192,0,1,0,0:0:0:0:
320,192,250,1,0,0:0:0:0:
448,192,500,128,0,1000:0:0:0:0:
`

func TestParseManiaBeatmap(t *testing.T) {
	chart, err := Parse(maniaBeatmap)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("Test Song", chart.Metadata.Title)
	assert.Equal("Test Artist", chart.Metadata.Artist)
	assert.Equal("mapper", chart.Metadata.Creator)
	assert.Equal("4K Hard", chart.Metadata.Version)
	assert.Equal(4, chart.KeyCount)
}

func TestParseTimingPoints(t *testing.T) {
	chart, err := Parse(maniaBeatmap)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(chart.TimingPoints, 3)

	// 500ms per beat = 120 bpm
	assert.Equal(int64(0), chart.TimingPoints[0].TimeUs)
	assert.InDelta(120.0, chart.TimingPoints[0].Bpm, 1e-9)
	assert.False(chart.TimingPoints[0].Inherited)
	assert.Equal(uint8(4), chart.TimingPoints[0].Signature)

	// negative beat length + uninherited flag 0: SV point
	assert.True(chart.TimingPoints[1].Inherited)

	// 333.33ms per beat = 180 bpm
	assert.Equal(int64(8_000_000), chart.TimingPoints[2].TimeUs)
	assert.InDelta(180.0, chart.TimingPoints[2].Bpm, 1e-3)
}

func TestParseHitObjectColumns(t *testing.T) {
	chart, err := Parse(maniaBeatmap)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.RawNote{
		{TimeUs: 0, Column: 0},
		{TimeUs: 0, Column: 1},
		{TimeUs: 250_000, Column: 2},
		{TimeUs: 500_000, Column: 3}, // hold head counts as a note
	}, chart.Notes)
}

func TestParseRejectsNonMania(t *testing.T) {
	standard := `osu file format v14

[General]
Mode: 0

[Difficulty]
CircleSize:4
`
	_, err := Parse(standard)
	assert.ErrorIs(t, err, ErrNotMania)
}

func TestParseRejectsNonBeatmapContent(t *testing.T) {
	_, err := Parse("#TITLE:definitely a .sm file;")
	assert.ErrorIs(t, err, ErrNotBeatmap)
}

func TestParseMalformedTimingPoint(t *testing.T) {
	bad := `osu file format v14

[General]
Mode: 3

[Difficulty]
CircleSize:4

[TimingPoints]
nonsense,alsononsense
`
	_, err := Parse(bad)
	assert.Error(t, err)
}

func TestColumnFromX(t *testing.T) {
	assert := assert.New(t)

	// canonical 4K lane positions
	assert.Equal(uint8(0), columnFromX(64, 4))
	assert.Equal(uint8(1), columnFromX(192, 4))
	assert.Equal(uint8(2), columnFromX(320, 4))
	assert.Equal(uint8(3), columnFromX(448, 4))

	// out-of-range positions clamp
	assert.Equal(uint8(0), columnFromX(-10, 4))
	assert.Equal(uint8(3), columnFromX(512, 4))

	// 7K spreads over the same playfield
	assert.Equal(uint8(0), columnFromX(36, 7))
	assert.Equal(uint8(6), columnFromX(475, 7))
}
