package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sequentialAllRates() AllRates {
	var a AllRates
	for i := range a.MSDs {
		a.MSDs[i] = Scores{Overall: float32(i)}
	}
	return a
}

func TestRateAt(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(0.7, RateAt(0), 1e-6)
	assert.InDelta(1.0, RateAt(3), 1e-6)
	assert.InDelta(2.0, RateAt(13), 1e-6)
}

func TestAsMapKeysAreOneDecimalRates(t *testing.T) {
	m := sequentialAllRates().AsMap()

	assert := assert.New(t)
	assert.Len(m, NumRates)
	assert.Equal(float32(0), m["0.7"].Overall)
	assert.Equal(float32(3), m["1.0"].Overall)
	assert.Equal(float32(13), m["2.0"].Overall)
}

func TestRateScoresLookup(t *testing.T) {
	a := sequentialAllRates()

	assert := assert.New(t)
	for i := 0; i < NumRates; i++ {
		s, err := a.RateScores(RateAt(i))
		assert.NoError(err)
		assert.Equal(float32(i), s.Overall)
	}

	_, err := a.RateScores(0.6)
	assert.Error(err)
	_, err = a.RateScores(2.1)
	assert.Error(err)
}

func TestAvailableRates(t *testing.T) {
	rates := AllRates{}.AvailableRates()

	assert := assert.New(t)
	assert.Len(rates, NumRates)
	assert.InDelta(0.7, rates[0], 1e-6)
	assert.InDelta(2.0, rates[13], 1e-6)
}

func TestSkillsetAliases(t *testing.T) {
	s := Scores{Jumpstream: 12.1, Handstream: 9.3}

	assert := assert.New(t)
	assert.Equal(s.Jumpstream, s.Chordstream())
	assert.Equal(s.Handstream, s.Bracketing())
}
