package model

import "fmt"

// NumRates is the number of full rates covered by an all-rates
// calculation: 0.7x through 2.0x in 0.1 steps.
const NumRates = 14

// Scores holds the eight skillset ratings returned by the calculator.
type Scores struct {
	Overall    float32 `json:"overall"`
	Stream     float32 `json:"stream"`
	Jumpstream float32 `json:"jumpstream"`
	Handstream float32 `json:"handstream"`
	Stamina    float32 `json:"stamina"`
	Jackspeed  float32 `json:"jackspeed"`
	Chordjack  float32 `json:"chordjack"`
	Technical  float32 `json:"technical"`
}

// Chordstream is the 6K/7K reading of the jumpstream skillset.
func (s Scores) Chordstream() float32 {
	return s.Jumpstream
}

// Bracketing is the 6K/7K reading of the handstream skillset.
func (s Scores) Bracketing() float32 {
	return s.Handstream
}

// AllRates holds scores for every rate from 0.7x to 2.0x. Index i
// corresponds to rate i/10 + 0.7.
type AllRates struct {
	MSDs [NumRates]Scores `json:"msds"`
}

// RateAt returns the nominal music rate for an all-rates index.
func RateAt(i int) float32 {
	return float32(i)/10.0 + 0.7
}

// AsMap returns the scores keyed by rate formatted to one decimal,
// e.g. "0.7", "1.0", "2.0".
func (a AllRates) AsMap() map[string]Scores {
	m := make(map[string]Scores, NumRates)
	for i, s := range a.MSDs {
		m[fmt.Sprintf("%.1f", RateAt(i))] = s
	}
	return m
}

// RateScores returns the scores for a specific nominal rate.
func (a AllRates) RateScores(rate float32) (Scores, error) {
	if rate < 0.7 || rate > 2.0 {
		return Scores{}, fmt.Errorf("rate %v is out of valid range [0.7, 2.0]", rate)
	}
	i := int((rate-0.7)*10.0 + 0.5)
	if i >= NumRates {
		i = NumRates - 1
	}
	return a.MSDs[i], nil
}

// AvailableRates lists every rate covered by an all-rates calculation.
func (a AllRates) AvailableRates() []float32 {
	rates := make([]float32, NumRates)
	for i := range rates {
		rates[i] = RateAt(i)
	}
	return rates
}
