package calc

import (
	"fmt"

	"github.com/Glubus/minacalc-go/model"
)

// maxReasonableScore bounds what the engine can plausibly return; values
// outside [0, maxReasonableScore] indicate a corrupted foreign call.
const maxReasonableScore = 1000.0

func validateScores(s model.Scores) error {
	values := []float32{
		s.Overall,
		s.Stream,
		s.Jumpstream,
		s.Handstream,
		s.Stamina,
		s.Jackspeed,
		s.Chordjack,
		s.Technical,
	}
	for _, v := range values {
		if v < 0 || v > maxReasonableScore {
			return &InvalidScoreDataError{Score: v}
		}
	}
	return nil
}

func validateAllRates(a model.AllRates) error {
	for i, s := range a.MSDs {
		if err := validateScores(s); err != nil {
			if scoreErr, ok := err.(*InvalidScoreDataError); ok {
				scoreErr.Detail = fmt.Sprintf("rate %.1f", model.RateAt(i))
			}
			return err
		}
	}
	return nil
}
