package calc

import (
	"errors"
	"fmt"
)

// ErrCalculatorCreationFailed means the engine could not allocate a
// calculator handle, or the session was already closed.
var ErrCalculatorCreationFailed = errors.New("failed to create calculator")

// ErrNoNotesProvided means a calculation was requested with an empty
// note stream.
var ErrNoNotesProvided = errors.New("no notes provided for calculation")

// InvalidMusicRateError means a non-positive music rate was requested.
type InvalidMusicRateError struct {
	Rate float32
}

func (e *InvalidMusicRateError) Error() string {
	return fmt.Sprintf("invalid music rate: %v (must be positive)", e.Rate)
}

// InvalidScoreGoalError means a capped calculation was requested with a
// score goal outside (0, 1].
type InvalidScoreGoalError struct {
	Goal float32
}

func (e *InvalidScoreGoalError) Error() string {
	return fmt.Sprintf("invalid score goal: %v (must be in (0, 1])", e.Goal)
}

// UnsupportedKeyCountError means the chart's key mode is not one the
// engine can score.
type UnsupportedKeyCountError struct {
	KeyCount uint32
}

func (e *UnsupportedKeyCountError) Error() string {
	return fmt.Sprintf("unsupported key count: %d (supported: 4, 6, 7)", e.KeyCount)
}

// InvalidScoreDataError means the engine returned a score outside the
// plausible range.
type InvalidScoreDataError struct {
	Score  float32
	Detail string
}

func (e *InvalidScoreDataError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("score %v is out of reasonable bounds (%s)", e.Score, e.Detail)
	}
	return fmt.Sprintf("score %v is out of reasonable bounds", e.Score)
}
