package calc

import (
	"log"

	"github.com/Glubus/minacalc-go/convert"
	"github.com/Glubus/minacalc-go/model"
)

// DefaultScoreGoal is the conventional SSR target when the caller has no
// preference.
const DefaultScoreGoal = 0.93

type sessionState int

const (
	stateUninitialized sessionState = iota
	stateInitialized
	stateDestroyed
)

// Session is a thread-confined wrapper around one calculator instance.
// The handle is created lazily on the first calculation and reused until
// Close. The underlying engine instance is stateful and not safe for
// concurrent invocation: create one Session per worker goroutine and
// never share it.
type Session struct {
	engine Engine
	handle Handle
	state  sessionState
}

// NewSession wraps an engine. No native allocation happens until the
// first calculation.
func NewSession(engine Engine) *Session {
	return &Session{engine: engine}
}

// ensureHandle moves the session to the initialized state, allocating
// the calculator on first use. A closed session stays closed.
func (s *Session) ensureHandle() error {
	switch s.state {
	case stateInitialized:
		return nil
	case stateDestroyed:
		return ErrCalculatorCreationFailed
	}
	h, err := s.engine.CreateCalc()
	if err != nil {
		return err
	}
	s.handle = h
	s.state = stateInitialized
	return nil
}

// Close releases the calculator instance. Destruction happens exactly
// once; any calculation after Close fails.
func (s *Session) Close() {
	if s.state == stateInitialized {
		s.engine.DestroyCalc(s.handle)
		s.handle = nil
	}
	s.state = stateDestroyed
}

// Version reports the engine's calculator version.
func (s *Session) Version() int {
	return s.engine.Version()
}

// CalcAtRate scores a note stream at a specific music rate. All inputs
// are validated before the engine is touched; the score goal is only
// checked for capped (SSR) calculations.
func (s *Session) CalcAtRate(notes []model.Note, musicRate, scoreGoal float32, keyCount uint32, capped bool) (model.Scores, error) {
	if len(notes) == 0 {
		return model.Scores{}, ErrNoNotesProvided
	}
	if musicRate <= 0 {
		return model.Scores{}, &InvalidMusicRateError{Rate: musicRate}
	}
	if capped && (scoreGoal <= 0 || scoreGoal > 1) {
		return model.Scores{}, &InvalidScoreGoalError{Goal: scoreGoal}
	}
	if !SupportedKeyCount(keyCount) {
		return model.Scores{}, &UnsupportedKeyCountError{KeyCount: keyCount}
	}
	if err := convert.ValidateNotes(notes); err != nil {
		return model.Scores{}, err
	}

	if err := s.ensureHandle(); err != nil {
		return model.Scores{}, err
	}

	scores, err := s.engine.CalcAtRate(s.handle, notes, musicRate, scoreGoal, keyCount, capped)
	if err != nil {
		return model.Scores{}, err
	}
	if err := validateScores(scores); err != nil {
		return model.Scores{}, err
	}
	return scores, nil
}

// CalcAllRates scores a note stream at every rate from 0.7x to 2.0x.
func (s *Session) CalcAllRates(notes []model.Note, keyCount uint32, capped bool) (model.AllRates, error) {
	if len(notes) == 0 {
		return model.AllRates{}, ErrNoNotesProvided
	}
	if !SupportedKeyCount(keyCount) {
		return model.AllRates{}, &UnsupportedKeyCountError{KeyCount: keyCount}
	}
	if err := convert.ValidateNotes(notes); err != nil {
		return model.AllRates{}, err
	}

	if err := s.ensureHandle(); err != nil {
		return model.AllRates{}, err
	}

	all, err := s.engine.CalcAllRates(s.handle, notes, keyCount, capped)
	if err != nil {
		return model.AllRates{}, err
	}
	if err := validateAllRates(all); err != nil {
		return model.AllRates{}, err
	}
	return all, nil
}

// CalcSSR scores at one rate in capped mode.
func (s *Session) CalcSSR(notes []model.Note, musicRate, scoreGoal float32, keyCount uint32) (model.Scores, error) {
	return s.CalcAtRate(notes, musicRate, scoreGoal, keyCount, true)
}

// CalcMSD scores at one rate in uncapped mode.
func (s *Session) CalcMSD(notes []model.Note, musicRate float32, keyCount uint32) (model.Scores, error) {
	return s.CalcAtRate(notes, musicRate, DefaultScoreGoal, keyCount, false)
}

// CalcChartAtRate decodes nothing: it takes an already-decoded chart,
// gates on the key mode before any quantization work, converts and
// scores at one rate.
func (s *Session) CalcChartAtRate(chart *model.Chart, musicRate, scoreGoal float32, capped bool) (model.Scores, error) {
	keyCount := uint32(chart.KeyCount)
	if !SupportedKeyCount(keyCount) {
		return model.Scores{}, &UnsupportedKeyCountError{KeyCount: keyCount}
	}
	notes, err := convert.ChartToNotes(chart, 1.0)
	if err != nil {
		return model.Scores{}, err
	}
	log.Printf("converted %d rows for chart %q", len(notes), chart.Metadata.Title)
	return s.CalcAtRate(notes, musicRate, scoreGoal, keyCount, capped)
}

// CalcChartAllRates converts and scores a decoded chart at every rate.
func (s *Session) CalcChartAllRates(chart *model.Chart, capped bool) (model.AllRates, error) {
	keyCount := uint32(chart.KeyCount)
	if !SupportedKeyCount(keyCount) {
		return model.AllRates{}, &UnsupportedKeyCountError{KeyCount: keyCount}
	}
	notes, err := convert.ChartToNotes(chart, 1.0)
	if err != nil {
		return model.AllRates{}, err
	}
	log.Printf("converted %d rows for chart %q", len(notes), chart.Metadata.Title)
	return s.CalcAllRates(notes, keyCount, capped)
}
