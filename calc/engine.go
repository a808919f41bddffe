// Package calc wraps the MinaCalc difficulty engine behind a validated,
// session-scoped API. The engine itself is an opaque native library; this
// package owns everything around the foreign call: input validation,
// handle lifecycle and output sanity checks.
package calc

import "github.com/Glubus/minacalc-go/model"

// Handle is an opaque reference to one live calculator instance inside
// an Engine. Handles are single-owner and must never be shared across
// goroutines.
type Handle interface{}

// Engine is the calculator call contract. The shape mirrors the native
// C API one to one: handle creation/destruction plus the two scoring
// entrypoints.
type Engine interface {
	// CreateCalc allocates a calculator instance. Returns an error when
	// the native allocation fails.
	CreateCalc() (Handle, error)

	// DestroyCalc releases a calculator instance. Safe to call with a
	// handle exactly once.
	DestroyCalc(h Handle)

	// CalcAtRate scores the note stream at one music rate. scoreGoal is
	// only meaningful for capped (SSR) calculations.
	CalcAtRate(h Handle, notes []model.Note, musicRate, scoreGoal float32, keyCount uint32, capped bool) (model.Scores, error)

	// CalcAllRates scores the note stream at every rate from 0.7x to
	// 2.0x in one batch call.
	CalcAllRates(h Handle, notes []model.Note, keyCount uint32, capped bool) (model.AllRates, error)

	// Version reports the engine's calculator version.
	Version() int
}

// SupportedKeyCount reports whether the engine can score the key mode.
func SupportedKeyCount(keyCount uint32) bool {
	return keyCount == 4 || keyCount == 6 || keyCount == 7
}
