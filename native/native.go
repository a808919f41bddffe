// Package native binds the MinaCalc C++ library through its C interface.
// It implements calc.Engine; everything above the foreign call (input
// validation, score sanity checks, session lifecycle) lives in calc.
//
// Link against a prebuilt libminacalc, e.g.:
//
//	CGO_LDFLAGS="-L/path/to/minacalc" go build ./...
package native

/*
#cgo LDFLAGS: -lminacalc -lstdc++ -lm
#include "minacalc.h"
*/
import "C"

import (
	"github.com/Glubus/minacalc-go/calc"
	"github.com/Glubus/minacalc-go/model"
)

// Engine is the cgo-backed implementation of calc.Engine. The Engine
// value itself is stateless; all state lives in the handles it creates.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// Version reports the MinaCalc calculator version.
func (*Engine) Version() int {
	return int(C.calc_version())
}

// CreateCalc allocates a native calculator instance. The returned handle
// owns the allocation and must be released with DestroyCalc exactly once.
func (*Engine) CreateCalc() (calc.Handle, error) {
	h := C.create_calc()
	if h == nil {
		return nil, calc.ErrCalculatorCreationFailed
	}
	return h, nil
}

// DestroyCalc releases a native calculator instance.
func (*Engine) DestroyCalc(h calc.Handle) {
	ptr, ok := h.(*C.CalcHandle)
	if !ok || ptr == nil {
		return
	}
	C.destroy_calc(ptr)
}

func toNoteInfos(notes []model.Note) []C.NoteInfo {
	rows := make([]C.NoteInfo, len(notes))
	for i, n := range notes {
		rows[i] = C.NoteInfo{
			notes:   C.uint(n.Notes),
			rowTime: C.float(n.RowTime),
		}
	}
	return rows
}

func fromSsr(s C.Ssr) model.Scores {
	return model.Scores{
		Overall:    float32(s.overall),
		Stream:     float32(s.stream),
		Jumpstream: float32(s.jumpstream),
		Handstream: float32(s.handstream),
		Stamina:    float32(s.stamina),
		Jackspeed:  float32(s.jackspeed),
		Chordjack:  float32(s.chordjack),
		Technical:  float32(s.technical),
	}
}

func capInt(capped bool) C.int {
	if capped {
		return 1
	}
	return 0
}

// CalcAtRate scores the note stream at one music rate.
func (*Engine) CalcAtRate(h calc.Handle, notes []model.Note, musicRate, scoreGoal float32, keyCount uint32, capped bool) (model.Scores, error) {
	if len(notes) == 0 {
		return model.Scores{}, calc.ErrNoNotesProvided
	}
	ptr, ok := h.(*C.CalcHandle)
	if !ok || ptr == nil {
		return model.Scores{}, calc.ErrCalculatorCreationFailed
	}

	rows := toNoteInfos(notes)
	ssr := C.calc_at_rate(
		ptr,
		&rows[0],
		C.size_t(len(rows)),
		C.float(musicRate),
		C.float(scoreGoal),
		C.uint(keyCount),
		capInt(capped),
	)
	return fromSsr(ssr), nil
}

// CalcAllRates scores the note stream at every rate from 0.7x to 2.0x.
func (*Engine) CalcAllRates(h calc.Handle, notes []model.Note, keyCount uint32, capped bool) (model.AllRates, error) {
	if len(notes) == 0 {
		return model.AllRates{}, calc.ErrNoNotesProvided
	}
	ptr, ok := h.(*C.CalcHandle)
	if !ok || ptr == nil {
		return model.AllRates{}, calc.ErrCalculatorCreationFailed
	}

	rows := toNoteInfos(notes)
	msd := C.calc_all_rates(
		ptr,
		&rows[0],
		C.size_t(len(rows)),
		C.uint(keyCount),
		capInt(capped),
	)

	var all model.AllRates
	for i := range all.MSDs {
		all.MSDs[i] = fromSsr(msd.msds[i])
	}
	return all, nil
}
