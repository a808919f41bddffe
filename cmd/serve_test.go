//go:build e2e
// +build e2e

// In-package handler tests. The cmd package links against libminacalc
// through the native import, so these carry the e2e tag even though they
// never call the engine.
package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Glubus/minacalc-go/model"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func getScores(hash string) *http.Response {
	req := httptest.NewRequest(http.MethodGet, "/scores/"+hash, nil)
	req = mux.SetURLVars(req, map[string]string{"hash": hash})
	w := httptest.NewRecorder()
	HandleScores(w, req)
	return w.Result()
}

func TestHandleScoresKnownHash(t *testing.T) {
	var all model.AllRates
	for i := range all.MSDs {
		all.MSDs[i] = model.Scores{Overall: float32(i) + 1}
	}
	allScores = map[string]model.ChartScores{
		"abc123": {Title: "Indexed Song", KeyCount: 4, AllRates: all},
	}

	resp := getScores("abc123")
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var scoresResponse model.CalcAllRatesResponse
	err := json.Unmarshal(respBody, &scoresResponse)
	assert.NoError(err)
	assert.Equal("Indexed Song", scoresResponse.Title)
	assert.Len(scoresResponse.Scores, model.NumRates)
	assert.Equal(float32(4), scoresResponse.Scores["1.0"].Overall)
}

func TestHandleScoresUnknownHash(t *testing.T) {
	allScores = map[string]model.ChartScores{}

	resp := getScores("doesnotexist")
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(404, resp.StatusCode)

	var errResponse model.ErrorResponse
	err := json.Unmarshal(respBody, &errResponse)
	assert.NoError(err)
	assert.Contains(errResponse.Error, "doesnotexist")
}
