package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/Glubus/minacalc-go/calc"
	"github.com/Glubus/minacalc-go/constants"
	"github.com/Glubus/minacalc-go/db"
	"github.com/Glubus/minacalc-go/model"
	"github.com/Glubus/minacalc-go/native"
	"github.com/Glubus/minacalc-go/osu"
	"github.com/Glubus/minacalc-go/util"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var allScores map[string]model.ChartScores

var serveDb bool

// the calculator session is not safe for concurrent use; handlers take
// the lock around every calculation
var (
	serveMu      sync.Mutex
	serveSession *calc.Session
)

func init() {
	serveCmd.Flags().BoolVar(&serveDb, "db", false, "fall back to DynamoDB for hashes missing from the index")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the scoring API",
	Long:  `Serves the scoring API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadServeFiles loads the precomputed score index. Exported so the e2e
// tests can drive the handlers directly.
func LoadServeFiles() {
	path := filepath.Join(constants.GetIndexDir(), constants.ScoresFilename)
	allScores = util.ReadBinaryOrPanic[map[string]model.ChartScores](path)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

// HandleCalc scores chart content posted as JSON. Rate 0 means all rates.
func HandleCalc(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()

	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "could not read request body")
		return
	}

	var input model.CalcRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "could not unmarshal request body: "+err.Error())
		return
	}

	chart, err := osu.Parse(input.Content)
	if err != nil {
		log.Printf("[%v] decode failed: %v", reqID, err)
		writeError(w, 400, err.Error())
		return
	}

	goal := input.ScoreGoal
	if goal == 0 {
		goal = calc.DefaultScoreGoal
	}

	serveMu.Lock()
	defer serveMu.Unlock()
	if serveSession == nil {
		serveSession = calc.NewSession(native.New())
	}

	if input.Rate > 0 {
		scores, err := serveSession.CalcChartAtRate(chart, input.Rate, goal, input.Capped)
		if err != nil {
			log.Printf("[%v] calc failed: %v", reqID, err)
			writeError(w, 422, err.Error())
			return
		}
		log.Printf("[%v] scored %q at %.1fx", reqID, chart.Metadata.Title, input.Rate)
		json.NewEncoder(w).Encode(model.CalcResponse{
			Title:  chart.Metadata.Title,
			Rate:   input.Rate,
			Capped: input.Capped,
			Scores: scores,
		})
		return
	}

	all, err := serveSession.CalcChartAllRates(chart, input.Capped)
	if err != nil {
		log.Printf("[%v] calc failed: %v", reqID, err)
		writeError(w, 422, err.Error())
		return
	}
	log.Printf("[%v] scored %q at all rates", reqID, chart.Metadata.Title)
	json.NewEncoder(w).Encode(model.CalcAllRatesResponse{
		Title:  chart.Metadata.Title,
		Capped: input.Capped,
		Scores: all.AsMap(),
	})
}

// HandleScores serves precomputed all-rates scores by chart hash, with
// an optional DynamoDB fallback for hashes indexed on another machine.
func HandleScores(w http.ResponseWriter, r *http.Request) {
	hash := mux.Vars(r)["hash"]
	cs, ok := allScores[hash]
	if !ok && serveDb {
		cs, ok = db.GetChartScores([]string{hash})[hash]
	}
	if !ok {
		writeError(w, 404, fmt.Sprintf("no scores for hash %v", hash))
		return
	}
	json.NewEncoder(w).Encode(model.CalcAllRatesResponse{
		Title:  cs.Title,
		Scores: cs.AllRates.AsMap(),
	})
}

func serve() {
	LoadServeFiles()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/calc", HandleCalc).Methods("POST")
	router.HandleFunc("/scores/{hash}", HandleScores).Methods("GET")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(constants.GetServeAddr(), handler))
}
