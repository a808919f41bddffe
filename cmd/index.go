package cmd

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"

	"github.com/Glubus/minacalc-go/calc"
	"github.com/Glubus/minacalc-go/constants"
	"github.com/Glubus/minacalc-go/db"
	"github.com/Glubus/minacalc-go/model"
	"github.com/Glubus/minacalc-go/native"
	"github.com/Glubus/minacalc-go/osu"
	"github.com/Glubus/minacalc-go/util"
	"github.com/spf13/cobra"
)

var (
	indexWorkers int
	indexCapped  bool
	indexToDb    bool
)

func init() {
	indexCmd.Flags().IntVarP(&indexWorkers, "workers", "w", util.Min(runtime.NumCPU(), 4), "parallel calculator sessions")
	indexCmd.Flags().BoolVar(&indexCapped, "capped", false, "capped (SSR) mode")
	indexCmd.Flags().BoolVar(&indexToDb, "db", false, "also push scores to DynamoDB")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [maxNum]",
	Short: "Creates score index",
	Long:  `Scores every chart under SONGS_PATH at all rates and writes the score index.`,
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			maxNum = arg1
		}

		Index(maxNum)
	},
}

type indexResult struct {
	hash   string
	scores model.ChartScores
}

// scoreWorker owns one calculator session for its whole lifetime. The
// native calculator is stateful, so sessions are never shared between
// workers; each goroutine stays on its own OS thread while calling it.
func scoreWorker(paths <-chan string, results chan<- indexResult, wg *sync.WaitGroup) {
	defer wg.Done()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	s := calc.NewSession(native.New())
	defer s.Close()

	for path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		chart, err := osu.Parse(string(data))
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		all, err := s.CalcChartAllRates(chart, indexCapped)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		results <- indexResult{
			hash: fmt.Sprintf("%x", sha1.Sum(data)),
			scores: model.ChartScores{
				Title:    chart.Metadata.Title,
				KeyCount: chart.KeyCount,
				AllRates: all,
			},
		}
	}
}

// Index scores up to maxNum charts (0 = all) and persists the score
// index. Exported so the e2e tests can drive the whole pipeline.
func Index(maxNum int) {
	util.RecreateIndexDir()
	paths := util.GatherAllChartPaths(constants.GetSongsDir(), maxNum)
	fmt.Printf("Scoring %v charts with %v workers\n", len(paths), indexWorkers)

	workers := indexWorkers
	if workers < 1 {
		workers = 1
	}

	pathCh := make(chan string)
	resultCh := make(chan indexResult)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go scoreWorker(pathCh, resultCh, &wg)
	}
	go func() {
		for _, p := range paths {
			pathCh <- p
		}
		close(pathCh)
		wg.Wait()
		close(resultCh)
	}()

	allScores := make(map[string]model.ChartScores)
	scored := 0
	for res := range resultCh {
		scored += 1
		fmt.Printf("Scored %v of %v charts\n", scored, len(paths))
		allScores[res.hash] = res.scores
		if indexToDb {
			db.PutChartScores(res.hash, res.scores)
		}
	}

	util.CreateBinary(filepath.Join(constants.GetIndexDir(), constants.ScoresFilename), allScores)
}
