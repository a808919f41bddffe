package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/Glubus/minacalc-go/constants"
	"github.com/Glubus/minacalc-go/model"
	"github.com/Glubus/minacalc-go/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Summarizes the score index: chart counts, key modes and hardest charts.`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

type indexReport struct {
	numCharts    int64
	countsByKeys map[int]int64
	avgOverall1x float32
	hardest      []string
}

func analyzeScores(allScores map[string]model.ChartScores) indexReport {
	report := indexReport{countsByKeys: make(map[int]int64)}

	var totalOverall float64
	type ranked struct {
		title   string
		overall float32
	}
	var rankings []ranked

	for _, hash := range util.GetKeys(allScores) {
		cs := allScores[hash]
		report.numCharts += 1
		report.countsByKeys[cs.KeyCount] += 1

		overall1x := cs.AllRates.MSDs[3].Overall
		totalOverall += float64(overall1x)
		rankings = append(rankings, ranked{title: cs.Title, overall: overall1x})
	}

	if report.numCharts > 0 {
		report.avgOverall1x = float32(totalOverall / float64(report.numCharts))
	}

	sort.Slice(rankings, func(i, j int) bool {
		return rankings[i].overall > rankings[j].overall
	})
	for i := 0; i < len(rankings) && i < 10; i++ {
		report.hardest = append(report.hardest, fmt.Sprintf("%5.2f  %v", rankings[i].overall, rankings[i].title))
	}

	return report
}

func report() {
	path := filepath.Join(constants.GetIndexDir(), constants.ScoresFilename)
	allScores := util.ReadBinaryOrPanic[map[string]model.ChartScores](path)

	r := analyzeScores(allScores)

	fmt.Printf("numCharts: %v\n", r.numCharts)
	var counts []int64
	for _, keys := range util.GetKeys(r.countsByKeys) {
		fmt.Printf("%vK charts: %v\n", keys, r.countsByKeys[keys])
		counts = append(counts, r.countsByKeys[keys])
	}
	fmt.Printf("total across key modes: %v\n", util.Sum(counts))
	fmt.Printf("avg overall at 1.0x: %.2f\n", r.avgOverall1x)
	fmt.Println("hardest charts at 1.0x:")
	for _, line := range r.hardest {
		fmt.Printf("  %v\n", line)
	}
}
