package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Glubus/minacalc-go/calc"
	"github.com/Glubus/minacalc-go/model"
	"github.com/Glubus/minacalc-go/native"
	"github.com/Glubus/minacalc-go/osu"
	"github.com/spf13/cobra"
)

var (
	scoreRate   float32
	scoreGoal   float32
	scoreCapped bool
	scoreJSON   bool
)

func init() {
	scoreCmd.Flags().Float32VarP(&scoreRate, "rate", "r", 0, "music rate (0 = all rates)")
	scoreCmd.Flags().Float32VarP(&scoreGoal, "goal", "g", calc.DefaultScoreGoal, "score goal for capped mode")
	scoreCmd.Flags().BoolVar(&scoreCapped, "capped", false, "capped (SSR) mode instead of uncapped (MSD)")
	scoreCmd.Flags().BoolVarP(&scoreJSON, "json", "j", false, "output as JSON")
	rootCmd.AddCommand(scoreCmd)
}

var scoreCmd = &cobra.Command{
	Use:   "score <file>",
	Short: "Scores a chart",
	Long:  `Scores a .osu chart at one rate or across all rates (0.7x - 2.0x).`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return score(args[0])
	},
}

func score(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}

	chart, err := osu.ParseFile(path)
	if err != nil {
		return err
	}

	s := calc.NewSession(native.New())
	defer s.Close()

	if scoreRate > 0 {
		scores, err := s.CalcChartAtRate(chart, scoreRate, scoreGoal, scoreCapped)
		if err != nil {
			return err
		}
		printSingleRate(chart, scores)
		return nil
	}

	all, err := s.CalcChartAllRates(chart, scoreCapped)
	if err != nil {
		return err
	}
	printAllRates(chart, all)
	return nil
}

func printSingleRate(chart *model.Chart, scores model.Scores) {
	if scoreJSON {
		out, _ := json.Marshal(model.CalcResponse{
			Title:  chart.Metadata.Title,
			Rate:   scoreRate,
			Capped: scoreCapped,
			Scores: scores,
		})
		fmt.Println(string(out))
		return
	}
	mode := "Uncapped"
	if scoreCapped {
		mode = "Capped"
	}
	fmt.Printf("%v [%v] - %.2fx (%v)\n", chart.Metadata.Title, chart.Metadata.Version, scoreRate, mode)
	printScoresHuman(scores)
}

func printAllRates(chart *model.Chart, all model.AllRates) {
	if scoreJSON {
		out, _ := json.Marshal(model.CalcAllRatesResponse{
			Title:  chart.Metadata.Title,
			Capped: scoreCapped,
			Scores: all.AsMap(),
		})
		fmt.Println(string(out))
		return
	}

	fmt.Printf("%v [%v]\n", chart.Metadata.Title, chart.Metadata.Version)
	fmt.Println("  Rate | Overall | Stream |  Jump  |  Jack  | Technical")
	fmt.Println("-------+---------+--------+--------+--------+----------")
	for i, scores := range all.MSDs {
		fmt.Printf(" %.2fx |  %5.2f  | %5.2f  | %5.2f  | %5.2f  |   %5.2f\n",
			model.RateAt(i),
			scores.Overall,
			scores.Stream,
			scores.Jumpstream,
			scores.Jackspeed,
			scores.Technical)
	}

	fmt.Println("\n1.0x summary:")
	printScoresHuman(all.MSDs[3])
}

func printScoresHuman(s model.Scores) {
	fmt.Printf("  Overall:    %6.2f\n", s.Overall)
	fmt.Printf("  Stream:     %6.2f\n", s.Stream)
	fmt.Printf("  Jumpstream: %6.2f\n", s.Jumpstream)
	fmt.Printf("  Handstream: %6.2f\n", s.Handstream)
	fmt.Printf("  Stamina:    %6.2f\n", s.Stamina)
	fmt.Printf("  JackSpeed:  %6.2f\n", s.Jackspeed)
	fmt.Printf("  Chordjack:  %6.2f\n", s.Chordjack)
	fmt.Printf("  Technical:  %6.2f\n", s.Technical)
	fmt.Printf("  Dominant:   %v\n", dominantSkillset(s))
}

func dominantSkillset(s model.Scores) string {
	skills := []struct {
		value float32
		name  string
	}{
		{s.Stream, "Stream"},
		{s.Jumpstream, "Jumpstream"},
		{s.Handstream, "Handstream"},
		{s.Stamina, "Stamina"},
		{s.Jackspeed, "JackSpeed"},
		{s.Chordjack, "Chordjack"},
		{s.Technical, "Technical"},
	}
	best := skills[0]
	for _, sk := range skills[1:] {
		if sk.value > best.value {
			best = sk
		}
	}
	return best.name
}
