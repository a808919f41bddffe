package cmd

import (
	"fmt"

	"github.com/Glubus/minacalc-go/convert"
	"github.com/Glubus/minacalc-go/osu"
	"github.com/spf13/cobra"
)

var inspectRate float32

func init() {
	inspectCmd.Flags().Float32VarP(&inspectRate, "rate", "r", 1.0, "playback rate")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Prints a chart's canonical note stream",
	Long:  `Decodes a chart and prints the quantized, merged rows fed to the calculator.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	chart, err := osu.ParseFile(path)
	if err != nil {
		return err
	}

	notes, err := convert.ChartToNotes(chart, inspectRate)
	if err != nil {
		return err
	}

	fmt.Printf("%v [%v] %dK, %d rows\n", chart.Metadata.Title, chart.Metadata.Version, chart.KeyCount, len(notes))
	for _, n := range notes {
		fmt.Printf("%10.4fs  %0*b\n", n.RowTime, chart.KeyCount, n.Notes)
	}
	return nil
}
