package cmd

import (
	"fmt"

	"github.com/Glubus/minacalc-go/native"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the calculator version",
	Long:  `Prints the calculator version`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("MinaCalc version %v\n", native.New().Version())
	},
}
