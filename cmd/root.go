package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "minacalc",
	Short: "MinaCalc difficulty calculator",
	Long:  `Calculates MSD/SSR skillset ratings for rhythm game charts using the MinaCalc engine.`,
}

func Execute() {
	// optional .env for SONGS_PATH, INDEX_PATH etc.
	godotenv.Load()
	cobra.CheckErr(rootCmd.Execute())
}
