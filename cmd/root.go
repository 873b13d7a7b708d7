package cmd

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "annoscape",
	Short: "Soundscape annotation tools",
	Long:  `Tools for analyzing and reshaping soundscape event annotations.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional and never overrides real env vars
		godotenv.Load()
		level, err := logrus.ParseLevel(logLevel)
		cobra.CheckErr(err)
		logrus.SetLevel(level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
