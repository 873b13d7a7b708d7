package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"annoscape/source"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [fgFolder] [bgFolder]",
	Short: "Validates a foreground/background corpus layout",
	Long:  `Validates a foreground/background corpus layout`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(validateLayer("foreground", args[0]))
		cobra.CheckErr(validateLayer("background", args[1]))
	},
}

func validateLayer(name string, folder string) error {
	labels, err := source.Labels(folder)
	if err != nil {
		return err
	}
	if len(labels) == 0 {
		logrus.Warnf("%v folder %v has no labels", name, folder)
	}

	var numFiles int
	for _, label := range labels {
		files, err := source.SortedFiles(filepath.Join(folder, label))
		if err != nil {
			return err
		}
		if len(files) == 0 {
			logrus.Warnf("%v label %v has no files", name, label)
		}
		numFiles += len(files)
	}

	fmt.Printf("%v: %v labels, %v files\n", name, len(labels), numFiles)
	return nil
}
