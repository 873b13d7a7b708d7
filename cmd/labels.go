package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"annoscape/source"
)

func init() {
	rootCmd.AddCommand(labelsCmd)
}

var labelsCmd = &cobra.Command{
	Use:   "labels [folder]",
	Short: "Lists the labels of a corpus folder",
	Long:  `Lists the labels of a corpus folder, one subfolder per label`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		labels, err := source.Labels(args[0])
		cobra.CheckErr(err)
		for _, label := range labels {
			fmt.Println(label)
		}
	},
}
