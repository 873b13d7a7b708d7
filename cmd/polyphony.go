package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"annoscape/analyze"
	"annoscape/constants"
	"annoscape/midi"
)

func init() {
	rootCmd.AddCommand(polyphonyCmd)
}

var polyphonyCmd = &cobra.Command{
	Use:   "polyphony [file.mid]",
	Short: "Computes the max polyphony of a midi file",
	Long:  `Computes the maximum number of simultaneously sounding notes in a midi file`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ann, err := midi.FromFile(args[0], constants.RoleForeground)
		cobra.CheckErr(err)
		p, err := analyze.MaxPolyphony(ann)
		cobra.CheckErr(err)
		fmt.Printf("%v\n", p)
	},
}
