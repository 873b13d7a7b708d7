package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"annoscape/sample"
)

var numDraws int

func init() {
	sampleCmd.Flags().IntVarP(&numDraws, "count", "n", 1, "number of draws")
	rootCmd.AddCommand(sampleCmd)
}

var sampleCmd = &cobra.Command{
	Use:   "sample [mu] [sigma] [min] [max]",
	Short: "Draws from a truncated normal distribution",
	Long:  `Draws from a truncated normal distribution, one value per line`,
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		var params [4]float64
		for i, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			cobra.CheckErr(err)
			params[i] = v
		}
		for i := 0; i < numDraws; i++ {
			v, err := sample.TruncNorm(params[0], params[1], params[2], params[3])
			cobra.CheckErr(err)
			fmt.Printf("%v\n", v)
		}
	},
}
