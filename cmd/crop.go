package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"annoscape/analyze"
	"annoscape/constants"
	"annoscape/midi"
	"annoscape/model"
)

func init() {
	rootCmd.AddCommand(cropCmd)
}

var cropCmd = &cobra.Command{
	Use:   "crop [file.mid] [seconds]",
	Short: "Crops a midi file's events to the middle seconds",
	Long:  `Crops a midi file's note events to the middle seconds of the sequence`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		crop, err := strconv.ParseFloat(args[1], 64)
		cobra.CheckErr(err)
		ann, err := midi.FromFile(args[0], constants.RoleForeground)
		cobra.CheckErr(err)
		out, err := analyze.Crop(ann, crop)
		cobra.CheckErr(err)
		printAnnotation(out)
	},
}

func printAnnotation(ann *model.Annotation) {
	events := make([]model.Event, len(ann.Events))
	copy(events, ann.Events)
	sort.Slice(events, func(i, j int) bool {
		return events[i].Start < events[j].Start
	})

	fmt.Printf("duration: %vs, events: %v\n", ann.Duration, len(events))
	for _, ev := range events {
		fmt.Printf("%8.3f %8.3f  %v\n", ev.Start, ev.End, ev.Value.Label)
	}
}
