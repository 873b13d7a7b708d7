package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"annoscape/analyze"
	"annoscape/constants"
	"annoscape/db"
	"annoscape/midi"
	"annoscape/source"
	"annoscape/util"
)

var scanMax int
var scanMetadata bool

func init() {
	scanCmd.Flags().IntVar(&scanMax, "max", 0, "stop after this many files (0 means no limit)")
	scanCmd.Flags().BoolVar(&scanMetadata, "metadata", false, "mark files that have a provenance record")
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan [folder]",
	Short: "Scans a folder tree of midi files",
	Long:  `Scans a folder tree of midi files and reports the polyphony of each`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(scan(args[0]))
	},
}

func fileHasMetadata(path string) bool {
	name := filepath.Base(path)
	metas, err := db.GetSourceMetadatas([]string{name})
	if err != nil {
		return false
	}
	_, ok := metas[name]
	return ok
}

func scanFile(path string) {
	ann, err := midi.FromFile(path, constants.RoleForeground)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		return
	}
	p, err := analyze.MaxPolyphony(ann)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		return
	}

	marker := ""
	if scanMetadata && fileHasMetadata(path) {
		marker = " *"
	}
	fmt.Printf("%v: %v events, polyphony %v, %.3fs%v\n", path, len(ann.Events), p, ann.Duration, marker)
}

func scan(folder string) error {
	if err := source.ValidateFolderPath(folder); err != nil {
		return err
	}
	paths, err := util.GatherMidiPaths(folder, scanMax)
	if err != nil {
		return err
	}

	for i, path := range paths {
		fmt.Printf("Processing %v of %v midi files\n", i+1, len(paths))
		scanFile(path)
	}
	return nil
}
