package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"annoscape/constants"
	"annoscape/db"
	"annoscape/source"
	"annoscape/util"
)

var withMetadata bool

func init() {
	reportCmd.Flags().BoolVar(&withMetadata, "metadata", false, "look up source provenance records")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [folder]",
	Short: "Creates a report of a corpus folder",
	Long:  `Creates a report of a corpus folder`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(report(args[0]))
	},
}

type labelReport struct {
	numFiles int
	numBytes uint64
	files    []string
}

func analyzeLabels(folder string) (map[string]labelReport, error) {
	labels, err := source.Labels(folder)
	if err != nil {
		return nil, err
	}

	res := make(map[string]labelReport)
	for _, label := range labels {
		files, err := source.SortedFiles(filepath.Join(folder, label))
		if err != nil {
			return nil, err
		}
		var sizes []int64
		for _, path := range files {
			stats, err := os.Stat(path)
			if err != nil {
				continue
			}
			sizes = append(sizes, stats.Size())
		}
		res[label] = labelReport{
			numFiles: len(files),
			numBytes: util.Sum(sizes),
			files:    files,
		}
	}
	return res, nil
}

func report(folder string) error {
	reports, err := analyzeLabels(folder)
	if err != nil {
		return err
	}

	keys := util.GetKeys(reports)
	sort.Strings(keys)

	var totalFiles int
	var totalBytes uint64
	for _, label := range keys {
		r := reports[label]
		fmt.Printf("%v: %v files, %v bytes\n", label, r.numFiles, r.numBytes)
		totalFiles += r.numFiles
		totalBytes += r.numBytes
	}
	fmt.Printf("total: %v labels, %v files, %v bytes\n", len(keys), totalFiles, totalBytes)

	if withMetadata {
		printMetadata(reports, keys)
	}
	return nil
}

func printMetadata(reports map[string]labelReport, keys []string) {
	var filenames []string
	for _, label := range keys {
		for _, path := range reports[label].files {
			filenames = append(filenames, filepath.Base(path))
		}
	}
	if len(filenames) > constants.MetadataBatchSize {
		filenames = filenames[:constants.MetadataBatchSize]
	}

	// the lookup logs below the table; keep the printed report clean
	restore := util.TempLogLevel(logrus.ErrorLevel)
	metas, err := db.GetSourceMetadatas(filenames)
	restore()
	if err != nil {
		logrus.WithError(err).Warn("skipping the provenance report")
		return
	}

	names := util.GetKeys(metas)
	sort.Strings(names)
	for _, name := range names {
		m := metas[name]
		fmt.Printf("%v: %v (%v), %vs\n", name, m.Collection, m.License, m.DurationSec)
	}
}
