package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"annoscape/watch"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch [folder]",
	Short: "Watches a corpus folder for label changes",
	Long:  `Watches a corpus folder and logs changes to its label inventory`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		w, err := watch.New(args[0], func(labels []string) {
			logrus.WithField("labels", labels).Info("label inventory changed")
		})
		cobra.CheckErr(err)
		defer w.Stop()
		w.Start()
		logrus.Infof("watching %v, labels: %v", args[0], w.Labels())

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
	},
}
