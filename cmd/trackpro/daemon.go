package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/simcoaches/trackpro/pkg/daemon"
	"github.com/simcoaches/trackpro/pkg/version"
)

var (
	// simulate replaces the wheel with a synthetic signal source.
	simulate = false
)

// NewDaemonCommand .
func NewDaemonCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "daemon",
		Short:   "Run trackpro daemon in the foreground",
		GroupID: gAdvanced,
		RunE: func(_ *cobra.Command, _ []string) error {
			logrus.WithFields(logrus.Fields{
				"version": version.Version,
				"commit":  version.GitCommit,
			}).Info("trackpro daemon starting")
			return daemon.Run(configPath, unixSocketPath, simulate)
		},
	}

	f := cmd.Flags()

	f.BoolVar(&simulate, "simulate", false,
		"Use a simulated wheel instead of real hardware.")

	return cmd
}
