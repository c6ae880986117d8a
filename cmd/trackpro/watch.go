package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/simcoaches/trackpro/pkg/axis"
	"github.com/simcoaches/trackpro/pkg/events"
)

// NewWatchCommand streams live axis readings and calibration events to the
// terminal until interrupted.
func NewWatchCommand() *cobra.Command {
	samplesOnly := false

	cmd := &cobra.Command{
		Use:     "watch",
		Short:   "Stream live axis readings and calibration events",
		GroupID: gAdvanced,
		Long: `Stream live axis readings and calibration events.

Readings are raw values until the first maximum is captured, percentages after that. Press Ctrl-C to stop.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigc := make(chan os.Signal, 1)
			signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigc
				cancel()
			}()

			for ev := range apiClient.SubscribeEvents(ctx) {
				switch ev.Name {
				case events.AxesSample:
					payload, err := events.DecodeAs[events.AxesSampleEvent](ev)
					if err != nil {
						logrus.WithError(err).Error("failed to decode sample event")
						continue
					}
					printSample(cmd, payload)
				case events.CalibrationChanged:
					if samplesOnly {
						continue
					}
					payload, err := events.DecodeAs[events.CalibrationChangedEvent](ev)
					if err != nil {
						logrus.WithError(err).Error("failed to decode calibration event")
						continue
					}
					cmd.Printf("calibration changed: %s\n", payload.Op)
					for _, w := range payload.Warnings {
						logrus.Warn(w)
					}
				case events.DeviceRefresh:
					if !samplesOnly {
						cmd.Println("device refresh broadcast sent")
					}
				case events.DeviceLost:
					logrus.Warn("wheel stopped answering")
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&samplesOnly, "samples-only", false,
		"Only print axis readings, not calibration events.")

	return cmd
}

func printSample(cmd *cobra.Command, s events.AxesSampleEvent) {
	if s.Calibrated {
		cmd.Printf("\rX %3d%%  Z %3d%%  RY %3d%%  ",
			s.Percent[axis.X.String()],
			s.Percent[axis.Z.String()],
			s.Percent[axis.RY.String()])
		return
	}
	cmd.Printf("\rX %4d  Z %4d  RY %4d  ",
		s.Raw[axis.X.String()],
		s.Raw[axis.Z.String()],
		s.Raw[axis.RY.String()])
}
