package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/simcoaches/trackpro/pkg/axis"
	"github.com/simcoaches/trackpro/pkg/engine"
)

type statusData struct {
	status *engine.Status
	names  map[axis.Axis]string
}

// fetchStatusData gathers all data required for the status command from the daemon.
func fetchStatusData() (*statusData, error) {
	st, err := apiClient.GetStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	names := make(map[axis.Axis]string, len(axis.All))
	for _, a := range axis.All {
		n, err := apiClient.GetAxisName(a)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s name: %w", a, err)
		}
		names[a] = n
	}

	return &statusData{
		status: st,
		names:  names,
	}, nil
}

func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		GroupID: gBasic,
		Short:   "Get the current status of the wheel and its calibration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := fetchStatusData()
			if err != nil {
				return err
			}
			st := data.status

			cmd.Println(bold("Wheel:"))
			cmd.Println("  Connected: " + bool2Text(st.DeviceAvailable))
			cmd.Println("  Calibrated: " + bool2Text(st.Calibrated))
			if st.HistoryLen > 0 {
				cmd.Printf("  Backups available: %s\n", bold("%d", st.HistoryLen))
			}

			cmd.Println()
			cmd.Println(bold("Axes:"))
			for _, a := range axis.All {
				r := st.Ranges.Range(a)
				raw := st.Raw.Value(a)

				cmd.Printf("  %s\n", bold("%s", data.names[a]))
				cmd.Printf("    Range: %s\n", bold("[%d, %d]", r.Min, r.Max))
				if st.DeviceAvailable {
					cmd.Printf("    Position: %s (raw %d)\n",
						percentText(st.Percent[a.String()]), raw)
				}
			}

			return nil
		},
	}
}

// percentText highlights full-travel readings, which is what you watch for
// while sweeping an axis during calibration.
func percentText(p int) string {
	if p <= 0 || p >= 100 {
		return color.New(color.Bold, color.FgGreen).Sprintf("%d%%", p)
	}
	return bold("%d%%", p)
}

func bool2Text(b bool) string {
	if b {
		return color.New(color.Bold, color.FgGreen).Sprint("✔")
	}
	return color.New(color.Bold, color.FgRed).Sprint("✘")
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
