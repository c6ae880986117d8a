package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/simcoaches/trackpro/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}

func NewSetMinCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "set-min [axis]",
		Short:   "Capture the current wheel position as an axis minimum",
		GroupID: gBasic,
		Long: `Capture the current wheel position as an axis minimum.

Move the axis to the end of its travel you want to read as 0%, hold it there, and run this command. The axis is X, Z or RY.`,
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := parseAxisArg(args)
			if err != nil {
				return err
			}

			res, err := apiClient.SetMin(a)
			if err != nil {
				return fmt.Errorf("failed to set %s minimum: %v", a, err)
			}

			reportOpResult(res)
			logrus.Infof("successfully captured %s minimum", a)

			return nil
		},
	}
}

func NewSetMaxCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "set-max [axis]",
		Short:   "Capture the current wheel position as an axis maximum",
		GroupID: gBasic,
		Long: `Capture the current wheel position as an axis maximum.

Move the axis to the end of its travel you want to read as 100%, hold it there, and run this command. After the first captured maximum the live view switches from raw values to percentages.`,
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := parseAxisArg(args)
			if err != nil {
				return err
			}

			res, err := apiClient.SetMax(a)
			if err != nil {
				return fmt.Errorf("failed to set %s maximum: %v", a, err)
			}

			reportOpResult(res)
			logrus.Infof("successfully captured %s maximum", a)

			return nil
		},
	}
}

func NewResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "reset",
		Short:   "Reset all axes to the factory range",
		GroupID: gBasic,
		Long: `Reset all axes to the factory range.

The full raw range becomes the calibrated range again. This does not keep a backup; use restore-defaults if you want to be able to undo.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			res, err := apiClient.Reset()
			if err != nil {
				return fmt.Errorf("failed to reset calibration: %v", err)
			}

			reportOpResult(res)
			logrus.Info("successfully reset all axes")

			return nil
		},
	}
}

func NewRestoreDefaultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "restore-defaults",
		Short:   "Back up the current calibration, then reset all axes",
		GroupID: gBasic,
		RunE: func(_ *cobra.Command, _ []string) error {
			res, err := apiClient.RestoreDefaults()
			if err != nil {
				return fmt.Errorf("failed to restore defaults: %v", err)
			}

			reportOpResult(res)
			logrus.Info("successfully restored defaults. Use restore-last to get the previous calibration back.")

			return nil
		},
	}
}

func NewRestoreLastCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "restore-last",
		Short:   "Restore the most recently backed up calibration",
		GroupID: gBasic,
		RunE: func(_ *cobra.Command, _ []string) error {
			res, err := apiClient.RestoreLast()
			if err != nil {
				// An empty history is a no-op, not a failure.
				if strings.Contains(err.Error(), "no previous calibration") {
					logrus.Info("no previous calibration to restore")
					return nil
				}
				return fmt.Errorf("failed to restore last calibration: %v", err)
			}

			reportOpResult(res)

			return nil
		},
	}
}

func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "validate [axis]",
		Short:   "Check an axis calibration for problems",
		GroupID: gBasic,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseAxisArg(args)
			if err != nil {
				return err
			}

			vr, err := apiClient.Validate(a)
			if err != nil {
				return fmt.Errorf("failed to validate %s: %v", a, err)
			}

			if !vr.Valid {
				return fmt.Errorf("%s calibration is invalid: %s", a, vr.Message)
			}
			if vr.Narrow {
				logrus.Warnf("%s calibration is usable but narrow: %s", a, vr.Message)
				return nil
			}

			cmd.Printf("%s calibration is %s\n", a, bool2Text(true))
			return nil
		},
	}
}

func NewRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rename [axis] [name]",
		Short:   "Set the display name of an axis",
		GroupID: gAdvanced,
		Long: `Set the display name of an axis.

An empty name restores the factory name, e.g. "X-Axis".`,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return fmt.Errorf("expected an axis and an optional new name")
			}

			a, err := parseAxisArg(args[:1])
			if err != nil {
				return err
			}

			name := ""
			if len(args) == 2 {
				name = strings.TrimSpace(args[1])
			}

			ret, err := apiClient.SetAxisName(a, name)
			if err != nil {
				return fmt.Errorf("failed to rename %s: %v", a, err)
			}

			logrus.Infof("%s is now named %s", a, ret)

			return nil
		},
	}
}
