package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/simcoaches/trackpro/pkg/axis"
	"github.com/simcoaches/trackpro/pkg/engine"
)

func parseAxisArg(args []string) (axis.Axis, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("invalid number of arguments, expected one axis (X, Z or RY)")
	}
	return axis.Parse(args[0])
}

// reportOpResult prints operation warnings and the resulting range of the
// touched axis, or of all axes for whole-device operations.
func reportOpResult(res *engine.OpResult) {
	for _, w := range res.Warnings {
		logrus.Warn(w)
	}

	if res.Axis != "" {
		a, err := axis.Parse(res.Axis)
		if err == nil {
			r := res.Ranges.Range(a)
			logrus.Infof("%s range is now [%d, %d]", a, r.Min, r.Max)
			return
		}
	}

	for _, a := range axis.All {
		r := res.Ranges.Range(a)
		logrus.Infof("%s range is now [%d, %d]", a, r.Min, r.Max)
	}
}
