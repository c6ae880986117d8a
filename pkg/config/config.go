// Package config holds the daemon's file-backed settings. Calibration data
// itself is persisted through pkg/store, not here.
package config

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Config is the daemon configuration surface.
type Config interface {
	StoreDir() string
	NamesPath() string
	TickInterval() time.Duration
	Simulate() bool

	SetStoreDir(string)
	SetNamesPath(string)
	SetTickInterval(time.Duration)
	SetSimulate(bool)

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error

	// LogrusFields summarizes the effective configuration for logging.
	LogrusFields() logrus.Fields
}
