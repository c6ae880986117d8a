package config

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/simcoaches/trackpro/pkg/utils/ptr"
)

var defaultFileConfig = &RawFileConfig{
	StoreDir:       ptr.To("/var/lib/trackpro/calibration"),
	NamesPath:      ptr.To("/var/lib/trackpro/axis-names.json"),
	TickIntervalMS: ptr.To(10),
	Simulate:       ptr.To(false),
}

var _ Config = (*File)(nil)

// File is a JSON-file-backed Config. Every field is optional in the file;
// absent fields fall back to defaults.
type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

// RawFileConfig is the on-disk shape.
type RawFileConfig struct {
	StoreDir       *string `json:"storeDir,omitempty"`
	NamesPath      *string `json:"namesPath,omitempty"`
	TickIntervalMS *int    `json:"tickIntervalMs,omitempty"`
	Simulate       *bool   `json:"simulate,omitempty"`
}

// NewRawFileConfigFromConfig snapshots any Config into its on-disk shape.
func NewRawFileConfigFromConfig(c Config) *RawFileConfig {
	return &RawFileConfig{
		StoreDir:       ptr.To(c.StoreDir()),
		NamesPath:      ptr.To(c.NamesPath()),
		TickIntervalMS: ptr.To(int(c.TickInterval() / time.Millisecond)),
		Simulate:       ptr.To(c.Simulate()),
	}
}

// NewFile loads (or initializes) a file-backed config at configPath.
func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	if err := f.Load(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) StoreDir() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.c.StoreDir != nil {
		return *f.c.StoreDir
	}
	return *defaultFileConfig.StoreDir
}

func (f *File) NamesPath() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.c.NamesPath != nil {
		return *f.c.NamesPath
	}
	return *defaultFileConfig.NamesPath
}

func (f *File) TickInterval() time.Duration {
	f.mu.RLock()
	defer f.mu.RUnlock()
	ms := *defaultFileConfig.TickIntervalMS
	if f.c.TickIntervalMS != nil {
		ms = *f.c.TickIntervalMS
	}
	if ms <= 0 {
		ms = *defaultFileConfig.TickIntervalMS
	}
	return time.Duration(ms) * time.Millisecond
}

func (f *File) Simulate() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.c.Simulate != nil {
		return *f.c.Simulate
	}
	return *defaultFileConfig.Simulate
}

func (f *File) SetStoreDir(dir string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.StoreDir = &dir
}

func (f *File) SetNamesPath(p string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.NamesPath = &p
}

func (f *File) SetTickInterval(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ms := int(d / time.Millisecond)
	f.c.TickIntervalMS = &ms
}

func (f *File) SetSimulate(b bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Simulate = &b
}

// Load reads the file. A missing or empty file yields the empty config (all
// defaults).
func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fp, err := os.Open(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		if err := fp.Close(); err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	b, err := io.ReadAll(fp)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}
	if strings.TrimSpace(string(b)) == "" {
		f.c = &RawFileConfig{}
		return nil
	}

	conf := RawFileConfig{}
	if err := json.Unmarshal(b, &conf); err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}
	f.c = &conf
	return nil
}

// Save writes the file.
func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		return pkgerrors.New("config is nil")
	}

	fp, err := os.OpenFile(f.filepath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		if err := fp.Close(); err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	enc := json.NewEncoder(fp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f.c); err != nil {
		return pkgerrors.Wrapf(err, "failed to encode config to file %s", f.filepath)
	}
	return nil
}

// LogrusFields summarizes the effective config for startup logging.
func (f *File) LogrusFields() logrus.Fields {
	return logrus.Fields{
		"storeDir":     f.StoreDir(),
		"namesPath":    f.NamesPath(),
		"tickInterval": f.TickInterval().String(),
		"simulate":     f.Simulate(),
	}
}
