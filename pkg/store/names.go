package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	pkgerrors "github.com/pkg/errors"

	"github.com/simcoaches/trackpro/pkg/axis"
)

// Names holds the user-editable axis display names. They live in their own
// JSON file with a lifecycle independent of the calibration records: renaming
// an axis never touches its range and vice versa.
type Names struct {
	mu       sync.RWMutex
	filepath string
	m        map[string]string
}

// NewNames loads the display names from path, starting empty when the file
// does not exist yet.
func NewNames(path string) (*Names, error) {
	n := &Names{filepath: path, m: make(map[string]string)}
	if err := n.load(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Names) load() error {
	b, err := os.ReadFile(n.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to read axis names from %s", n.filepath)
	}
	if strings.TrimSpace(string(b)) == "" {
		return nil
	}
	m := make(map[string]string)
	if err := json.Unmarshal(b, &m); err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal axis names from %s", n.filepath)
	}
	n.m = m
	return nil
}

// Get returns the display name for an axis, falling back to the factory
// default when the user never renamed it.
func (n *Names) Get(a axis.Axis) string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if name, ok := n.m[a.String()]; ok && name != "" {
		return name
	}
	return a.DefaultName()
}

// Set stores a display name and saves the file. An empty name restores the
// factory default.
func (n *Names) Set(a axis.Axis, name string) error {
	n.mu.Lock()
	if name == "" {
		delete(n.m, a.String())
	} else {
		n.m[a.String()] = name
	}
	b, err := json.MarshalIndent(n.m, "", "  ")
	n.mu.Unlock()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to marshal axis names")
	}
	if err := os.MkdirAll(filepath.Dir(n.filepath), 0755); err != nil {
		return pkgerrors.Wrapf(err, "failed to create directory for %s", n.filepath)
	}
	if err := os.WriteFile(n.filepath, b, 0644); err != nil {
		return pkgerrors.Wrapf(err, "failed to write axis names to %s", n.filepath)
	}
	return nil
}

// AllNames returns the display name of every axis keyed by axis identifier.
func (n *Names) AllNames() map[string]string {
	out := make(map[string]string, len(axis.All))
	for _, a := range axis.All {
		out[a.String()] = n.Get(a)
	}
	return out
}
