package save

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/milk9111/healthhammer/component"
	"github.com/quasilyte/gdata"
)

// ErrNoSave is returned when the slot has never been written.
var ErrNoSave = errors.New("save: slot is empty")

// Store is the key/value slot storage. *gdata.Manager satisfies it.
type Store interface {
	SaveItem(key string, data []byte) error
	LoadItem(key string) ([]byte, error)
}

// Open opens the per-user data directory for app.
func Open(app string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: app,
	})
	if err != nil {
		return nil, fmt.Errorf("save: open %s: %w", app, err)
	}
	return m, nil
}

// SaveHealth writes the ledger's current and max values under key.
func SaveHealth(s Store, key string, h *component.Health) error {
	if s == nil || h == nil {
		return nil
	}
	data, err := json.Marshal(h.Snapshot())
	if err != nil {
		return fmt.Errorf("save: encode %s: %w", key, err)
	}
	if err := s.SaveItem(key, data); err != nil {
		return fmt.Errorf("save: write %s: %w", key, err)
	}
	return nil
}

// LoadHealth reads a snapshot written by SaveHealth.
func LoadHealth(s Store, key string) (component.HealthSnapshot, error) {
	var snap component.HealthSnapshot
	if s == nil {
		return snap, ErrNoSave
	}
	data, err := s.LoadItem(key)
	if err != nil {
		return snap, fmt.Errorf("save: read %s: %w", key, err)
	}
	if len(data) == 0 {
		return snap, ErrNoSave
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("save: decode %s: %w", key, err)
	}
	return snap, nil
}

// RestoreHealth loads key into h.
func RestoreHealth(s Store, key string, h *component.Health) error {
	snap, err := LoadHealth(s, key)
	if err != nil {
		return err
	}
	return h.Restore(snap)
}
