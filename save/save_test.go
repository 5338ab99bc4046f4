package save

import (
	"errors"
	"testing"

	"github.com/milk9111/healthhammer/component"
)

type memStore map[string][]byte

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = append([]byte(nil), data...)
	return nil
}

func (m memStore) LoadItem(key string) ([]byte, error) { return m[key], nil }

type brokenStore struct{}

func (brokenStore) SaveItem(string, []byte) error   { return errors.New("disk full") }
func (brokenStore) LoadItem(string) ([]byte, error) { return nil, errors.New("disk gone") }

func TestSaveAndRestoreHealth(t *testing.T) {
	store := memStore{}
	h, _ := component.NewHealth(100)
	h.ApplyDamage(35, component.CombatEvent{})

	if err := SaveHealth(store, "player", h); err != nil {
		t.Fatalf("SaveHealth: %v", err)
	}

	other, _ := component.NewHealth(100)
	if err := RestoreHealth(store, "player", other); err != nil {
		t.Fatalf("RestoreHealth: %v", err)
	}
	if other.Current != 65 || other.Max != 100 || !other.IsAlive() {
		t.Fatalf("unexpected restored ledger %+v", other.Snapshot())
	}
}

func TestLoadHealthErrors(t *testing.T) {
	tests := []struct {
		name  string
		store Store
		want  error
	}{
		{"empty slot", memStore{}, ErrNoSave},
		{"nil store", nil, ErrNoSave},
		{"garbage", memStore{"player": []byte("{")}, nil},
		{"read failure", brokenStore{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadHealth(tt.store, "player")
			if err == nil {
				t.Fatalf("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRestoreRejectsBadMax(t *testing.T) {
	store := memStore{"player": []byte(`{"current":5,"max":0}`)}
	h, _ := component.NewHealth(100)
	if err := RestoreHealth(store, "player", h); !errors.Is(err, component.ErrInvalidMaxHealth) {
		t.Fatalf("expected ErrInvalidMaxHealth, got %v", err)
	}
	if h.Current != 100 {
		t.Fatalf("failed restore must not touch the ledger, got %v", h.Current)
	}
}

func TestSaveHealthWrapsStoreError(t *testing.T) {
	h, _ := component.NewHealth(10)
	if err := SaveHealth(brokenStore{}, "player", h); err == nil {
		t.Fatalf("expected write error")
	}
}
