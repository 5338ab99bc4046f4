package prefabs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestPrefabName(t *testing.T) {
	cases := map[string]string{
		"":                   "",
		"hammer.yaml":        "hammer.yaml",
		"prefabs/arena.yaml": "arena.yaml",
	}
	for in, want := range cases {
		if got := prefabName(in); got != want {
			t.Errorf("prefabName(%q) = %q, want %q", in, got, want)
		}
	}
}

func useOverrideDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := OverrideDir
	OverrideDir = dir
	t.Cleanup(func() { OverrideDir = prev })
	return dir
}

func TestLoadPrefersOverride(t *testing.T) {
	dir := useOverrideDir(t)
	embedded, err := Embedded.ReadFile("enemy.yaml")
	if err != nil {
		t.Fatalf("embedded enemy.yaml: %v", err)
	}

	if _, ok := OverrideModTime("enemy.yaml"); ok {
		t.Fatalf("no override written yet")
	}
	override := []byte("name: tuned\nhealth: 5\n")
	if err := os.WriteFile(filepath.Join(dir, "enemy.yaml"), override, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load("prefabs/enemy.yaml")
	if err != nil || !bytes.Equal(got, override) {
		t.Fatalf("expected override contents, got %q (%v)", got, err)
	}
	if _, ok := OverrideModTime("enemy.yaml"); !ok {
		t.Fatalf("expected override mod time")
	}
	spec, err := LoadEnemySpec()
	if err != nil || spec.Name != "tuned" || spec.Health != 5 {
		t.Fatalf("expected tuned enemy, got %+v (%v)", spec, err)
	}

	if err := os.Remove(filepath.Join(dir, "enemy.yaml")); err != nil {
		t.Fatal(err)
	}
	got, err = Load("enemy.yaml")
	if err != nil || !bytes.Equal(got, embedded) {
		t.Fatalf("expected embedded fallback after removing the override (%v)", err)
	}
}

func TestLoadMissingPrefab(t *testing.T) {
	useOverrideDir(t)
	if _, err := Load("boss.yaml"); err == nil {
		t.Fatalf("expected error for unknown prefab")
	}
	if _, err := LoadSpec[EnemySpec]("boss.yaml"); err == nil {
		t.Fatalf("expected LoadSpec to wrap the error")
	}
}
