package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"time"
)

// Embedded holds the prefabs compiled into the binary.
//
//go:embed *.yaml
var Embedded embed.FS

// OverrideDir is searched before the embedded set, so tuning edits placed
// there apply without a rebuild.
var OverrideDir = "prefabs"

// Load returns the override copy of a prefab when there is one and the
// embedded file otherwise.
func Load(name string) ([]byte, error) {
	name = prefabName(name)
	if data, err := os.ReadFile(overridePath(name)); err == nil {
		return data, nil
	}
	return Embedded.ReadFile(name)
}

// OverrideModTime reports when the override copy of name last changed.
func OverrideModTime(name string) (time.Time, bool) {
	info, err := os.Stat(overridePath(prefabName(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// prefabName reduces a path to its name inside the embedded set, which is
// flat.
func prefabName(p string) string {
	if p == "" {
		return ""
	}
	return path.Base(filepath.ToSlash(p))
}

func overridePath(name string) string {
	return filepath.Join(OverrideDir, name)
}
