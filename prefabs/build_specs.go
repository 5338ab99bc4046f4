package prefabs

import "gopkg.in/yaml.v3"

// ApplyOverrides decodes raw on top of a copy of base. Fields raw does not
// mention keep their base values.
func ApplyOverrides[T any](base T, raw map[string]any) (T, error) {
	if len(raw) == 0 {
		return base, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return base, err
	}
	out := base
	if err := yaml.Unmarshal(b, &out); err != nil {
		return base, err
	}
	return out, nil
}

// EnemyFor returns the enemy spec for one arena spawn.
func (s EnemySpawnSpec) EnemyFor(base EnemySpec) (EnemySpec, error) {
	return ApplyOverrides(base, s.Overrides)
}
