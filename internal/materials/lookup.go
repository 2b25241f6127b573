package materials

import "sort"

// Unknown keys never error: every category resolves to a fixed fallback so
// the calculators stay total. The fallback policy lives here and nowhere
// else, so it can be audited and tested in one place.
const (
	DefaultBacking     = "PVC"
	DefaultAdhesive    = "Acrylic"
	DefaultSurface     = "Steel"
	DefaultEnvironment = "Dry"
)

func BackingFor(name string) Backing {
	if b, ok := Backings[name]; ok {
		return b
	}
	return Backings[DefaultBacking]
}

func AdhesiveFor(name string) Adhesive {
	if a, ok := Adhesives[name]; ok {
		return a
	}
	return Adhesives[DefaultAdhesive]
}

func SurfaceFor(name string) Surface {
	if s, ok := Surfaces[name]; ok {
		return s
	}
	return Surfaces[DefaultSurface]
}

func EnvironmentFor(name string) Environment {
	if e, ok := Environments[name]; ok {
		return e
	}
	return Environments[DefaultEnvironment]
}

// RuptureFor returns nil for surfaces without a rupture entry, including
// unknown surface keys.
func RuptureFor(name string) *RuptureStrength {
	if r, ok := Ruptures[name]; ok {
		return &r
	}
	return nil
}

func BackingNames() []string     { return sortedKeys(Backings) }
func AdhesiveNames() []string    { return sortedKeys(Adhesives) }
func SurfaceNames() []string     { return sortedKeys(Surfaces) }
func EnvironmentNames() []string { return sortedKeys(Environments) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
