package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var prefabsFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// Load returns the raw bytes of a prefab spec, preferring an on-disk copy
// under prefabs/ so edits take effect without rebuilding, falling back to
// the embedded one.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(filepath.Join("prefabs", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return prefabsFS.ReadFile(clean)
}

// LoadScript returns the raw bytes of a behavior script, with the same
// disk-over-embed preference as Load.
func LoadScript(name string) ([]byte, error) {
	clean := cleanPath(name)
	if !strings.HasPrefix(clean, "scripts/") {
		clean = "scripts/" + clean
	}
	if data, err := os.ReadFile(filepath.Join("prefabs", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return scriptsFS.ReadFile(clean)
}

func cleanPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "prefabs/")
}
