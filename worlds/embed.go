package worlds

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

//go:embed *.json
var WorldsFS embed.FS

// LoadEmbedded parses an embedded world file by name (".json" optional).
func LoadEmbedded(name string) (*Project, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(WorldsFS, name)
	if err != nil {
		return nil, fmt.Errorf("worlds: read embedded %s: %w", name, err)
	}
	return Parse(data)
}

// LoadFile parses a world file from disk. Used by worldlint and for modded
// worlds during development.
func LoadFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("worlds: read %s: %w", path, err)
	}
	return Parse(data)
}
