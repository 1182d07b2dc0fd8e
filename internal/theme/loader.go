package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader resolves theme names to definitions.
type Loader struct {
	ConfigDir string
	SystemDir string
}

// NewLoader creates a Loader rooted at the user's config directory.
func NewLoader() *Loader {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return &Loader{
		ConfigDir: filepath.Join(dir, "cropview", "themes"),
		SystemDir: "/usr/share/cropview/themes",
	}
}

// Load resolves name in order: an existing file path, the embedded
// themes, ConfigDir, then SystemDir. An empty name yields Default.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	if _, err := os.Stat(name); err == nil {
		return parseFile(name)
	}

	filename := strings.ToLower(name)
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}
	if f, err := EmbeddedThemes.Open("defaults/" + filename); err == nil {
		defer f.Close()
		return Parse(f)
	}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return parseFile(path)
		}
	}
	return nil, fmt.Errorf("theme %q not found", name)
}

func parseFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}
