package theme

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

// EmbeddedThemes holds the themes shipped inside the binary.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// EmbeddedNames lists the shipped theme names without extension.
func EmbeddedNames() []string {
	entries, err := fs.ReadDir(EmbeddedThemes, "defaults")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".theme"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
