package levels

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var levelsFS embed.FS

func readFile(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(filepath.Join("levels", clean)); err == nil {
		return data, nil
	}
	return levelsFS.ReadFile(clean)
}

func cleanLevelPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	if !strings.HasSuffix(s, ".yaml") && !strings.HasSuffix(s, ".yml") {
		s += ".yaml"
	}
	return s
}
