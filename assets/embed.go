package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path"
	"path/filepath"
	"strings"

	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

// Art and audio live under assets/files/. The directory ships empty (plus
// this embed's README); a file on disk under assets/files/ always wins over
// the embedded copy, so dropping in sprite sheets or sounds needs no rebuild.
// A missing asset is an expected condition: image callers fall back to
// drawing primitive shapes and audio callers skip playback.
//
//go:embed files
var assetsFS embed.FS

// LoadImage decodes the image at the assets-relative path.
func LoadImage(name string) (*ebiten.Image, error) {
	b, err := LoadFile(name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFile returns the raw bytes of the asset at the assets-relative path,
// preferring a file on disk over the embedded copy.
func LoadFile(name string) ([]byte, error) {
	clean := cleanAssetPath(name)
	if b, err := os.ReadFile(filepath.Join("assets", "files", filepath.FromSlash(clean))); err == nil {
		return b, nil
	}
	return assetsFS.ReadFile(path.Join("files", clean))
}

func cleanAssetPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "assets/")
	s = strings.TrimPrefix(s, "files/")
	return s
}
