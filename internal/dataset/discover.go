package dataset

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// GlyphFileSuffix marks files Discover picks up.
const GlyphFileSuffix = ".glyphs.yaml"

// Discover returns the paths of glyph files beneath root, sorted.
func Discover(root string) ([]string, error) {
	entries := make([]string, 0)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), GlyphFileSuffix) {
			entries = append(entries, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "discover glyph files")
	}
	sort.Strings(entries)
	return entries, nil
}
