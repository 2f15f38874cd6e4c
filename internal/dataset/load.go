package dataset

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a glyph set.
type File struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Glyphs []Glyph `yaml:"glyphs"`
}

// Load reads a dataset from path. A directory is scanned with Discover and
// all the glyph files found are merged, in path order, into one dataset.
func Load(path string) (*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "load dataset")
	}
	paths := []string{path}
	if info.IsDir() {
		paths, err = Discover(path)
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			return nil, errors.Errorf("no glyph files under %s", path)
		}
	}

	var merged File
	for i, p := range paths {
		f, err := readFile(p)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			merged.Width, merged.Height = f.Width, f.Height
		} else if f.Width != merged.Width || f.Height != merged.Height {
			return nil, errors.Errorf("%s: grid %dx%d differs from %dx%d", p, f.Width, f.Height, merged.Width, merged.Height)
		}
		merged.Glyphs = append(merged.Glyphs, f.Glyphs...)
	}
	d, err := FromGlyphs(merged.Width, merged.Height, merged.Glyphs)
	if err != nil {
		return nil, errors.Wrap(err, "load dataset")
	}
	return d, nil
}

func readFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read glyph file")
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, errors.Errorf("%s: invalid grid %dx%d", path, f.Width, f.Height)
	}
	if len(f.Glyphs) == 0 {
		return nil, errors.Errorf("%s: no glyphs", path)
	}
	return &f, nil
}
