package dataset

import (
	"strings"

	"github.com/pkg/errors"

	"letternet/internal/vector"
)

// GlyphWidth and GlyphHeight are the dimensions of the built-in letter grid.
const (
	GlyphWidth  = 4
	GlyphHeight = 5
)

// Glyph is a labelled bitmap drawn as text rows.
type Glyph struct {
	Label string   `yaml:"label"`
	Rows  []string `yaml:"rows"`
}

var letters = []Glyph{
	{"A", []string{".XX.", "X..X", "XXXX", "X..X", "X..X"}},
	{"B", []string{"XXX.", "X..X", "XXX.", "X..X", "XXX."}},
	{"C", []string{".XXX", "X...", "X...", "X...", ".XXX"}},
	{"D", []string{"XXX.", "X..X", "X..X", "X..X", "XXX."}},
	{"E", []string{"XXXX", "X...", "XXX.", "X...", "XXXX"}},
	{"F", []string{"XXXX", "X...", "XXX.", "X...", "X..."}},
	{"G", []string{".XXX", "X...", "X.XX", "X..X", ".XXX"}},
	{"H", []string{"X..X", "X..X", "XXXX", "X..X", "X..X"}},
}

// DefaultProbe is an unlabelled glyph sitting between C and E.
var DefaultProbe = Glyph{"?", []string{"XXX.", "X...", "X...", "X...", "XXXX"}}

// Letters returns the built-in set of the first n letters, n being 4, 6 or 8.
func Letters(n int) (*Dataset, error) {
	switch n {
	case 4, 6, 8:
	default:
		return nil, errors.Errorf("no built-in letter set with %d classes", n)
	}
	return FromGlyphs(GlyphWidth, GlyphHeight, letters[:n])
}

// FromGlyphs builds a dataset with one class per glyph, in glyph order.
func FromGlyphs(width, height int, glyphs []Glyph) (*Dataset, error) {
	d := &Dataset{
		Width:   width,
		Height:  height,
		Labels:  make([]string, len(glyphs)),
		Samples: make([]Sample, len(glyphs)),
	}
	seen := make(map[string]bool, len(glyphs))
	for i, g := range glyphs {
		if seen[g.Label] {
			return nil, errors.Errorf("duplicate glyph label %q", g.Label)
		}
		seen[g.Label] = true
		input, err := g.Bitmap(width, height)
		if err != nil {
			return nil, err
		}
		d.Labels[i] = g.Label
		d.Samples[i] = Sample{
			Label:    g.Label,
			Input:    input,
			Expected: OneHot(i, len(glyphs)),
		}
	}
	return d, nil
}

// Bitmap flattens the rows into a 0/1 vector of width*height cells.
// 'X', '#' and '1' are set; '.', ' ' and '0' are clear.
func (g Glyph) Bitmap(width, height int) (vector.Vector, error) {
	if len(g.Rows) != height {
		return nil, errors.Wrapf(vector.ErrDimensionMismatch, "glyph %q has %d rows, expected %d", g.Label, len(g.Rows), height)
	}
	v := vector.New(width * height)
	for y, row := range g.Rows {
		if len(row) != width {
			return nil, errors.Wrapf(vector.ErrDimensionMismatch, "glyph %q row %d has %d cells, expected %d", g.Label, y, len(row), width)
		}
		for x, c := range row {
			switch {
			case strings.ContainsRune("X#1", c):
				v[y*width+x] = 1
			case strings.ContainsRune(". 0", c):
			default:
				return nil, errors.Errorf("glyph %q row %d: invalid cell %q", g.Label, y, c)
			}
		}
	}
	return v, nil
}
