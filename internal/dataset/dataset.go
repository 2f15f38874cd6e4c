// Package dataset holds the labelled glyph bitmaps the classifier learns from.
package dataset

import (
	"github.com/pkg/errors"

	"letternet/internal/vector"
)

// Sample is one training pair together with its human readable label.
type Sample struct {
	Label    string
	Input    vector.Vector
	Expected vector.Vector
}

// Dataset is an ordered set of glyph samples sharing one grid and one label set.
type Dataset struct {
	Width   int
	Height  int
	Labels  []string
	Samples []Sample
}

// InputSize returns the number of cells in a glyph.
func (d *Dataset) InputSize() int {
	return d.Width * d.Height
}

// OutputSize returns the number of classes.
func (d *Dataset) OutputSize() int {
	return len(d.Labels)
}

// Validate checks every sample against the given network dimensions.
func (d *Dataset) Validate(inputs, outputs int) error {
	if len(d.Samples) == 0 {
		return errors.New("dataset is empty")
	}
	for i, s := range d.Samples {
		if len(s.Input) != inputs {
			return errors.Wrapf(vector.ErrDimensionMismatch, "sample %d (%s): input %d, expected %d", i, s.Label, len(s.Input), inputs)
		}
		if len(s.Expected) != outputs {
			return errors.Wrapf(vector.ErrDimensionMismatch, "sample %d (%s): expected vector %d, outputs %d", i, s.Label, len(s.Expected), outputs)
		}
	}
	return nil
}

// OneHot returns the expected vector for class index i out of n.
func OneHot(i, n int) vector.Vector {
	v := vector.New(n)
	v[i] = 1
	return v
}
