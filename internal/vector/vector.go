// Package vector provides the fixed-length real vector used throughout the
// network. Operations never modify their operands and always return a fresh
// vector; mismatched lengths are reported as ErrDimensionMismatch.
package vector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Error is a sentinel error with no further information attached.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// ErrDimensionMismatch is returned when two vectors that must agree in length do not.
var ErrDimensionMismatch = Error{"dimension mismatch"}

// Vector is an ordered fixed-length sequence of real numbers.
type Vector []float64

// New returns a zero vector of length n.
func New(n int) Vector {
	return make(Vector, n)
}

// Of copies xs into a new vector.
func Of(xs ...float64) Vector {
	v := make(Vector, len(xs))
	copy(v, xs)
	return v
}

// Len returns the number of elements.
func (v Vector) Len() int {
	return len(v)
}

// Clone returns a copy of v that shares no storage with it.
func (v Vector) Clone() Vector {
	return Of(v...)
}

// Add returns v + w.
func (v Vector) Add(w Vector) (Vector, error) {
	if err := sameSize("add", v, w); err != nil {
		return nil, err
	}
	z := New(len(v))
	floats.AddTo(z, v, w)
	return z, nil
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) (Vector, error) {
	if err := sameSize("sub", v, w); err != nil {
		return nil, err
	}
	z := New(len(v))
	floats.SubTo(z, v, w)
	return z, nil
}

// Scale returns v * c.
func (v Vector) Scale(c float64) Vector {
	z := New(len(v))
	floats.ScaleTo(z, c, v)
	return z
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) (float64, error) {
	if err := sameSize("dot", v, w); err != nil {
		return 0, err
	}
	return floats.Dot(v, w), nil
}

// SquaredNorm returns the sum of the squares of the elements.
func (v Vector) SquaredNorm() float64 {
	return floats.Dot(v, v)
}

// Sum adds the vectors element-wise. All of them must share one length;
// summing nothing is an error since the result length would be unknown.
func Sum(vs ...Vector) (Vector, error) {
	if len(vs) == 0 {
		return nil, errors.Wrap(ErrDimensionMismatch, "sum: no vectors")
	}
	z := vs[0].Clone()
	for i, v := range vs[1:] {
		if err := sameSize("sum", z, v); err != nil {
			return nil, errors.Wrapf(err, "vector %d", i+1)
		}
		floats.Add(z, v)
	}
	return z, nil
}

// String prints the vector in a compact readable form.
func (v Vector) String() string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("(%d)[", len(v)))
	for i, x := range v {
		if i > 0 {
			builder.WriteString(" ")
		}
		builder.WriteString(strconv.FormatFloat(x, 'f', 4, 64))
	}
	builder.WriteString("]")
	return builder.String()
}

func sameSize(op string, v, w Vector) error {
	if len(v) != len(w) {
		return errors.Wrapf(ErrDimensionMismatch, "%s: %d vs %d", op, len(v), len(w))
	}
	return nil
}
