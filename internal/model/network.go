package model

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"letternet/internal/vector"
)

// Network is an ordered stack of layers.
type Network struct {
	layers []*Layer
}

// NewNetwork chains layers. The output size of every layer must match the
// input size of the next one.
func NewNetwork(layers ...*Layer) (*Network, error) {
	if len(layers) == 0 {
		return nil, errors.New("network needs at least one layer")
	}
	for i := 1; i < len(layers); i++ {
		_, out := layers[i-1].Size()
		in, _ := layers[i].Size()
		if out != in {
			return nil, errors.Wrapf(ErrDimensionMismatch, "layer %d outputs %d but layer %d expects %d", i-1, out, i, in)
		}
	}
	return &Network{layers: layers}, nil
}

// New builds a dense network with the given input dimension and layer sizes,
// the last size being the output dimension.
func New(inputs int, sizes []int, rng *rand.Rand) (*Network, error) {
	if len(sizes) == 0 {
		return nil, errors.New("network needs at least one layer")
	}
	layers := make([]*Layer, len(sizes))
	p := inputs
	for i, s := range sizes {
		l, err := NewDenseLayer(s, p, rng)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
		log.Debug().Int("layer", i).Int("inputs", p).Int("neurons", s).Msg("create layer")
		layers[i] = l
		p = s
	}
	return NewNetwork(layers...)
}

// Size returns the input and output dimension of the network.
func (n *Network) Size() (int, int) {
	in, _ := n.layers[0].Size()
	_, out := n.layers[len(n.layers)-1].Size()
	return in, out
}

// Layers returns the layers in order.
func (n *Network) Layers() []*Layer {
	return n.layers
}

// Forward passes input through every layer in order.
func (n *Network) Forward(input vector.Vector) (vector.Vector, error) {
	if in, _ := n.Size(); len(input) != in {
		return nil, errors.Wrapf(ErrDimensionMismatch, "network forward: input %d, expected %d", len(input), in)
	}
	output := input
	for i, l := range n.layers {
		var err error
		output, err = l.Forward(output)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
	}
	return output, nil
}

// BackPropagate walks the layers in reverse, feeding each layer the error its
// successor propagated. What the first layer propagates is dropped.
func (n *Network) BackPropagate(errs vector.Vector) error {
	if _, out := n.Size(); len(errs) != out {
		return errors.Wrapf(ErrDimensionMismatch, "network back-propagate: errors %d, outputs %d", len(errs), out)
	}
	for i, l := range n.layers {
		if !l.Primed() {
			return errors.Wrapf(ErrSequencing, "network back-propagate: layer %d", i)
		}
	}
	for i := len(n.layers) - 1; i >= 0; i-- {
		var err error
		errs, err = n.layers[i].BackPropagate(errs)
		if err != nil {
			return errors.Wrapf(err, "layer %d", i)
		}
	}
	return nil
}
