package model

import (
	"math/rand"

	"github.com/pkg/errors"

	"letternet/internal/vector"
)

// Layer is a group of neurons that all read the same input vector.
type Layer struct {
	inputs  int
	neurons []*Neuron
}

// NewLayer groups neurons into a layer. All of them must share one input dimension.
func NewLayer(neurons ...*Neuron) (*Layer, error) {
	if len(neurons) == 0 {
		return nil, errors.New("layer needs at least one neuron")
	}
	inputs := neurons[0].Inputs()
	for i, n := range neurons {
		if n.Inputs() != inputs {
			return nil, errors.Wrapf(ErrDimensionMismatch, "layer neuron %d has %d inputs, expected %d", i, n.Inputs(), inputs)
		}
	}
	return &Layer{inputs: inputs, neurons: neurons}, nil
}

// NewDenseLayer creates size randomly initialised neurons of the given input dimension.
func NewDenseLayer(size, inputs int, rng *rand.Rand) (*Layer, error) {
	if size <= 0 || inputs <= 0 {
		return nil, errors.Errorf("invalid layer shape %dx%d", size, inputs)
	}
	neurons := make([]*Neuron, size)
	for i := range neurons {
		neurons[i] = NewNeuron(inputs, rng)
	}
	return NewLayer(neurons...)
}

// Size returns the input and output dimension of the layer.
func (l *Layer) Size() (int, int) {
	return l.inputs, len(l.neurons)
}

// Neurons returns the neurons in order.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// Primed reports whether every neuron has seen a forward pass.
func (l *Layer) Primed() bool {
	for _, n := range l.neurons {
		if !n.Primed() {
			return false
		}
	}
	return true
}

// Forward feeds input to every neuron and collects the activations in neuron order.
func (l *Layer) Forward(input vector.Vector) (vector.Vector, error) {
	if len(input) != l.inputs {
		return nil, errors.Wrapf(ErrDimensionMismatch, "layer forward: input %d, expected %d", len(input), l.inputs)
	}
	out := vector.New(len(l.neurons))
	for i, n := range l.neurons {
		y, err := n.Forward(input)
		if err != nil {
			return nil, errors.Wrapf(err, "layer neuron %d", i)
		}
		out[i] = y
	}
	return out, nil
}

// BackPropagate hands errors[i] to neuron i and returns the element-wise sum
// of their propagated errors, sized to the layer input.
// Both preconditions are checked before any weight moves.
func (l *Layer) BackPropagate(errs vector.Vector) (vector.Vector, error) {
	if len(errs) != len(l.neurons) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "layer back-propagate: errors %d, neurons %d", len(errs), len(l.neurons))
	}
	if !l.Primed() {
		return nil, errors.Wrap(ErrSequencing, "layer back-propagate")
	}
	propagated := make([]vector.Vector, len(l.neurons))
	for i, n := range l.neurons {
		p, err := n.BackPropagate(errs[i])
		if err != nil {
			return nil, errors.Wrapf(err, "layer neuron %d", i)
		}
		propagated[i] = p
	}
	return vector.Sum(propagated...)
}
