package model

import (
	"math/rand"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"letternet/internal/vector"
)

// Neuron computes sigmoid(input . weights) and learns from a scalar error.
//
// The backward pass uses the plain delta rule error*LearningRate with no
// activation derivative term.
type Neuron struct {
	weights   vector.Vector
	lastInput vector.Vector
	lastDelta float64
	primed    bool
}

// NewNeuron creates a neuron with inputs weights drawn uniformly from [0,1).
func NewNeuron(inputs int, rng *rand.Rand) *Neuron {
	w := vector.New(inputs)
	for i := range w {
		w[i] = rng.Float64()
	}
	return &Neuron{weights: w}
}

// NewNeuronWithWeights creates a neuron starting from a copy of weights.
func NewNeuronWithWeights(weights vector.Vector) *Neuron {
	return &Neuron{weights: weights.Clone()}
}

// Inputs returns the input dimension.
func (n *Neuron) Inputs() int {
	return len(n.weights)
}

// Weights returns a copy of the current weights.
func (n *Neuron) Weights() vector.Vector {
	return n.weights.Clone()
}

// LastDelta returns the delta of the most recent backward pass.
func (n *Neuron) LastDelta() float64 {
	return n.lastDelta
}

// Primed reports whether the neuron has seen a forward pass.
func (n *Neuron) Primed() bool {
	return n.primed
}

// Forward returns the activation for input and remembers input for the next
// backward pass. On a dimension mismatch nothing is cached.
func (n *Neuron) Forward(input vector.Vector) (float64, error) {
	s, err := input.Dot(n.weights)
	if err != nil {
		return 0, errors.Wrap(err, "neuron forward")
	}
	n.lastInput = input.Clone()
	n.primed = true
	return Sigmoid(s), nil
}

// BackPropagate updates the weights from err and returns the error share for
// the previous layer. The returned vector is derived from the weights as they
// were before this update.
func (n *Neuron) BackPropagate(err float64) (vector.Vector, error) {
	if !n.primed {
		return nil, errors.Wrap(ErrSequencing, "neuron back-propagate")
	}
	n.lastDelta = err * LearningRate
	propagated := n.weights.Scale(n.lastDelta)
	floats.AddScaled(n.weights, -n.lastDelta, n.lastInput)
	return propagated, nil
}
