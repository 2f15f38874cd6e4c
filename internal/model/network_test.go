package model

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"letternet/internal/vector"
)

func TestNewNetworkChaining(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a, err := NewDenseLayer(3, 2, rng)
	require.NoError(t, err)
	b, err := NewDenseLayer(1, 4, rng)
	require.NoError(t, err)

	_, err = NewNetwork(a, b)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))

	_, err = NewNetwork()
	assert.Error(t, err)
}

func TestNetworkForwardShape(t *testing.T) {
	n, err := New(20, []int{20, 10, 4}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	in, out := n.Size()
	assert.Equal(t, 20, in)
	assert.Equal(t, 4, out)

	y, err := n.Forward(vector.New(20))
	require.NoError(t, err)
	assert.Len(t, y, 4)

	again, err := n.Forward(vector.New(20))
	require.NoError(t, err)
	assert.Equal(t, y, again)
}

func TestNetworkSingleNeuron(t *testing.T) {
	l, err := NewLayer(NewNeuronWithWeights(vector.Of(1, 0)))
	require.NoError(t, err)
	n, err := NewNetwork(l)
	require.NoError(t, err)

	y, err := n.Forward(vector.Of(1, 1))
	require.NoError(t, err)
	require.Len(t, y, 1)
	assert.InDelta(t, Sigmoid(1), y[0], 1e-12)
	assert.InDelta(t, 0.731, y[0], 1e-3)
}

func TestNetworkZeroInputIgnoresFirstLayer(t *testing.T) {
	for _, first := range []vector.Vector{vector.Of(0.9, 0.1), vector.Of(-3, 7)} {
		l1, err := NewLayer(NewNeuronWithWeights(first))
		require.NoError(t, err)
		l2, err := NewLayer(NewNeuronWithWeights(vector.Of(0.8)))
		require.NoError(t, err)
		n, err := NewNetwork(l1, l2)
		require.NoError(t, err)

		y, err := n.Forward(vector.Of(0, 0))
		require.NoError(t, err)
		assert.InDelta(t, Sigmoid(Sigmoid(0)*0.8), y[0], 1e-12)
	}
}

func TestNetworkBackPropagateThreadsErrors(t *testing.T) {
	w1 := vector.Of(0.5, 0.25)
	w2 := vector.Of(2)
	l1, err := NewLayer(NewNeuronWithWeights(w1))
	require.NoError(t, err)
	l2, err := NewLayer(NewNeuronWithWeights(w2))
	require.NoError(t, err)
	n, err := NewNetwork(l1, l2)
	require.NoError(t, err)

	input := vector.Of(1, 1)
	y, err := n.Forward(input)
	require.NoError(t, err)
	hidden := Sigmoid(0.75)

	require.NoError(t, n.BackPropagate(vector.Of(y[0]-1)))

	d2 := (y[0] - 1) * LearningRate
	assert.InDelta(t, 2-hidden*d2, l2.Neurons()[0].Weights()[0], 1e-12)

	// the first layer receives the error built from layer two's old weight
	d1 := 2 * d2 * LearningRate
	assert.InDelta(t, d1, l1.Neurons()[0].LastDelta(), 1e-12)
	assert.InDeltaSlice(t, []float64{0.5 - d1, 0.25 - d1}, l1.Neurons()[0].Weights(), 1e-12)
}

func TestNetworkForwardMismatchLeavesStateUntouched(t *testing.T) {
	n, err := New(4, []int{3, 2}, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	before := snapshot(n)

	_, err = n.Forward(vector.Of(1, 2, 3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	assert.Equal(t, before, snapshot(n))
	for _, l := range n.Layers() {
		assert.False(t, l.Primed())
	}

	err = n.BackPropagate(vector.Of(1, 1))
	assert.True(t, errors.Is(err, ErrSequencing))
	assert.Equal(t, before, snapshot(n))
}

func TestNetworkBackPropagateWrongLength(t *testing.T) {
	n, err := New(2, []int{2, 2}, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	_, err = n.Forward(vector.Of(1, 0))
	require.NoError(t, err)
	before := snapshot(n)

	err = n.BackPropagate(vector.Of(1, 1, 1))
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	assert.Equal(t, before, snapshot(n))
}

func snapshot(n *Network) [][]vector.Vector {
	var out [][]vector.Vector
	for _, l := range n.Layers() {
		var ws []vector.Vector
		for _, neuron := range l.Neurons() {
			ws = append(ws, neuron.Weights())
		}
		out = append(out, ws)
	}
	return out
}
