package model

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"letternet/internal/vector"
)

func TestNewLayer(t *testing.T) {
	tests := []struct {
		name    string
		neurons []*Neuron
		wantErr bool
	}{
		{
			name:    "empty",
			wantErr: true,
		},
		{
			name: "uneven inputs",
			neurons: []*Neuron{
				NewNeuronWithWeights(vector.Of(1, 2)),
				NewNeuronWithWeights(vector.Of(1, 2, 3)),
			},
			wantErr: true,
		},
		{
			name: "valid",
			neurons: []*Neuron{
				NewNeuronWithWeights(vector.Of(1, 2)),
				NewNeuronWithWeights(vector.Of(3, 4)),
				NewNeuronWithWeights(vector.Of(5, 6)),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLayer(tt.neurons...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			in, out := l.Size()
			assert.Equal(t, 2, in)
			assert.Equal(t, 3, out)
		})
	}
}

func TestLayerForward(t *testing.T) {
	l, err := NewDenseLayer(5, 3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	out, err := l.Forward(vector.Of(1, 0, 1))
	require.NoError(t, err)
	require.Len(t, out, 5)
	for i, n := range l.Neurons() {
		y, err := n.Forward(vector.Of(1, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, y, out[i])
	}
}

func TestLayerForwardDimensionMismatch(t *testing.T) {
	l, err := NewDenseLayer(3, 4, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, err = l.Forward(vector.Of(1, 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	assert.False(t, l.Primed())
}

func TestLayerBackPropagateAccumulates(t *testing.T) {
	weights := []vector.Vector{
		vector.Of(0.1, 0.2, 0.3),
		vector.Of(-0.4, 0.5, 0.6),
	}
	l, err := NewLayer(NewNeuronWithWeights(weights[0]), NewNeuronWithWeights(weights[1]))
	require.NoError(t, err)

	input := vector.Of(1, 1, 0)
	_, err = l.Forward(input)
	require.NoError(t, err)

	errs := vector.Of(0.5, -1)
	got, err := l.BackPropagate(errs)
	require.NoError(t, err)

	want := vector.New(3)
	for i, w := range weights {
		for j := range want {
			want[j] += w[j] * errs[i] * LearningRate
		}
	}
	assert.InDeltaSlice(t, want, got, 1e-12)

	for i, n := range l.Neurons() {
		assert.InDelta(t, errs[i]*LearningRate, n.LastDelta(), 1e-12)
		assert.InDelta(t, weights[i][2], n.Weights()[2], 1e-12, "zero input must leave weight unchanged")
	}
}

func TestLayerBackPropagatePreconditions(t *testing.T) {
	l, err := NewDenseLayer(2, 3, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	before := l.Neurons()[0].Weights()

	_, err = l.BackPropagate(vector.Of(1, 1))
	assert.True(t, errors.Is(err, ErrSequencing))

	_, err = l.Forward(vector.Of(1, 1, 1))
	require.NoError(t, err)

	_, err = l.BackPropagate(vector.Of(1, 1, 1))
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	assert.Equal(t, before, l.Neurons()[0].Weights())
}
