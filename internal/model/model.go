package model

import "letternet/internal/vector"

// Model defines the minimal training functionality required by the trainer.
type Model interface {
	Forward(input vector.Vector) (vector.Vector, error)
	BackPropagate(errors vector.Vector) error
}

var _ Model = (*Network)(nil)
