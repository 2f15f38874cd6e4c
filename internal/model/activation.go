package model

import "math"

// LearningRate scales every error signal into a neuron's delta.
const LearningRate = 0.2

// Sigmoid is the logistic function 1 / (1 + e^-t).
func Sigmoid(t float64) float64 {
	return 1.0 / (1.0 + math.Exp(-t))
}
