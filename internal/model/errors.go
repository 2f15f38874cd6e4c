package model

import "letternet/internal/vector"

// Error is a sentinel error with no further information attached.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the contract violations the network reports. Both are wrapped with
// the failing call's context and can be matched with errors.Is.
var (
	ErrDimensionMismatch = vector.ErrDimensionMismatch
	ErrSequencing        = Error{"back-propagate called before forward"}
)
