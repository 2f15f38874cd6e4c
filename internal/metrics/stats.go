package metrics

import "time"

// Window accumulates training stats across multiple epochs.
type Window struct {
	samples  int
	elapsed  time.Duration
	epochs   int
	lastLoss float64
}

// Record adds one finished epoch to the window.
func (w *Window) Record(samples int, elapsed time.Duration, loss float64) {
	w.samples += samples
	w.elapsed += elapsed
	w.epochs++
	w.lastLoss = loss
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{Epochs: w.epochs, Samples: w.samples}
	if w.elapsed > 0 {
		snap.SamplesPerSec = float64(w.samples) / w.elapsed.Seconds()
	}
	if w.epochs > 0 {
		snap.AvgEpochMS = (w.elapsed.Seconds() * 1000) / float64(w.epochs)
	}
	snap.LastLoss = w.lastLoss

	w.samples = 0
	w.elapsed = 0
	w.epochs = 0
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	Epochs        int
	Samples       int
	SamplesPerSec float64
	AvgEpochMS    float64
	LastLoss      float64
}
