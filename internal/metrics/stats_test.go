package metrics

import (
	"math"
	"testing"
	"time"
)

func TestWindowSnapshot(t *testing.T) {
	var w Window
	w.Record(4, 20*time.Millisecond, 0.7)
	w.Record(4, 60*time.Millisecond, 0.5)
	snap := w.Snapshot()
	if math.Abs(snap.SamplesPerSec-100) > 1e-6 {
		t.Fatalf("unexpected throughput %.2f", snap.SamplesPerSec)
	}
	if math.Abs(snap.AvgEpochMS-40) > 1e-6 {
		t.Fatalf("unexpected epoch time %.2f", snap.AvgEpochMS)
	}
	if snap.Epochs != 2 || snap.Samples != 8 {
		t.Fatalf("unexpected counts %+v", snap)
	}
	if w.samples != 0 || w.epochs != 0 {
		t.Fatalf("window was not reset")
	}
	if snap.LastLoss != 0.5 {
		t.Fatalf("expected last loss 0.5, got %.2f", snap.LastLoss)
	}
}
