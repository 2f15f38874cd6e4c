package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector exports training progress to Prometheus.
type Collector struct {
	Loss          prometheus.Gauge
	SamplesPerSec prometheus.Gauge
	Epochs        prometheus.Counter
	Samples       prometheus.Counter
}

// NewCollector creates the training metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		Loss: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "letternet",
			Name:      "loss",
			Help:      "Mean squared error of the most recent epoch.",
		}),
		SamplesPerSec: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "letternet",
			Name:      "samples_per_second",
			Help:      "Training throughput over the last snapshot window.",
		}),
		Epochs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "letternet",
			Name:      "epochs_total",
			Help:      "Completed training epochs.",
		}),
		Samples: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "letternet",
			Name:      "samples_total",
			Help:      "Samples passed forward and back through the network.",
		}),
	}
	for _, m := range []prometheus.Collector{c.Loss, c.SamplesPerSec, c.Epochs, c.Samples} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Observe publishes a snapshot.
func (c *Collector) Observe(snap Snapshot) {
	c.Loss.Set(snap.LastLoss)
	c.SamplesPerSec.Set(snap.SamplesPerSec)
	c.Epochs.Add(float64(snap.Epochs))
	c.Samples.Add(float64(snap.Samples))
}
