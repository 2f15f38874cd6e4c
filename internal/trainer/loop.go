package trainer

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"letternet/internal/dataset"
	"letternet/internal/metrics"
	"letternet/internal/model"
	"letternet/internal/vector"
)

// RunConfig captures the knobs required by the training loop.
type RunConfig struct {
	Epochs    int
	LogEvery  int
	Seed      int64
	Shuffle   bool
	// Collector is optional; when set every logged snapshot is published to it.
	Collector *metrics.Collector
}

// Result summarises a finished run.
type Result struct {
	RunID       string
	Epochs      int
	InitialLoss float64
	FinalLoss   float64
}

// Run trains mdl on data for cfg.Epochs epochs. Each sample is one forward
// pass immediately followed by one back-propagation of output - expected.
// Cancellation is checked between samples.
func Run(ctx context.Context, cfg RunConfig, mdl model.Model, data *dataset.Dataset) (Result, error) {
	if cfg.Epochs <= 0 {
		return Result{}, errors.New("trainer: epochs must be > 0")
	}
	if len(data.Samples) == 0 {
		return Result{}, errors.New("trainer: dataset is empty")
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = 100
	}

	res := Result{RunID: uuid.New().String()}
	logger := log.With().Str("run", res.RunID).Logger()

	initial, err := Evaluate(mdl, data)
	if err != nil {
		return res, err
	}
	res.InitialLoss = initial
	logger.Info().
		Int("epochs", cfg.Epochs).
		Int("samples", len(data.Samples)).
		Float64("loss", initial).
		Msg("training started")

	var rng *rand.Rand
	if cfg.Shuffle {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	var window metrics.Window

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		start := time.Now()
		total := 0.0
		for _, i := range dataset.Order(len(data.Samples), rng) {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			loss, err := Step(mdl, data.Samples[i])
			if err != nil {
				return res, errors.Wrapf(err, "epoch %d sample %s", epoch, data.Samples[i].Label)
			}
			total += loss
		}
		res.Epochs = epoch
		window.Record(len(data.Samples), time.Since(start), total/float64(len(data.Samples)))

		if epoch%cfg.LogEvery == 0 || epoch == cfg.Epochs {
			snap := window.Snapshot()
			if cfg.Collector != nil {
				cfg.Collector.Observe(snap)
			}
			logger.Info().
				Int("epoch", epoch).
				Float64("loss", snap.LastLoss).
				Float64("samples_per_sec", snap.SamplesPerSec).
				Float64("epoch_ms", snap.AvgEpochMS).
				Msg("train")
		}
	}

	final, err := Evaluate(mdl, data)
	if err != nil {
		return res, err
	}
	res.FinalLoss = final
	logger.Info().
		Float64("initial_loss", res.InitialLoss).
		Float64("final_loss", res.FinalLoss).
		Msg("training finished")
	return res, nil
}

// Step runs one forward/backward round trip for s and returns the mean
// squared error of the output it produced before the update.
func Step(mdl model.Model, s dataset.Sample) (float64, error) {
	out, err := mdl.Forward(s.Input)
	if err != nil {
		return 0, err
	}
	errs, err := out.Sub(s.Expected)
	if err != nil {
		return 0, errors.Wrap(err, "output error")
	}
	if err := mdl.BackPropagate(errs); err != nil {
		return 0, err
	}
	return meanSquared(errs), nil
}

// Evaluate returns the mean squared error over data without training.
func Evaluate(mdl model.Model, data *dataset.Dataset) (float64, error) {
	if len(data.Samples) == 0 {
		return 0, errors.New("trainer: dataset is empty")
	}
	total := 0.0
	for _, s := range data.Samples {
		out, err := mdl.Forward(s.Input)
		if err != nil {
			return 0, errors.Wrapf(err, "evaluate %s", s.Label)
		}
		diff, err := out.Sub(s.Expected)
		if err != nil {
			return 0, errors.Wrapf(err, "evaluate %s", s.Label)
		}
		total += meanSquared(diff)
	}
	return total / float64(len(data.Samples)), nil
}

func meanSquared(v vector.Vector) float64 {
	if len(v) == 0 {
		return 0
	}
	return v.SquaredNorm() / float64(len(v))
}
