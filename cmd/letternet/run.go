package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/pkg/errors"

	"letternet/internal/config"
	"letternet/internal/dataset"
	"letternet/internal/model"
	"letternet/internal/report"
	"letternet/internal/trainer"
	"letternet/internal/vector"
)

// run builds the network, trains it and prints a prediction for every
// training glyph followed by every probe.
func run(ctx context.Context, cfg *config.Config, runCfg trainer.RunConfig, data *dataset.Dataset, out io.Writer) error {
	sizes := append(append([]int(nil), cfg.Hidden...), data.OutputSize())
	net, err := model.New(data.InputSize(), sizes, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return errors.Wrap(err, "build network")
	}
	if err := data.Validate(net.Size()); err != nil {
		return err
	}

	if _, err := trainer.Run(ctx, runCfg, net, data); err != nil {
		return err
	}

	for _, s := range data.Samples {
		if err := predict(out, net, data, s.Label, s.Input); err != nil {
			return err
		}
	}

	probes := cfg.Probes
	if len(probes) == 0 && data.Width == dataset.GlyphWidth && data.Height == dataset.GlyphHeight {
		probes = []dataset.Glyph{dataset.DefaultProbe}
	}
	for _, g := range probes {
		input, err := g.Bitmap(data.Width, data.Height)
		if err != nil {
			return errors.Wrap(err, "probe")
		}
		if err := predict(out, net, data, g.Label, input); err != nil {
			return err
		}
	}
	return nil
}

func predict(out io.Writer, net model.Model, data *dataset.Dataset, label string, input vector.Vector) error {
	scores, err := net.Forward(input)
	if err != nil {
		return errors.Wrapf(err, "predict %s", label)
	}
	fmt.Fprintf(out, "---------------- %s ----------------\n", label)
	fmt.Fprint(out, report.Glyph(input, data.Width))
	return report.Prediction(out, data.Labels, scores)
}
