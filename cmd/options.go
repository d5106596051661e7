package cmd

import (
	"fmt"

	"github.com/achilleasa/aobench/renderer"
	"github.com/achilleasa/aobench/tracer"
	"github.com/urfave/cli"
)

// Build renderer options from the command flags.
func renderOptions(ctx *cli.Context) (renderer.Options, error) {
	width, height, subsamples := ctx.Int("width"), ctx.Int("height"), ctx.Int("subsamples")
	if width <= 0 || height <= 0 {
		return renderer.Options{}, fmt.Errorf("invalid frame dimensions %dx%d", width, height)
	}
	if subsamples <= 0 {
		return renderer.Options{}, fmt.Errorf("invalid subsample count %d", subsamples)
	}

	return renderer.Options{
		FrameW:     uint32(width),
		FrameH:     uint32(height),
		Subsamples: uint32(subsamples),
		NumWorkers: ctx.Int("workers"),
	}, nil
}

// Select the block scheduler by name.
func blockScheduler(name string) (tracer.BlockScheduler, error) {
	switch name {
	case "naive":
		return tracer.NaiveScheduler(), nil
	case "perfect":
		return tracer.PerfectScheduler(), nil
	}
	return nil, fmt.Errorf("unknown block scheduler %q", name)
}
