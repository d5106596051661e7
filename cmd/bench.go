package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/achilleasa/aobench/renderer"
	"github.com/achilleasa/aobench/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

type benchFrame struct {
	renderTime time.Duration
	meanAO     float32
	blocks     []uint32
}

// Render a sequence of frames and report per-frame timings.
func Benchmark(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	numFrames := ctx.Int("frames")
	if numFrames <= 0 {
		return fmt.Errorf("invalid frame count %d", numFrames)
	}

	scheduler, err := blockScheduler(ctx.String("scheduler"))
	if err != nil {
		return err
	}

	r, err := renderer.NewDefault(scene.Default(), scheduler, opts)
	if err != nil {
		return err
	}
	defer r.Close()

	renderCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger.Noticef("benchmarking %d frame(s) at %dx%d with %dx%d subsamples per pixel", numFrames, opts.FrameW, opts.FrameH, opts.Subsamples, opts.Subsamples)
	frames := make([]benchFrame, 0, numFrames)
	for i := 0; i < numFrames; i++ {
		fb, err := r.Render(renderCtx)
		if err != nil {
			return err
		}

		stats := r.Stats()
		blocks := make([]uint32, len(stats.Tracers))
		for idx, stat := range stats.Tracers {
			blocks[idx] = stat.BlockH
		}
		frames = append(frames, benchFrame{
			renderTime: stats.RenderTime,
			meanAO:     fb.Mean(),
			blocks:     blocks,
		})
		logger.Infof("frame %d rendered in %s", i, stats.RenderTime)
	}

	displayBenchStats(frames, opts)
	return nil
}

func displayBenchStats(frames []benchFrame, opts renderer.Options) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame", "Render time", "Primary rays/s", "Mean AO", "Block assignment"})

	primaryRays := float64(opts.FrameW) * float64(opts.FrameH) * float64(opts.Subsamples*opts.Subsamples)
	var total time.Duration
	for idx, f := range frames {
		total += f.renderTime
		table.Append([]string{
			fmt.Sprintf("%d", idx),
			f.renderTime.String(),
			fmt.Sprintf("%.0f", primaryRays/f.renderTime.Seconds()),
			fmt.Sprintf("%.4f", f.meanAO),
			formatBlocks(f.blocks),
		})
	}
	avg := total / time.Duration(len(frames))
	table.SetFooter([]string{"", "", "", "AVERAGE", avg.String()})

	table.Render()
	logger.Noticef("benchmark statistics\n%s", buf.String())
}

func formatBlocks(blocks []uint32) string {
	parts := make([]string, len(blocks))
	for idx, rows := range blocks {
		parts[idx] = fmt.Sprintf("%d", rows)
	}
	return strings.Join(parts, "/")
}
