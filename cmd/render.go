package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/achilleasa/aobench/output"
	"github.com/achilleasa/aobench/renderer"
	"github.com/achilleasa/aobench/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	outW, outH := ctx.Int("out-width"), ctx.Int("out-height")
	if outW < 0 || outH < 0 {
		return fmt.Errorf("invalid output dimensions %dx%d", outW, outH)
	}

	scheduler, err := blockScheduler(ctx.String("scheduler"))
	if err != nil {
		return err
	}

	// Setup output before rendering so that bad destinations fail fast
	writer, err := output.New(ctx.String("out"), loadS3Config(ctx.String("env-file")))
	if err != nil {
		return err
	}

	sc := scene.Default()
	logger.Infof("%s", sc)

	// Create renderer
	r, err := renderer.NewDefault(sc, scheduler, opts)
	if err != nil {
		return err
	}
	defer r.Close()

	renderCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger.Noticef("rendering %dx%d frame with %dx%d subsamples per pixel", opts.FrameW, opts.FrameH, opts.Subsamples, opts.Subsamples)
	fb, err := r.Render(renderCtx)
	if err != nil {
		return err
	}

	err = writer.Write(renderCtx, fb.Image(uint(outW), uint(outH)))
	if err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", writer)

	// Display stats
	displayFrameStats(r.Stats())

	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block start", "Block height", "% of frame", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockY),
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
