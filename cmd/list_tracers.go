package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/achilleasa/aobench/renderer"
	"github.com/achilleasa/aobench/tracer"
	"github.com/achilleasa/aobench/tracer/cpu"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the cpu tracers that a render would use together with the rows the
// naive scheduler assigns to each one of them.
func ListTracers(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	logger.Noticef("tracer assignment\n%s", tracerTable(opts))
	return nil
}

func tracerTable(opts renderer.Options) string {
	numWorkers := renderer.NumTracers(opts)

	tracers := make([]tracer.Tracer, numWorkers)
	for idx := range tracers {
		tracers[idx] = cpu.NewTracer(fmt.Sprintf("cpu-%d", idx))
	}
	blockAssignment := tracer.NaiveScheduler().Schedule(tracers, opts.FrameH)

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("\nSystem provides %d cpu core(s); using %d tracer(s):\n\n", runtime.NumCPU(), numWorkers))

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Tracer", "Speed", "Block start", "Block height"})
	var blockY uint32
	for idx, tr := range tracers {
		table.Append([]string{
			tr.Id(),
			fmt.Sprintf("%d", tr.Speed()),
			fmt.Sprintf("%d", blockY),
			fmt.Sprintf("%d", blockAssignment[idx]),
		})
		blockY += blockAssignment[idx]
	}
	table.Render()

	return buf.String()
}
