package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/achilleasa/aobench/ao"
	"github.com/achilleasa/aobench/frame"
	"github.com/achilleasa/aobench/log"
	"github.com/achilleasa/aobench/scene"
	"github.com/achilleasa/aobench/tracer"
	"github.com/achilleasa/aobench/tracer/cpu"
)

// The default renderer splits each frame into row blocks and renders them
// in parallel using a pool of cpu tracers.
type defaultRenderer struct {
	logger log.Logger

	scene     *scene.Scene
	scheduler tracer.BlockScheduler
	tracers   []tracer.Tracer
	options   Options

	frame *frame.Buffer

	blockAssignments []uint32
	frameStats       FrameStats
}

// Create a new renderer using the specified block scheduler.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if opts.FrameW == 0 || opts.FrameH == 0 || opts.Subsamples == 0 {
		return nil, ErrInvalidFrame
	}

	tracers := make([]tracer.Tracer, NumTracers(opts))
	for idx := range tracers {
		tracers[idx] = cpu.NewTracer(fmt.Sprintf("cpu-%d", idx))
	}

	r, err := newRenderer(sc, scheduler, tracers, opts)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Get the number of cpu tracers used for rendering frames with the supplied
// options. Each tracer needs at least one row to work on.
func NumTracers(opts Options) int {
	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > int(opts.FrameH) {
		numWorkers = int(opts.FrameH)
	}
	return numWorkers
}

func newRenderer(sc *scene.Scene, scheduler tracer.BlockScheduler, tracers []tracer.Tracer, opts Options) (*defaultRenderer, error) {
	if len(tracers) == 0 {
		return nil, ErrNoTracers
	}

	r := &defaultRenderer{
		logger:    log.New("renderer"),
		scene:     sc,
		scheduler: scheduler,
		tracers:   tracers,
		options:   opts,
		frame:     frame.New(int(opts.FrameW), int(opts.FrameH)),
	}

	for _, tr := range tracers {
		err := tr.Init(sc, opts.FrameW, opts.FrameH, r.frame.Pix)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("renderer: could not init tracer %s: %w", tr.Id(), err)
		}
	}
	r.logger.Infof("attached %d tracer(s) for a %dx%d frame", len(tracers), opts.FrameW, opts.FrameH)

	return r, nil
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.frameStats
}

// Render a new frame. The returned buffer is owned by the renderer and is
// overwritten by the next call to Render. Tracers may still be writing to the
// frame when Render returns an error so the renderer should be closed.
func (r *defaultRenderer) Render(ctx context.Context) (*frame.Buffer, error) {
	start := time.Now()
	r.frame.Reset()

	r.blockAssignments = r.scheduler.Schedule(r.tracers, r.options.FrameH)

	doneChan := make(chan uint32, len(r.tracers))
	errChan := make(chan error, len(r.tracers))

	pending := 0
	blockYs := make([]uint32, len(r.tracers))
	var blockY uint32
	for idx, tr := range r.tracers {
		blockH := r.blockAssignments[idx]
		blockYs[idx] = blockY
		if blockH == 0 {
			continue
		}

		tr.Enqueue(tracer.BlockRequest{
			BlockY:     blockY,
			BlockH:     blockH,
			Subsamples: r.options.Subsamples,
			Seed:       ao.Seed(uint32(idx), blockY),
			DoneChan:   doneChan,
			ErrChan:    errChan,
		})
		blockY += blockH
		pending++
	}

	var renderedRows uint32
	for pending > 0 {
		select {
		case rows := <-doneChan:
			renderedRows += rows
			pending--
		case err := <-errChan:
			return nil, err
		case <-ctx.Done():
			return nil, ErrInterrupted
		}
	}

	r.updateStats(blockYs, time.Since(start))
	r.logger.Debugf("rendered %d rows in %s", renderedRows, r.frameStats.RenderTime)

	return r.frame, nil
}

func (r *defaultRenderer) updateStats(blockYs []uint32, renderTime time.Duration) {
	r.frameStats.RenderTime = renderTime
	r.frameStats.Tracers = make([]TracerStat, len(r.tracers))
	for idx, tr := range r.tracers {
		blockH := r.blockAssignments[idx]
		stat := TracerStat{
			Id:           tr.Id(),
			BlockY:       blockYs[idx],
			BlockH:       blockH,
			FramePercent: 100.0 * float32(blockH) / float32(r.options.FrameH),
		}
		if blockH != 0 {
			stat.RenderTime = tr.Stats().RenderTime
		}
		r.frameStats.Tracers[idx] = stat
	}
}
