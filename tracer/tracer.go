package tracer

import (
	"time"

	"github.com/achilleasa/aobench/scene"
)

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// The number of jittered primary rays per pixel axis.
	Subsamples uint32

	// The seed for the random number generator used while tracing this block.
	Seed uint32

	// A channel to signal on block completion with the number of completed rows.
	DoneChan chan<- uint32

	// A channel to signal if an error occurs.
	ErrChan chan<- error
}

// Tracer statistics.
type Stats struct {
	// The rendered block height
	BlockH uint32

	// The time for rendering the last block.
	RenderTime time.Duration
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Get the tracers relative computation speed. It is used by the
	// block schedulers to split the frame when no timing data is available.
	Speed() uint32

	// Attach the tracer to a scene and an accumulation buffer with frameW*frameH
	// entries and start processing block requests.
	Init(sc *scene.Scene, frameW, frameH uint32, accumBuffer []float32) error

	// Shutdown and cleanup tracer.
	Close()

	// Enqueue block request.
	Enqueue(BlockRequest)

	// Retrieve last block statistics.
	Stats() *Stats
}
