package renderer

import "time"

type TracerStat struct {
	// The tracer id.
	Id string

	// The block start row, height and the percentage of total frame area it represents.
	BlockY       uint32
	BlockH       uint32
	FramePercent float32

	// Render time for assigned block
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual tracer stats.
	Tracers []TracerStat

	// Total render time for entire frame.
	RenderTime time.Duration
}
