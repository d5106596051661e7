package renderer

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of jittered primary rays per pixel axis.
	Subsamples uint32

	// Number of cpu tracers. If zero, one tracer per cpu core is created.
	NumWorkers int
}
