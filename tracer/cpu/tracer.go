package cpu

import (
	"fmt"
	"sync"
	"time"

	"github.com/achilleasa/aobench/ao"
	"github.com/achilleasa/aobench/log"
	"github.com/achilleasa/aobench/scene"
	"github.com/achilleasa/aobench/tracer"
)

// A tracer that renders blocks on a dedicated go-routine.
type cpuTracer struct {
	logger log.Logger

	sync.Mutex
	wg sync.WaitGroup

	// The tracer id.
	id string

	// The attached scene and accumulation buffer.
	scene       *scene.Scene
	frameW      uint32
	frameH      uint32
	accumBuffer []float32

	// A channel for receiving block requests from the renderer.
	blockReqChan chan tracer.BlockRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	// Statistics for last rendered block.
	stats *tracer.Stats
}

// Create a new cpu tracer.
func NewTracer(id string) tracer.Tracer {
	return &cpuTracer{
		logger: log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:     id,
		stats:  &tracer.Stats{},
	}
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// All cpu tracers are assumed to run at the same speed.
func (tr *cpuTracer) Speed() uint32 {
	return 1
}

// Attach the tracer to a scene and accumulation buffer and start the worker.
func (tr *cpuTracer) Init(sc *scene.Scene, frameW, frameH uint32, accumBuffer []float32) error {
	tr.Lock()
	defer tr.Unlock()

	if tr.closeChan != nil {
		return ErrAlreadyAttached
	}
	if frameW == 0 || frameH == 0 {
		return ErrInvalidFrame
	}
	if len(accumBuffer) != int(frameW*frameH) {
		return ErrBufferSize
	}

	tr.scene = sc
	tr.frameW = frameW
	tr.frameH = frameH
	tr.accumBuffer = accumBuffer
	tr.blockReqChan = make(chan tracer.BlockRequest, 1)
	tr.closeChan = make(chan struct{})

	tr.startWorker()
	return nil
}

// Shutdown and cleanup tracer.
func (tr *cpuTracer) Close() {
	tr.Lock()
	defer tr.Unlock()

	if tr.closeChan == nil {
		return
	}

	close(tr.closeChan)
	tr.wg.Wait()

	tr.closeChan = nil
	tr.scene = nil
	tr.accumBuffer = nil
}

// Enqueue block request. Requests to a tracer that has not been initialized
// or has been closed are rejected through the request's error channel.
func (tr *cpuTracer) Enqueue(blockReq tracer.BlockRequest) {
	tr.Lock()
	reqChan, closeChan := tr.blockReqChan, tr.closeChan
	tr.Unlock()

	if closeChan == nil {
		tr.logger.Error("rejecting block request; tracer is not running")
		blockReq.ErrChan <- ErrNotInitialized
		return
	}

	select {
	case reqChan <- blockReq:
	case <-closeChan:
		blockReq.ErrChan <- ErrClosed
	}
}

// Retrieve last block statistics.
func (tr *cpuTracer) Stats() *tracer.Stats {
	return tr.stats
}

// Spawn a go-routine to process block render requests.
func (tr *cpuTracer) startWorker() {
	readyChan := make(chan struct{})
	tr.wg.Add(1)
	go func(reqChan <-chan tracer.BlockRequest, closeChan <-chan struct{}) {
		defer tr.wg.Done()
		close(readyChan)
		for {
			select {
			case blockReq := <-reqChan:
				startTime := time.Now()

				// Render block and reply with our completion status
				err := tr.renderBlock(&blockReq)
				if err != nil {
					blockReq.ErrChan <- err
					continue
				}

				// Update stats
				tr.stats.BlockH = blockReq.BlockH
				tr.stats.RenderTime = time.Since(startTime)
				tr.logger.Debugf("rendered rows [%d, %d) in %s", blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, tr.stats.RenderTime)

				blockReq.DoneChan <- blockReq.BlockH
			case <-closeChan:
				return
			}
		}
	}(tr.blockReqChan, tr.closeChan)

	// Wait for go-routine to start
	<-readyChan
}

// Render block.
func (tr *cpuTracer) renderBlock(blockReq *tracer.BlockRequest) error {
	if blockReq.BlockY+blockReq.BlockH > tr.frameH {
		return ErrBlockOutOfBounds
	}
	if blockReq.Subsamples == 0 {
		return ErrNoSubsamples
	}

	ao.RenderRows(
		tr.scene,
		ao.NewRng(blockReq.Seed),
		int(blockReq.BlockY),
		int(blockReq.BlockY+blockReq.BlockH),
		int(tr.frameW),
		int(tr.frameH),
		int(blockReq.Subsamples),
		tr.accumBuffer,
	)

	return nil
}
