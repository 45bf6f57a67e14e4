package renderer

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ry-diffusion/gyra-go/pkg/chunk"
	"github.com/ry-diffusion/gyra-go/pkg/mesh"
)

// defaultMeshWorkers bounds the compute-bound pool meshing runs on. Greedy
// meshing is CPU-only, so there is no benefit past one worker per core;
// four is a reasonable default for a headless client that also has a
// 20Hz tick loop and a TUI to keep responsive.
const defaultMeshWorkers = 4

// meshJobQueueSize caps how many columns can be queued for meshing before
// submit starts dropping them; see its doc comment.
const meshJobQueueSize = 64

type meshJob struct {
	pos       chunk.Vec2
	col       *chunk.Column
	neighbors map[mesh.NeighborOffset]*chunk.Column
}

type meshResult struct {
	pos     chunk.Vec2
	bundles []mesh.Bundle
}

// meshPool runs greedy meshing on cloned column snapshots off the tick
// goroutine. Jobs never carry a world.Store's live pointers — the caller
// clones before submitting — so a worker can run while the store is
// concurrently mutated by the next tick's chunk updates.
type meshPool struct {
	log *logrus.Entry

	jobs    chan meshJob
	results chan meshResult
	wg      sync.WaitGroup
}

func newMeshPool(log *logrus.Entry, workers int) *meshPool {
	if workers < 1 {
		workers = defaultMeshWorkers
	}
	p := &meshPool{
		log:     log,
		jobs:    make(chan meshJob, meshJobQueueSize),
		results: make(chan meshResult, meshJobQueueSize),
	}
	for i := 0; i < workers; i++ {
		go p.run()
	}
	return p
}

func (p *meshPool) run() {
	for job := range p.jobs {
		bundles := mesh.Construct(job.col, job.neighbors)
		p.results <- meshResult{pos: job.pos, bundles: bundles}
		p.wg.Done()
	}
}

// submit queues a mesh job. The queue is bounded: a saturated pool drops
// the job and logs rather than blocking the tick loop, mirroring how
// pkg/debugbridge drops a broadcast for a client whose send buffer is
// full instead of stalling every other client.
func (p *meshPool) submit(job meshJob) {
	p.wg.Add(1)
	select {
	case p.jobs <- job:
	default:
		p.wg.Done()
		if p.log != nil {
			p.log.WithField("pos", job.pos).Warn("mesh pool saturated, dropping chunk for this frame")
		}
	}
}

// wait blocks until every job submitted so far has produced a result.
func (p *meshPool) wait() { p.wg.Wait() }
