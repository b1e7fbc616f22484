// Package parallel runs independent render jobs on a fixed set of goroutines.
package parallel

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines for running mask-group jobs.
//
// Each worker has its own queue and steals from the others when its queue is
// empty, so one slow group does not hold up the rest of a batch.
//
// Thread safety: WorkerPool is safe for concurrent use. Jobs must not submit
// further work to the pool they run on.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// workQueues holds per-worker work queues.
	workQueues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.workQueues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case work := <-own:
			if work != nil {
				work()
			}
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case work := <-own:
				if work != nil {
					work()
				}
			}
		}
	}
}

func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll runs every job and waits for all of them to finish.
//
// The returned slice has one entry per job, in job order; an entry is nil
// when the job succeeded. A job that panics reports the panic as its error
// and does not take down the other jobs. If the pool has been closed, the
// jobs run sequentially on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func() error) []error {
	errs := make([]error, len(work))
	if len(work) == 0 {
		return errs
	}

	if !p.running.Load() {
		for i, fn := range work {
			errs[i] = run(fn)
		}
		return errs
	}

	var completion sync.WaitGroup
	completion.Add(len(work))

	for i, fn := range work {
		job := func() {
			defer completion.Done()
			errs[i] = run(fn)
		}

		select {
		case p.workQueues[i%p.workers] <- job:
		case <-p.done:
			// Closed mid-batch: run what is left here.
			job()
		}
	}

	completion.Wait()
	return errs
}

// run calls fn, converting a panic into an error.
func run(fn func() error) (err error) {
	if fn == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parallel: job panicked: %v", r)
		}
	}()
	return fn()
}

// Close stops accepting new work, waits for queued work to complete,
// and then stops all workers. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
