// Package exec hosts the concurrency primitives behind active objects: a
// submit-and-return-immediately Executor with two implementations, one
// goroutine per submission and a bounded worker pool draining a task queue.
package exec

import "sync"

// Executor runs submitted functions asynchronously. Submit must return
// without waiting for the function to finish.
type Executor interface {
	Submit(task func())
}

// goExecutor launches one goroutine per submission.
type goExecutor struct{}

// Go returns an Executor that gives every submission its own goroutine.
func Go() Executor {
	return goExecutor{}
}

func (goExecutor) Submit(task func()) {
	go task()
}

// boundedExecutor fans submissions out to a fixed set of worker goroutines
// over a buffered task channel. It is built for a batch of known size: once
// the expected number of submissions has arrived the queue is closed, the
// workers drain it and exit.
type boundedExecutor struct {
	tasks chan func()

	mu        sync.Mutex
	remaining int
}

// NewBounded starts `workers` goroutines serving a queue sized for `total`
// submissions. Submitting more than total tasks panics: the batch contract
// is one submission per pool entry.
func NewBounded(workers, total int) Executor {
	if workers < 1 {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	e := &boundedExecutor{
		tasks:     make(chan func(), total),
		remaining: total,
	}
	for i := 0; i < workers; i++ {
		go e.worker()
	}
	return e
}

func (e *boundedExecutor) Submit(task func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.remaining <= 0 {
		panic("exec: more submissions than the batch was sized for")
	}
	e.tasks <- task
	e.remaining--
	if e.remaining == 0 {
		close(e.tasks)
	}
}

func (e *boundedExecutor) worker() {
	for task := range e.tasks {
		task()
	}
}
