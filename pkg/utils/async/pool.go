package async

import (
	"context"
	"errors"
	"runtime/debug"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Task is a unit of work executed by a Pool worker.
type Task func(ctx context.Context) error

// Pool runs submitted tasks on a fixed number of workers. Submission
// blocks while all workers are busy and fails once the pool's context is
// cancelled. Errors from tasks are collected and reported by Wait.
type Pool struct {
	ctx   context.Context
	tasks chan Task
	wg    sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

// NewPool starts workers goroutines reading tasks. workers below 1 is
// treated as 1.
func NewPool(ctx context.Context, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}

	p := &Pool{
		ctx:   ctx,
		tasks: make(chan Task),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// Submit hands a task to a worker. It blocks until a worker picks the
// task up, and returns an error when the pool's context has been
// cancelled instead.
func (p *Pool) Submit(task Task) error {
	select {
	case <-p.ctx.Done():
		return goerr.Wrap(p.ctx.Err(), "pool is closed")
	case p.tasks <- task:
		return nil
	}
}

// Wait stops accepting tasks, waits for running ones to finish and
// returns the collected task errors, joined. Wait must be called exactly
// once; the pool cannot be reused afterwards.
func (p *Pool) Wait() error {
	close(p.tasks)
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		p.run(task)
	}
}

func (p *Pool) run(task Task) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			ctxlog.From(p.ctx).Error("panic in pool task",
				"recover", r,
				"stack", string(stack))
			p.record(goerr.New("panic in pool task", goerr.V("recover", r)))
		}
	}()

	if err := task(p.ctx); err != nil {
		p.record(err)
	}
}

func (p *Pool) record(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errs = append(p.errs, err)
}
