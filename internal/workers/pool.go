// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CemWebDev

package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/CemWebDev/python-todo-backend/internal/logger"
)

type job struct {
	fn   func()
	done chan error
}

// Pool is a fixed-size set of goroutines that execute submitted jobs.
// It bounds how many bcrypt computations run at once so that a burst of
// logins cannot starve request handling.
type Pool struct {
	name string
	size int
	jobs chan job
	quit chan struct{}

	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once

	logger *logger.Logger
}

// NewPool creates a pool of size goroutines. The pool does nothing until Run
// is called. A non-positive size is treated as 1.
func NewPool(name string, size int, log *logger.Logger) *Pool {
	if size <= 0 {
		size = 1
	}

	log.Debug().Str("pool", name).Int("size", size).Msg("worker pool created")

	return &Pool{
		name:   name,
		size:   size,
		jobs:   make(chan job),
		quit:   make(chan struct{}),
		logger: log,
	}
}

// Run starts the pool goroutines. Subsequent calls are no-ops.
func (p *Pool) Run() {
	p.startOnce.Do(func() {
		p.wg.Add(p.size)
		for i := 0; i < p.size; i++ {
			go p.loop()
		}
		p.logger.Info().Str("pool", p.name).Int("size", p.size).Msg("worker pool started")
	})
}

// Stop signals the goroutines to exit and waits for in-flight jobs.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
		p.wg.Wait()
		p.logger.Info().Str("pool", p.name).Msg("worker pool stopped")
	})
}

// Do runs fn on one of the pool goroutines and waits for it to finish.
//
// It returns ctx.Err() if the context ends before a goroutine picks the job
// up or before it completes. In the latter case fn still runs to completion,
// so it must only write to state the caller ignores on error.
func (p *Pool) Do(ctx context.Context, fn func()) error {
	j := job{fn: fn, done: make(chan error, 1)}

	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}

	select {
	case p.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrPoolStopped
	}

	select {
	case err := <-j.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) loop() {
	defer p.wg.Done()

	for {
		select {
		case <-p.quit:
			return
		case j := <-p.jobs:
			j.done <- p.execute(j.fn)
		}
	}
}

func (p *Pool) execute(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().Str("pool", p.name).Interface("panic", r).Msg("job panicked")
			err = fmt.Errorf("%w: %v", ErrJobPanicked, r)
		}
	}()

	fn()
	return nil
}
