package server

import (
	"context"
	"errors"
)

// ErrClosed is returned for work submitted after the server closed.
var ErrClosed = errors.New("hookdom: server closed")

// loop runs tasks one at a time on a single goroutine. after runs once
// following every task.
type loop struct {
	tasks chan func()
	quit  chan struct{}
	done  chan struct{}
	after func()
}

func newLoop(after func()) *loop {
	return &loop{
		tasks: make(chan func()),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
		after: after,
	}
}

func (l *loop) run() {
	defer close(l.done)
	for {
		select {
		case fn := <-l.tasks:
			fn()
			if l.after != nil {
				l.after()
			}
		case <-l.quit:
			return
		}
	}
}

// post hands fn to the loop. It reports false once the loop stopped.
func (l *loop) post(fn func()) bool {
	select {
	case l.tasks <- fn:
		return true
	case <-l.quit:
		return false
	}
}

// do runs fn on the loop and waits for its result.
func (l *loop) do(ctx context.Context, fn func() error) error {
	errc := make(chan error, 1)
	select {
	case l.tasks <- func() { errc <- fn() }:
	case <-ctx.Done():
		return ctx.Err()
	case <-l.quit:
		return ErrClosed
	}
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		select {
		case err := <-errc:
			return err
		default:
			return ErrClosed
		}
	}
}

// stop ends the loop and waits for the running task to finish.
func (l *loop) stop() {
	close(l.quit)
	<-l.done
}
