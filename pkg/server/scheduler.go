package server

import (
	"sync"
	"time"
)

// scheduler implements demo.Scheduler with one ticker goroutine per
// registration. Ticks are posted to the event loop.
type scheduler struct {
	loop *loop
	quit chan struct{}
	wg   sync.WaitGroup
}

func newScheduler(l *loop) *scheduler {
	return &scheduler{loop: l, quit: make(chan struct{})}
}

func (s *scheduler) Every(d time.Duration, fn func()) (stop func()) {
	t := time.NewTicker(d)
	done := make(chan struct{})
	var once sync.Once

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer t.Stop()
		for {
			select {
			case <-t.C:
				if !s.loop.post(fn) {
					return
				}
			case <-done:
				return
			case <-s.quit:
				return
			}
		}
	}()

	return func() { once.Do(func() { close(done) }) }
}

// close stops all tickers and waits for their goroutines.
func (s *scheduler) close() {
	close(s.quit)
	s.wg.Wait()
}
