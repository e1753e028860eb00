package rotation

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrInvalidInterval = errors.New("rotation: interval must be positive")

// Tick is one rotation beat. Seq increments from 1 so consumers can
// index into whatever they are rotating (quotes, here) with a modulo.
type Tick struct {
	Seq int
	At  time.Time
}

// Engine emits ticks on a fixed interval until stopped. Emission is
// non-blocking: a slow consumer loses ticks rather than stalling the
// loop, and the loss is counted.
type Engine struct {
	interval time.Duration
	out      chan Tick
	stopCh   chan struct{}
	doneCh   chan struct{}
	mu       sync.Mutex
	started  bool
	stopped  bool
	dropped  uint64
}

func NewEngine(interval time.Duration, bufferSize int) (*Engine, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		interval: interval,
		out:      make(chan Tick, bufferSize),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

func (e *Engine) C() <-chan Tick {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	go e.loop()
}

// Stop cancels the loop and waits for it to finish. The output channel
// is closed once the loop exits. Stop is idempotent.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	seq := 0
	for {
		select {
		case at := <-ticker.C:
			seq++
			select {
			case e.out <- Tick{Seq: seq, At: at}:
			default:
				atomic.AddUint64(&e.dropped, 1)
			}
		case <-e.stopCh:
			return
		}
	}
}
