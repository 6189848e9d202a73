package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

var (
	ErrLoopStopped = errors.New("dispatch: loop stopped")
	ErrJobPanicked = errors.New("dispatch: job panicked")
	ErrInvalidJob  = errors.New("dispatch: job has no run func")
)

// Job is one update cycle. Run executes on the loop goroutine.
type Job struct {
	Name string
	Run  func()
}

type pending struct {
	job  Job
	done chan error
}

// Loop runs jobs one at a time, in submission order, on a single goroutine.
type Loop struct {
	mu        sync.Mutex
	queue     []pending
	wakeup    chan struct{}
	stopCh    chan struct{}
	doneCh    chan struct{}
	started   bool
	stopped   bool
	processed uint64
	panicked  uint64
}

func NewLoop() *Loop {
	return &Loop{
		queue:  make([]pending, 0),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started || l.stopped {
		return
	}
	l.started = true
	go l.loop()
}

// Stop waits for the running job to finish. Queued jobs that never ran
// receive ErrLoopStopped.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	started := l.started
	if started {
		close(l.stopCh)
	}
	l.mu.Unlock()
	if started {
		<-l.doneCh
	}

	l.mu.Lock()
	rest := l.queue
	l.queue = nil
	l.mu.Unlock()
	for _, p := range rest {
		p.done <- ErrLoopStopped
	}
}

func (l *Loop) Submit(job Job) (<-chan error, error) {
	if job.Run == nil {
		return nil, ErrInvalidJob
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return nil, ErrLoopStopped
	}

	p := pending{job: job, done: make(chan error, 1)}
	l.queue = append(l.queue, p)
	l.signalWakeup()
	return p.done, nil
}

// Do submits job and waits for it. If ctx ends first Do returns ctx.Err(),
// but the job still runs to completion.
func (l *Loop) Do(ctx context.Context, job Job) error {
	done, err := l.Submit(job)
	if err != nil {
		return err
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loop) Processed() uint64 {
	return atomic.LoadUint64(&l.processed)
}

func (l *Loop) Panicked() uint64 {
	return atomic.LoadUint64(&l.panicked)
}

func (l *Loop) loop() {
	defer close(l.doneCh)

	for {
		next, ok := l.pop()
		if !ok {
			select {
			case <-l.wakeup:
				continue
			case <-l.stopCh:
				return
			}
		}

		err := l.run(next.job)
		atomic.AddUint64(&l.processed, 1)
		next.done <- err

		select {
		case <-l.stopCh:
			return
		default:
		}
	}
}

func (l *Loop) run(job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			atomic.AddUint64(&l.panicked, 1)
			err = fmt.Errorf("%w: %s: %v", ErrJobPanicked, job.Name, r)
		}
	}()
	job.Run()
	return nil
}

func (l *Loop) signalWakeup() {
	select {
	case l.wakeup <- struct{}{}:
	default:
	}
}

func (l *Loop) pop() (pending, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return pending{}, false
	}
	next := l.queue[0]
	l.queue[0] = pending{}
	l.queue = l.queue[1:]
	return next, true
}
