// Package reactor runs a single-threaded event loop.
//
// A Loop owns one goroutine locked to one OS thread. Work is handed to it with
// RunAsync or Run and executed in submission order; OS signals registered with
// OnSignal are dispatched on the same goroutine, between tasks. State touched
// only from loop tasks and signal handlers needs no locking.
package reactor

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// ErrLoopStopped is returned when work is submitted to a stopped loop.
var ErrLoopStopped = errors.New("reactor loop stopped")

type Option func(*Loop)

func WithLogger(logger zerolog.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// WithName tags the loop's log lines.
func WithName(name string) Option {
	return func(l *Loop) { l.name = name }
}

type Loop struct {
	name   string
	logger zerolog.Logger

	mu      sync.Mutex
	queue   []func()
	stopped bool

	wakeup  chan struct{}
	signals chan os.Signal
	// handlers and stopHooks are only touched on the loop goroutine.
	handlers  map[os.Signal][]func()
	stopHooks []func()

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	tid atomic.Int64
}

// RunNewLoop starts a loop and returns once its goroutine is running.
func RunNewLoop(opts ...Option) *Loop {
	l := &Loop{
		name:     "reactor",
		logger:   zerolog.Nop(),
		wakeup:   make(chan struct{}, 1),
		signals:  make(chan os.Signal, 16),
		handlers: make(map[os.Signal][]func()),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With().Str("component", l.name).Logger()

	started := make(chan struct{})
	go l.run(started)
	<-started

	return l
}

func (l *Loop) run(started chan<- struct{}) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	l.tid.Store(int64(currentThreadID()))
	close(started)
	defer close(l.done)

	l.logger.Debug().Int64("tid", l.tid.Load()).Msg("loop started")

	for {
		select {
		case <-l.stop:
			// Nothing can be queued once stopped is set; run what is left.
			l.runQueued()
			for _, hook := range l.stopHooks {
				l.runTask(hook)
			}
			l.logger.Debug().Msg("loop stopped")
			return
		case <-l.wakeup:
			l.runQueued()
		case sig := <-l.signals:
			l.dispatch(sig)
		}
	}
}

func (l *Loop) runQueued() {
	l.mu.Lock()
	tasks := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, task := range tasks {
		l.runTask(task)
	}
}

func (l *Loop) runTask(task func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error().Interface("panic", r).Msg("loop task panicked")
		}
	}()
	task()
}

func (l *Loop) dispatch(sig os.Signal) {
	handlers := l.handlers[sig]
	l.logger.Debug().Str("signal", sig.String()).Int("handlers", len(handlers)).Msg("signal received")
	for _, h := range handlers {
		l.runTask(h)
	}
}

// RunAsync queues task for execution on the loop goroutine and returns
// immediately. Tasks run in submission order.
func (l *Loop) RunAsync(task func()) error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return ErrLoopStopped
	}
	l.queue = append(l.queue, task)
	l.mu.Unlock()

	select {
	case l.wakeup <- struct{}{}:
	default:
	}
	return nil
}

// Run queues task and waits for it to finish or for ctx to be done. When ctx
// ends first the task still runs later.
func (l *Loop) Run(ctx context.Context, task func()) error {
	finished := make(chan struct{})
	if err := l.RunAsync(func() {
		defer close(finished)
		task()
	}); err != nil {
		return err
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OnSignal subscribes the loop to sig and runs handler on the loop goroutine
// every time it is delivered. The subscription is ordered with tasks: a task
// queued after OnSignal returns observes the handler installed.
func (l *Loop) OnSignal(sig os.Signal, handler func()) error {
	return l.RunAsync(func() {
		if len(l.handlers[sig]) == 0 {
			signal.Notify(l.signals, sig)
		}
		l.handlers[sig] = append(l.handlers[sig], handler)
	})
}

// OnStop registers hook to run on the loop goroutine once Stop has been
// called, after the remaining queued tasks and before the loop exits.
func (l *Loop) OnStop(hook func()) error {
	return l.RunAsync(func() {
		l.stopHooks = append(l.stopHooks, hook)
	})
}

// Notify runs the handlers of sig on the loop as if the signal had been delivered.
func (l *Loop) Notify(sig os.Signal) error {
	return l.RunAsync(func() { l.dispatch(sig) })
}

// InLoop reports whether the caller runs on the loop's OS thread. Where the
// platform does not expose thread identity it always reports true.
func (l *Loop) InLoop() bool {
	tid := currentThreadID()
	if tid < 0 {
		return true
	}
	return int64(tid) == l.tid.Load()
}

// Stop runs the remaining queued tasks and the stop hooks, unsubscribes from signals and waits
// for the loop goroutine to exit. It is safe to call more than once but
// must not be called from a loop task.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.mu.Lock()
		l.stopped = true
		l.mu.Unlock()

		signal.Stop(l.signals)
		close(l.stop)
	})
	<-l.done
}

// Done is closed after the loop goroutine has exited.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
