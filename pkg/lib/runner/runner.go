package runner

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/SanjoDeundiak/process-launcher/pkg/lib"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib/broadcast"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib/reactor"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib/subprocess"
)

const (
	stdoutFileName = "stdout"
	stderrFileName = "stderr"

	defaultStopTimeout = time.Second
)

// ExitEvent is published when a process started by the Runner terminates.
type ExitEvent struct {
	ID     string
	Owner  string
	Pid    int
	Status *lib.ProcessStatus
	Err    error
}

// Runner manages processes started by this library.
type Runner struct {
	mu        sync.RWMutex
	processes map[string]*processEntry
	baseDir   string

	loop     *reactor.Loop
	launcher *subprocess.Launcher
	events   *broadcast.Broadcaster[ExitEvent]

	stopTimeout time.Duration
	reapOrphans bool
	logger      zerolog.Logger
}

type processEntry struct {
	id      string
	owner   string
	command lib.Command
	child   *subprocess.ChildProcess
	workDir string
	start   time.Time

	// closed once the final status has been recorded
	done chan struct{}

	// status fields
	mu     sync.RWMutex
	status *lib.ProcessStatus
	err    error
	end    *time.Time
}

type Option func(*Runner)

// WithBaseDir keeps per-process work directories under dir instead of a new temp dir.
func WithBaseDir(dir string) Option {
	return func(r *Runner) { r.baseDir = dir }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithStopTimeout bounds how long Stop waits for a killed process to be reaped.
func WithStopTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.stopTimeout = d
		}
	}
}

func WithOrphanReaping(enabled bool) Option {
	return func(r *Runner) { r.reapOrphans = enabled }
}

// NewRunner creates a new Runner with its own reactor loop.
func NewRunner(opts ...Option) (*Runner, error) {
	r := &Runner{
		processes:   make(map[string]*processEntry),
		stopTimeout: defaultStopTimeout,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With().Str("component", "runner").Logger()

	if r.baseDir == "" {
		baseDir, err := os.MkdirTemp("", "prl-*")
		if err != nil {
			return nil, err
		}
		r.baseDir = baseDir
	} else if err := os.MkdirAll(r.baseDir, 0o700); err != nil {
		return nil, err
	}

	r.loop = reactor.RunNewLoop(reactor.WithName("runner-reactor"), reactor.WithLogger(r.logger))
	launcher, err := subprocess.NewLauncher(r.loop,
		subprocess.WithLogger(r.logger),
		subprocess.WithOrphanReaping(r.reapOrphans))
	if err != nil {
		r.loop.Stop()
		return nil, err
	}
	r.launcher = launcher
	r.events = broadcast.RunNewBroadcaster[ExitEvent](broadcast.WithQueueSize(64), broadcast.WithLogger(r.logger))

	return r, nil
}

// Close stops event delivery and the reactor loop. Running processes are left
// alone and are no longer reaped by this Runner.
func (runner *Runner) Close() {
	runner.events.Stop()
	runner.loop.Stop()
}

// BaseDir returns the directory holding per-process work directories.
func (runner *Runner) BaseDir() string {
	return runner.baseDir
}
