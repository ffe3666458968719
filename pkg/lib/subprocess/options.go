package subprocess

import (
	"github.com/rs/zerolog"

	"github.com/SanjoDeundiak/process-launcher/pkg/lib"
)

// ExecRequest describes a child process to spawn.
type ExecRequest struct {
	// Command is the path of the executable; it is also passed as argv[0].
	Command string
	// Args follow argv[0].
	Args []string
	// Env is the complete child environment. A nil map yields an empty environment.
	Env lib.EnvironmentVariables
	// StdoutFile, when set, receives the child's stdout (opened in append mode).
	StdoutFile string
	// StderrFile, when set, receives the child's stderr (opened in append mode).
	StderrFile string
	// Dir is the child's working directory; empty inherits the parent's.
	Dir string
}

type ExecOption func(*ExecRequest)

func WithStdoutFile(path string) ExecOption {
	return func(r *ExecRequest) { r.StdoutFile = path }
}

func WithStderrFile(path string) ExecOption {
	return func(r *ExecRequest) { r.StderrFile = path }
}

func WithDir(dir string) ExecOption {
	return func(r *ExecRequest) { r.Dir = dir }
}

type LauncherOption func(*Launcher)

func WithLogger(logger zerolog.Logger) LauncherOption {
	return func(l *Launcher) { l.logger = logger }
}

// WithOrphanReaping makes the reaper also collect children it did not launch,
// for processes running as PID 1 or as a child subreaper. Their statuses are
// logged and dropped.
func WithOrphanReaping(enabled bool) LauncherOption {
	return func(l *Launcher) { l.reapOrphans = enabled }
}
