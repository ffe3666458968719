package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/SanjoDeundiak/process-launcher/pkg/lib"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib/subprocess"
)

// StartRequest describes a process to start.
type StartRequest struct {
	Command string
	Args    []string
	// Env is overlaid on the runner's environment, or replaces it when ReplaceEnv is set.
	Env        lib.EnvironmentVariablesUpdate
	ReplaceEnv bool
	// Owner is an opaque tag reported by Runner.Owner and copied into the
	// process's ExitEvent.
	Owner string
}

type StartResult struct {
	ID     string
	Pid    int
	Status *lib.ProcessSnapshot
}

// Start starts a new process, returning its generated identifier and initial status.
// Its stdout and stderr are appended to files in the process work directory.
func (runner *Runner) Start(ctx context.Context, req StartRequest) (*StartResult, error) {
	if req.Command == "" {
		return nil, fmt.Errorf("%w: command is required", lib.ErrInvalidRequest)
	}
	path, err := exec.LookPath(req.Command)
	if err != nil {
		return nil, err
	}
	// the child runs in its work directory
	if path, err = filepath.Abs(path); err != nil {
		return nil, err
	}

	processId := lib.NewID()
	workDir := filepath.Join(runner.baseDir, processId)
	if err := os.MkdirAll(workDir, 0o700); err != nil {
		return nil, err
	}
	// Note that this folder is not removed

	var env lib.EnvironmentVariables
	if req.ReplaceEnv {
		env = lib.EnvironmentVariables{}.UpdateWith(req.Env)
	} else {
		env = lib.CurrentEnvironmentVariables().UpdateWith(req.Env)
	}

	logger := runner.logger.With().Str("process_id", processId).Logger()
	logger.Info().Str("command", path).Strs("args", req.Args).Msg("starting process")

	start := time.Now()
	child, err := runner.launcher.Exec(ctx, path, req.Args, env,
		subprocess.WithDir(workDir),
		subprocess.WithStdoutFile(filepath.Join(workDir, stdoutFileName)),
		subprocess.WithStderrFile(filepath.Join(workDir, stderrFileName)),
	)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to start process")
		return nil, err
	}

	processEntry := &processEntry{
		id:      processId,
		owner:   req.Owner,
		command: lib.Command{Command: req.Command, Args: append([]string(nil), req.Args...)},
		child:   child,
		workDir: workDir,
		start:   start,
		done:    make(chan struct{}),
	}

	runner.mu.Lock()
	runner.processes[processId] = processEntry
	runner.mu.Unlock()

	go runner.watch(processEntry)

	status := processEntry.lockAndGetStatus()

	return &StartResult{ID: processId, Pid: child.Pid(), Status: &status}, nil
}

// watch records the final status once the reaper delivers it.
func (runner *Runner) watch(pe *processEntry) {
	st, err := pe.child.WaitForStatus(context.Background())

	now := time.Now()
	pe.mu.Lock()
	if err != nil {
		pe.err = err
	} else {
		pe.status = &st
	}
	pe.end = &now
	pe.mu.Unlock()
	close(pe.done)

	event := ExitEvent{ID: pe.id, Owner: pe.owner, Pid: pe.child.Pid(), Err: err}
	if err == nil {
		event.Status = &st
		runner.logger.Info().Str("process_id", pe.id).Stringer("status", st).Msg("process finished")
	} else {
		runner.logger.Warn().Str("process_id", pe.id).Err(err).Msg("process status lost")
	}
	runner.events.Publish(event)
}
