package runner

import (
	"context"
	"os"

	"github.com/SanjoDeundiak/process-launcher/pkg/lib"
)

type StatusResult struct {
	Command *lib.Command
	Status  *lib.ProcessSnapshot
}

// Status returns the current process and status by identifier.
func (runner *Runner) Status(id string) (*StatusResult, error) {
	pe, err := runner.getProcess(id)
	if err != nil {
		return nil, err
	}

	status := pe.lockAndGetStatus()
	result := StatusResult{
		Command: &pe.command,
		Status:  &status,
	}

	return &result, nil
}

// Wait blocks until the process has terminated or ctx is done.
func (runner *Runner) Wait(ctx context.Context, id string) (*StatusResult, error) {
	pe, err := runner.getProcess(id)
	if err != nil {
		return nil, err
	}

	select {
	case <-pe.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	status := pe.lockAndGetStatus()
	return &StatusResult{Command: &pe.command, Status: &status}, nil
}

// Owner returns the Owner tag the process was started with.
func (runner *Runner) Owner(id string) (string, error) {
	pe, err := runner.getProcess(id)
	if err != nil {
		return "", err
	}
	return pe.owner, nil
}

func (runner *Runner) getProcess(id string) (*processEntry, error) {
	runner.mu.RLock()
	pe := runner.processes[id]
	runner.mu.RUnlock()
	if pe == nil {
		return nil, os.ErrNotExist
	}
	return pe, nil
}

func (processEntry *processEntry) lockAndGetStatus() lib.ProcessSnapshot {
	processEntry.mu.RLock()
	defer processEntry.mu.RUnlock()

	st := lib.ProcessSnapshot{
		State:     lib.ProcessStateRunning,
		Pid:       processEntry.child.Pid(),
		StartTime: processEntry.start,
		Err:       processEntry.err,
	}
	if processEntry.status != nil {
		s := *processEntry.status
		st.Status = &s
	}
	if processEntry.end != nil {
		t := *processEntry.end
		st.EndTime = &t
		st.State = lib.ProcessStateStopped
	}
	return st
}
