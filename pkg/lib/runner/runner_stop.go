package runner

import (
	"context"

	"golang.org/x/sys/unix"

	"github.com/SanjoDeundiak/process-launcher/pkg/lib"
)

// StopResult returns process info and its final status after Stop.
type StopResult struct {
	Command *lib.Command
	Status  *lib.ProcessSnapshot
}

// Stop kills the process by identifier and returns its final status, or the
// current one if it is not reaped within the stop timeout.
func (runner *Runner) Stop(ctx context.Context, id string) (*StopResult, error) {
	pe, err := runner.getProcess(id)
	if err != nil {
		return nil, err
	}
	res := StopResult{Command: &pe.command}

	select {
	case <-pe.done:
		st := pe.lockAndGetStatus()
		res.Status = &st
		return &res, nil
	default:
	}

	if !pe.child.SendSignal(unix.SIGKILL) {
		runner.logger.Debug().Str("process_id", id).Msg("process exited before SIGKILL")
	}

	waitCtx, cancel := context.WithTimeout(ctx, runner.stopTimeout)
	defer cancel()
	select {
	case <-pe.done:
	case <-waitCtx.Done():
		runner.logger.Warn().Str("process_id", id).Msg("process not reaped within stop timeout")
	}

	st := pe.lockAndGetStatus()
	res.Status = &st

	return &res, nil
}
