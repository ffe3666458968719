package subprocess

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/SanjoDeundiak/process-launcher/pkg/lib"
)

type wait4Func func(pid int, ws *unix.WaitStatus, options int, rusage *unix.Rusage) (int, error)

// reaper collects terminated children on SIGCHLD. It runs on the reactor loop
// and never blocks.
type reaper struct {
	registry *registry
	orphans  bool
	wait4    wait4Func
	now      func() time.Time
	logger   zerolog.Logger
}

// reap drains every terminated child; SIGCHLD deliveries coalesce, so one
// wakeup may stand for several exits.
func (r *reaper) reap() {
	for _, pid := range r.registry.Pids() {
		r.reapTracked(pid)
	}
	if r.orphans {
		r.reapAny()
	}
}

func (r *reaper) reapTracked(pid int) {
	for {
		var ws unix.WaitStatus
		got, err := r.wait4(pid, &ws, unix.WNOHANG, nil)
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.ECHILD):
			// Someone else reaped it; the status is gone for good.
			r.logger.Error().Int("pid", pid).Msg("tracked child process reaped elsewhere")
			r.registry.Fail(pid, fmt.Errorf("%w: pid=%d", lib.ErrStatusLost, pid))
			return
		case err != nil:
			r.logger.Warn().Err(err).Int("pid", pid).Msg("wait4 failed")
			return
		case got == pid:
			r.registry.Resolve(pid, ws, r.now())
			return
		default:
			return
		}
	}
}

func (r *reaper) reapAny() {
	for {
		var ws unix.WaitStatus
		pid, err := r.wait4(-1, &ws, unix.WNOHANG, nil)
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.ECHILD):
			return
		case err != nil:
			r.logger.Warn().Err(err).Msg("wait4 failed")
			return
		case pid <= 0:
			return
		}
		r.registry.Resolve(pid, ws, r.now())
	}
}
