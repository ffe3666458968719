package subprocess

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/SanjoDeundiak/process-launcher/pkg/lib"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib/future"
)

type registryEntry struct {
	status  *future.Promise[lib.ProcessStatus]
	started time.Time
}

// registry maps live child pids to their pending status promises.
// It is confined to the reactor loop and holds no locks.
type registry struct {
	entries map[int]*registryEntry
	now     func() time.Time
	// confined reports whether the caller is on the owning loop; nil disables the check.
	confined func() bool
	logger   zerolog.Logger
}

func newRegistry(logger zerolog.Logger) *registry {
	return &registry{
		entries: make(map[int]*registryEntry),
		now:     time.Now,
		logger:  logger,
	}
}

func (r *registry) checkConfinement() {
	if r.confined != nil && !r.confined() {
		panic("subprocess: child process registry used outside its reactor loop")
	}
}

// Insert tracks pid. It fails if pid already has a live entry.
func (r *registry) Insert(pid int, status *future.Promise[lib.ProcessStatus]) error {
	r.checkConfinement()
	if _, ok := r.entries[pid]; ok {
		return fmt.Errorf("%w: pid=%d", lib.ErrRegistryConflict, pid)
	}
	r.entries[pid] = &registryEntry{status: status, started: r.now()}
	return nil
}

// Resolve decodes ws, resolves the entry of pid and removes it. It returns
// false for untracked pids, whose statuses are logged and dropped.
func (r *registry) Resolve(pid int, ws unix.WaitStatus, observedAt time.Time) bool {
	r.checkConfinement()
	entry, ok := r.entries[pid]
	if !ok {
		r.logger.Warn().Int("pid", pid).Uint32("wait_status", uint32(ws)).Msg("termination of untracked child process")
		return false
	}
	delete(r.entries, pid)

	status, err := lib.DecodeWaitStatus(ws, observedAt.Sub(entry.started))
	if err != nil {
		r.logger.Error().Err(err).Int("pid", pid).Msg("cannot decode child process status")
		_ = entry.status.SetError(err)
		return true
	}

	r.logger.Debug().Int("pid", pid).Stringer("status", status).Msg("child process terminated")
	_ = entry.status.SetValue(status)
	return true
}

// Fail resolves the entry of pid with err and removes it.
func (r *registry) Fail(pid int, err error) bool {
	r.checkConfinement()
	entry, ok := r.entries[pid]
	if !ok {
		return false
	}
	delete(r.entries, pid)
	_ = entry.status.SetError(err)
	return true
}

func (r *registry) Pids() []int {
	r.checkConfinement()
	pids := make([]int, 0, len(r.entries))
	for pid := range r.entries {
		pids = append(pids, pid)
	}
	return pids
}

func (r *registry) Len() int {
	r.checkConfinement()
	return len(r.entries)
}
