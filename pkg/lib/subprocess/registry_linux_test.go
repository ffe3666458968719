//go:build linux

package subprocess

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/SanjoDeundiak/process-launcher/pkg/lib"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib/future"
)

func exitedWaitStatus(code int) unix.WaitStatus { return unix.WaitStatus(code << 8) }

func newTestRegistry(start time.Time) *registry {
	r := newRegistry(zerolog.Nop())
	r.now = func() time.Time { return start }
	return r
}

func TestRegistry_InsertConflict(t *testing.T) {
	r := newTestRegistry(time.Now())
	if err := r.Insert(100, future.NewPromise[lib.ProcessStatus]()); err != nil {
		t.Fatalf("first Insert failed: %v", err)
	}
	err := r.Insert(100, future.NewPromise[lib.ProcessStatus]())
	if !errors.Is(err, lib.ErrRegistryConflict) {
		t.Fatalf("expected ErrRegistryConflict, got %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("conflicting insert must not replace the live entry")
	}
}

func TestRegistry_ResolveDeliversOnceAndRemoves(t *testing.T) {
	start := time.Unix(1000, 0)
	r := newTestRegistry(start)
	p := future.NewPromise[lib.ProcessStatus]()
	_ = r.Insert(7, p)

	if !r.Resolve(7, exitedWaitStatus(3), start.Add(40*time.Millisecond)) {
		t.Fatalf("Resolve of a tracked pid must succeed")
	}
	st, err := p.Future().Wait(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.ExitCode() != 3 || st.ExecutionTime() != 40*time.Millisecond {
		t.Fatalf("unexpected status %s", st)
	}
	if r.Len() != 0 {
		t.Fatalf("entry must be removed after resolution")
	}
	if r.Resolve(7, exitedWaitStatus(0), start) {
		t.Fatalf("second Resolve for the same pid must be dropped")
	}

	// The pid may be reused once the old entry is gone.
	if err := r.Insert(7, future.NewPromise[lib.ProcessStatus]()); err != nil {
		t.Fatalf("reinsert after resolve failed: %v", err)
	}
}

func TestRegistry_ResolveUnknownPid(t *testing.T) {
	r := newTestRegistry(time.Now())
	if r.Resolve(12345, exitedWaitStatus(0), time.Now()) {
		t.Fatalf("Resolve of an untracked pid must report false")
	}
}

func TestRegistry_UndecodableStatusFailsEntry(t *testing.T) {
	r := newTestRegistry(time.Now())
	p := future.NewPromise[lib.ProcessStatus]()
	_ = r.Insert(9, p)

	stopped := unix.WaitStatus(0x7f | int(unix.SIGSTOP)<<8)
	r.Resolve(9, stopped, time.Now())

	if _, err := p.Future().Wait(context.Background()); !errors.Is(err, lib.ErrUndecodableStatus) {
		t.Fatalf("expected ErrUndecodableStatus, got %v", err)
	}
}

func TestRegistry_ConfinementCheck(t *testing.T) {
	r := newTestRegistry(time.Now())
	r.confined = func() bool { return false }

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for access outside the loop")
		}
	}()
	_ = r.Len()
}
