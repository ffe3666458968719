package subprocess

import (
	"context"

	"golang.org/x/sys/unix"

	"github.com/SanjoDeundiak/process-launcher/pkg/lib"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib/future"
)

type killFunc func(pid int, sig unix.Signal) error

// ChildProcess correlates a launched child's pid with its eventual status.
// It holds no kernel resource: dropping it leaves the child running.
type ChildProcess struct {
	pid    int
	status *future.Future[lib.ProcessStatus]
	kill   killFunc
}

func newChildProcess(pid int, status *future.Future[lib.ProcessStatus], kill killFunc) *ChildProcess {
	return &ChildProcess{pid: pid, status: status, kill: kill}
}

func (c *ChildProcess) Pid() int {
	return c.pid
}

// SendSignal delivers sig to the child by pid. It is a no-op returning false
// once the child has been reaped. A child reaped concurrently may have had its
// pid reused; that race is inherent to pid-based signalling and is not
// reported.
func (c *ChildProcess) SendSignal(sig unix.Signal) bool {
	if c.status.Ready() {
		return false
	}
	return c.kill(c.pid, sig) == nil
}

// WaitForStatus blocks until the child has been reaped or ctx is done.
func (c *ChildProcess) WaitForStatus(ctx context.Context) (lib.ProcessStatus, error) {
	return c.status.Wait(ctx)
}

// Status returns the child's status if it has already been reaped.
func (c *ChildProcess) Status() (lib.ProcessStatus, bool) {
	st, err, ok := c.status.TryGet()
	if !ok || err != nil {
		return lib.ProcessStatus{}, false
	}
	return st, true
}

// Done is closed once the child's outcome is known.
func (c *ChildProcess) Done() <-chan struct{} {
	return c.status.Done()
}
