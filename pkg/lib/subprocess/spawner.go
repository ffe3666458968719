package subprocess

import (
	"fmt"
	"os"
	"syscall"

	"github.com/SanjoDeundiak/process-launcher/pkg/lib"
)

// spawnRequest holds everything the child needs, materialised before the
// spawn so nothing is computed or allocated on the child's side.
type spawnRequest struct {
	path  string
	dir   string
	argv  []string
	envv  []string
	fds   []uintptr
	files []*os.File
}

func prepareSpawn(req ExecRequest) (*spawnRequest, error) {
	if req.Command == "" {
		return nil, fmt.Errorf("%w: command is required", lib.ErrInvalidRequest)
	}

	argv := make([]string, 0, len(req.Args)+1)
	argv = append(argv, req.Command)
	argv = append(argv, req.Args...)

	sr := &spawnRequest{
		path: req.Command,
		dir:  req.Dir,
		argv: argv,
		envv: req.Env.Envv(),
		// inherited descriptors; os.Stdout.Fd() would put the parent's fd in blocking mode
		fds: []uintptr{0, 1, 2},
	}

	if req.StdoutFile != "" {
		if err := sr.redirect(1, req.StdoutFile); err != nil {
			sr.close()
			return nil, err
		}
	}
	if req.StderrFile != "" {
		if err := sr.redirect(2, req.StderrFile); err != nil {
			sr.close()
			return nil, err
		}
	}

	return sr, nil
}

func (sr *spawnRequest) redirect(fd int, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return &lib.OsError{Op: "open redirect file", Err: err}
	}
	sr.files = append(sr.files, f)
	sr.fds[fd] = f.Fd()
	return nil
}

// close releases the parent's copies of the redirect files.
func (sr *spawnRequest) close() {
	for _, f := range sr.files {
		_ = f.Close()
	}
	sr.files = nil
}

type spawnFunc func(sr *spawnRequest) (int, error)

// forkExec creates the child and replaces its image in one step. If the exec
// fails the child exits without returning into Go code and the error is
// reported here.
func forkExec(sr *spawnRequest) (int, error) {
	pid, err := syscall.ForkExec(sr.path, sr.argv, &syscall.ProcAttr{
		Dir:   sr.dir,
		Env:   sr.envv,
		Files: sr.fds,
	})
	if err != nil {
		return 0, &lib.OsError{Op: "fork/exec " + sr.path, Err: err}
	}
	return pid, nil
}
