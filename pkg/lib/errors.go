package lib

import (
	"errors"
	"fmt"
)

var (
	// ErrOs matches every *OsError via errors.Is.
	ErrOs = errors.New("os call failed")
	// ErrRegistryConflict is returned when a freshly spawned pid already has a live registry entry.
	ErrRegistryConflict = errors.New("pid already registered")
	// ErrPreconditionViolation is the panic value cause for querying the wrong ProcessStatus accessor.
	ErrPreconditionViolation = errors.New("precondition violation")
	// ErrUndecodableStatus is returned for wait statuses that are neither an exit nor a termination by signal.
	ErrUndecodableStatus = errors.New("wait status is neither exited nor signaled")
	// ErrStatusLost is delivered when the kernel no longer knows a tracked child.
	ErrStatusLost = errors.New("child status lost")
	// ErrInvalidRequest is returned for exec requests that cannot be spawned.
	ErrInvalidRequest = errors.New("invalid exec request")
)

// OsError wraps a failed system call made while launching a process.
type OsError struct {
	Op  string
	Err error
}

func (e *OsError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OsError) Unwrap() error { return e.Err }

// Is reports ErrOs as a match so callers need not know the concrete type.
func (e *OsError) Is(target error) bool { return target == ErrOs }
