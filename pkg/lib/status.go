package lib

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// ExitReason tells how a child process terminated.
type ExitReason int

const (
	ExitReasonExited ExitReason = iota
	ExitReasonSignaled
)

func (r ExitReason) String() string {
	switch r {
	case ExitReasonExited:
		return "exited"
	case ExitReasonSignaled:
		return "signaled"
	default:
		return fmt.Sprintf("unknown(%d)", int(r))
	}
}

// ProcessStatus is the decoded, immutable result of a terminated child.
// Exactly one of ExitCode and TermSignal is meaningful, selected by ExitReason.
type ProcessStatus struct {
	reason        ExitReason
	code          int
	signal        unix.Signal
	executionTime time.Duration
}

// Exited builds the status of a child that called exit(code).
func Exited(code int, executionTime time.Duration) ProcessStatus {
	return ProcessStatus{reason: ExitReasonExited, code: code, executionTime: executionTime}
}

// Signaled builds the status of a child terminated by sig.
func Signaled(sig unix.Signal, executionTime time.Duration) ProcessStatus {
	return ProcessStatus{reason: ExitReasonSignaled, signal: sig, executionTime: executionTime}
}

// DecodeWaitStatus translates a raw wait status into a ProcessStatus.
// Stopped or continued statuses are not terminations and yield ErrUndecodableStatus.
func DecodeWaitStatus(ws unix.WaitStatus, executionTime time.Duration) (ProcessStatus, error) {
	switch {
	case ws.Exited():
		return Exited(ws.ExitStatus(), executionTime), nil
	case ws.Signaled():
		return Signaled(ws.Signal(), executionTime), nil
	default:
		return ProcessStatus{}, fmt.Errorf("%w: raw status %#x", ErrUndecodableStatus, uint32(ws))
	}
}

func (s ProcessStatus) ExitReason() ExitReason { return s.reason }

func (s ProcessStatus) IsExited() bool { return s.reason == ExitReasonExited }

func (s ProcessStatus) IsSignaled() bool { return s.reason == ExitReasonSignaled }

// ExitCode returns the exit code. It panics unless IsExited.
func (s ProcessStatus) ExitCode() int {
	if !s.IsExited() {
		panic(fmt.Errorf("%w: exit code requested for %s process", ErrPreconditionViolation, s.reason))
	}
	return s.code
}

// TermSignal returns the terminating signal. It panics unless IsSignaled.
func (s ProcessStatus) TermSignal() unix.Signal {
	if !s.IsSignaled() {
		panic(fmt.Errorf("%w: term signal requested for %s process", ErrPreconditionViolation, s.reason))
	}
	return s.signal
}

// ExecutionTime covers the child's run time plus its exec startup latency.
func (s ProcessStatus) ExecutionTime() time.Duration { return s.executionTime }

func (s ProcessStatus) String() string {
	if s.IsSignaled() {
		return fmt.Sprintf("signaled(signal=%s, %s)", unix.SignalName(s.signal), s.executionTime)
	}
	return fmt.Sprintf("exited(code=%d, %s)", s.code, s.executionTime)
}
