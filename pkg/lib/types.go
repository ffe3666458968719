package lib

import "time"

// ProcessState is the coarse lifecycle state of a launched process.
type ProcessState int

const (
	ProcessStateUnspecified ProcessState = iota
	ProcessStateRunning
	ProcessStateStopped
)

func (s ProcessState) String() string {
	switch s {
	case ProcessStateRunning:
		return "running"
	case ProcessStateStopped:
		return "stopped"
	default:
		return "unspecified"
	}
}

// Command captures command metadata used to start a process.
type Command struct {
	Command string
	Args    []string
}

// ProcessSnapshot captures runtime state and timestamps of a launched process.
// Status is nil until the process has been reaped; Err is set instead when
// its status could not be collected.
type ProcessSnapshot struct {
	State     ProcessState
	Pid       int
	Status    *ProcessStatus
	Err       error
	StartTime time.Time
	EndTime   *time.Time
}
