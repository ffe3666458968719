package main

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	protov1 "github.com/SanjoDeundiak/process-launcher/api/v1"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib"
)

func toProtoProcess(p *lib.Command) *protov1.Process {
	args := make([][]byte, len(p.Args))
	for i, arg := range p.Args {
		args[i] = []byte(arg)
	}
	return &protov1.Process{Command: p.Command, Args: args}
}

func toProtoProcessStatus(st *lib.ProcessSnapshot) *protov1.ProcessStatus {
	ps := &protov1.ProcessStatus{
		State:     toProtoProcessState(st.State),
		Pid:       int32(st.Pid),
		StartTime: timestamppb.New(st.StartTime),
	}
	if st.EndTime != nil {
		ps.EndTime = timestamppb.New(*st.EndTime)
	}
	if st.Status != nil {
		ps.ExecutionTime = durationpb.New(st.Status.ExecutionTime())
		if st.Status.IsExited() {
			ps.ExitReason = protov1.ExitReason_EXIT_REASON_EXITED
			ps.ExitCode = int32(st.Status.ExitCode())
		} else {
			ps.ExitReason = protov1.ExitReason_EXIT_REASON_SIGNALED
			ps.Signal = int32(st.Status.TermSignal())
		}
	}
	if st.Err != nil {
		ps.Error = st.Err.Error()
	}
	return ps
}

func toProtoProcessState(s lib.ProcessState) protov1.ProcessState {
	switch s {
	case lib.ProcessStateRunning:
		return protov1.ProcessState_PROCESS_STATE_RUNNING
	case lib.ProcessStateStopped:
		return protov1.ProcessState_PROCESS_STATE_STOPPED
	default:
		return protov1.ProcessState_PROCESS_STATE_UNSPECIFIED
	}
}

// fromProtoStart converts the byte-valued arguments and environment of a
// StartRequest. The strings may hold arbitrary bytes.
func fromProtoStart(request *protov1.StartRequest) ([]string, lib.EnvironmentVariablesUpdate) {
	args := make([]string, len(request.GetArgs()))
	for i, arg := range request.GetArgs() {
		args[i] = string(arg)
	}
	var env lib.EnvironmentVariablesUpdate
	if len(request.GetEnv()) > 0 {
		env = make(lib.EnvironmentVariablesUpdate, len(request.GetEnv()))
		for k, v := range request.GetEnv() {
			env[k] = string(v)
		}
	}
	return args, env
}

// toStatusError maps runner errors onto gRPC codes.
func toStatusError(err error, processIdentifier, action string) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return status.Errorf(codes.NotFound, "process not found: %s", processIdentifier)
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, lib.ErrInvalidRequest), errors.Is(err, exec.ErrNotFound):
		return status.Errorf(codes.InvalidArgument, "error %s process: %v", action, err)
	case errors.Is(err, lib.ErrOs):
		return status.Errorf(codes.Aborted, "error %s process: %v", action, err)
	default:
		return status.Errorf(codes.Internal, "error %s process: %v", action, err)
	}
}
