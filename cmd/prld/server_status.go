package main

import (
	"context"

	protov1 "github.com/SanjoDeundiak/process-launcher/api/v1"
)

func (s *ProcessRunnerServiceServer) Status(ctx context.Context, request *protov1.ProcessRequest) (*protov1.ProcessResponse, error) {
	processIdentifier := request.GetProcessIdentifier()

	statusResult, err := s.runner.Status(processIdentifier)
	if err != nil {
		return nil, toStatusError(err, processIdentifier, "getting status of")
	}
	return &protov1.ProcessResponse{
		Process: toProtoProcess(statusResult.Command),
		Status:  toProtoProcessStatus(statusResult.Status),
	}, nil
}

// Wait blocks until the process terminates or the call is cancelled.
func (s *ProcessRunnerServiceServer) Wait(ctx context.Context, request *protov1.ProcessRequest) (*protov1.ProcessResponse, error) {
	processIdentifier := request.GetProcessIdentifier()

	statusResult, err := s.runner.Wait(ctx, processIdentifier)
	if err != nil {
		return nil, toStatusError(err, processIdentifier, "waiting for")
	}
	return &protov1.ProcessResponse{
		Process: toProtoProcess(statusResult.Command),
		Status:  toProtoProcessStatus(statusResult.Status),
	}, nil
}
