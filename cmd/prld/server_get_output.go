package main

import (
	"context"

	protov1 "github.com/SanjoDeundiak/process-launcher/api/v1"
)

// GetOutput returns everything the process has written so far.
func (s *ProcessRunnerServiceServer) GetOutput(ctx context.Context, request *protov1.ProcessRequest) (*protov1.GetOutputResponse, error) {
	processIdentifier := request.GetProcessIdentifier()

	stdout, stderr, err := s.runner.Output(processIdentifier)
	if err != nil {
		return nil, toStatusError(err, processIdentifier, "reading output of")
	}
	return &protov1.GetOutputResponse{Stdout: stdout, Stderr: stderr}, nil
}
