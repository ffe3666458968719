package main

import (
	"github.com/rs/zerolog"

	protov1 "github.com/SanjoDeundiak/process-launcher/api/v1"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib/runner"
)

// ProcessRunnerServiceServer serves the runner over gRPC. Callers are
// authenticated and checked against process ownership by the authorizer
// interceptors before any handler runs.
type ProcessRunnerServiceServer struct {
	protov1.UnimplementedProcessRunnerServiceServer
	runner *runner.Runner
	logger zerolog.Logger
}

func NewProcessRunnerServiceServer(r *runner.Runner, logger zerolog.Logger) *ProcessRunnerServiceServer {
	return &ProcessRunnerServiceServer{
		runner: r,
		logger: logger.With().Str("component", "grpc").Logger(),
	}
}
