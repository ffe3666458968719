package main

import (
	"context"

	protov1 "github.com/SanjoDeundiak/process-launcher/api/v1"
)

func (s *ProcessRunnerServiceServer) Stop(ctx context.Context, request *protov1.ProcessRequest) (*protov1.ProcessResponse, error) {
	processIdentifier := request.GetProcessIdentifier()

	res, err := s.runner.Stop(ctx, processIdentifier)
	if err != nil {
		return nil, toStatusError(err, processIdentifier, "stopping")
	}
	s.logger.Info().Str("process_id", processIdentifier).Msg("process stopped by client")

	return &protov1.ProcessResponse{Process: toProtoProcess(res.Command), Status: toProtoProcessStatus(res.Status)}, nil
}
