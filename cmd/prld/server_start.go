package main

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	protov1 "github.com/SanjoDeundiak/process-launcher/api/v1"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib/runner"
)

func (s *ProcessRunnerServiceServer) Start(ctx context.Context, request *protov1.StartRequest) (*protov1.StartResponse, error) {
	owner, ok := callerFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "client must have SPIFFE ID")
	}

	args, env := fromProtoStart(request)
	s.logger.Debug().Str("command", request.GetCommand()).Strs("args", args).Msg("start requested")

	startResult, err := s.runner.Start(ctx, runner.StartRequest{
		Command:    request.GetCommand(),
		Args:       args,
		Env:        env,
		ReplaceEnv: request.GetClearEnv(),
		Owner:      owner,
	})
	if err != nil {
		return nil, toStatusError(err, "", "starting")
	}

	return &protov1.StartResponse{
		ProcessIdentifier: startResult.ID,
		Status:            toProtoProcessStatus(startResult.Status),
	}, nil
}
