package main

import (
	"context"
	"path"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// loggingUnary logs every call with its method, caller, duration and status code.
func loggingUnary(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logCall(ctx, logger, info.FullMethod, start, err)
		return resp, err
	}
}

func loggingStream(logger zerolog.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		logCall(ss.Context(), logger, info.FullMethod, start, err)
		return err
	}
}

func logCall(ctx context.Context, logger zerolog.Logger, fullMethod string, start time.Time, err error) {
	st := status.Convert(err)
	event := logger.Debug()
	if err != nil {
		event = logger.Warn().Str("error", st.Message())
	}
	if caller, ok := callerFromContext(ctx); ok {
		event = event.Str("caller", caller)
	}
	event.Str("method", path.Base(fullMethod)).
		Dur("duration", time.Since(start)).
		Str("code", st.Code().String()).
		Msg("gRPC call")
}
