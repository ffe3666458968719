package main

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	protov1 "github.com/SanjoDeundiak/process-launcher/api/v1"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib"
)

const watchBuffer = 32

// Watch streams exit events of the caller's processes until the client goes away.
func (s *ProcessRunnerServiceServer) Watch(_ *protov1.WatchRequest, stream grpc.ServerStreamingServer[protov1.WatchEvent]) error {
	ctx := stream.Context()
	caller, ok := callerFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "client must have SPIFFE ID")
	}

	events, err := s.runner.Subscribe(watchBuffer)
	if err != nil {
		return status.Errorf(codes.Unavailable, "error subscribing to events: %v", err)
	}
	defer s.runner.Unsubscribe(events)

	// headers tell the client the subscription is in place
	if err := stream.SendHeader(metadata.MD{}); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Owner != caller {
				continue
			}
			// the event alone lacks start time and command; the snapshot has both
			st, err := s.runner.Status(ev.ID)
			var snapshot *lib.ProcessSnapshot
			if err == nil {
				snapshot = st.Status
			} else {
				snapshot = &lib.ProcessSnapshot{State: lib.ProcessStateStopped, Pid: ev.Pid, Status: ev.Status, Err: ev.Err}
			}
			if err := stream.Send(&protov1.WatchEvent{ProcessIdentifier: ev.ID, Status: toProtoProcessStatus(snapshot)}); err != nil {
				return err
			}
		}
	}
}
