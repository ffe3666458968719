package main

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/SanjoDeundiak/process-launcher/pkg/lib/runner"
)

type callerContextKey struct{}

// withCaller stores the authenticated caller identity in ctx.
func withCaller(ctx context.Context, caller string) context.Context {
	return context.WithValue(ctx, callerContextKey{}, caller)
}

// callerFromContext returns the identity stored by the authorizer, if any.
func callerFromContext(ctx context.Context) (string, bool) {
	caller, ok := ctx.Value(callerContextKey{}).(string)
	return caller, ok
}

// spiffeIdFromPeer returns the trust domain of the first SPIFFE URI SAN in
// the client's leaf certificate, e.g. spiffe://client1/workload -> "client1".
func spiffeIdFromPeer(ctx context.Context) (string, bool) {
	p, ok := peer.FromContext(ctx)
	if !ok || p == nil {
		return "", false
	}
	ti, ok := p.AuthInfo.(credentials.TLSInfo)
	if !ok || len(ti.State.PeerCertificates) == 0 || ti.State.PeerCertificates[0] == nil {
		return "", false
	}
	for _, uri := range ti.State.PeerCertificates[0].URIs {
		if uri != nil && uri.Scheme == "spiffe" && uri.Host != "" {
			return uri.Host, true
		}
	}
	return "", false
}

// processScoped is implemented by every request that names a process.
type processScoped interface {
	GetProcessIdentifier() string
}

// authorizer authenticates each call and, for requests that name a
// process, checks that the caller is the identity that started it.
type authorizer struct {
	identify func(ctx context.Context) (string, bool)
	owner    func(processIdentifier string) (string, error)
}

func newAuthorizer(r *runner.Runner) *authorizer {
	return &authorizer{identify: spiffeIdFromPeer, owner: r.Owner}
}

func (a *authorizer) authorize(ctx context.Context, req any) (context.Context, error) {
	caller, ok := a.identify(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "client must have SPIFFE ID")
	}
	if scoped, ok := req.(processScoped); ok {
		// unknown identifiers are denied like foreign ones
		owner, err := a.owner(scoped.GetProcessIdentifier())
		if err != nil || owner != caller {
			return nil, status.Error(codes.PermissionDenied, "only the original owner can access the process")
		}
	}
	return withCaller(ctx, caller), nil
}

func (a *authorizer) unary(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	ctx, err := a.authorize(ctx, req)
	if err != nil {
		return nil, err
	}
	return handler(ctx, req)
}

// stream authenticates streaming calls. None of them name a process, so
// only the caller is resolved.
func (a *authorizer) stream(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	ctx, err := a.authorize(ss.Context(), nil)
	if err != nil {
		return err
	}
	return handler(srv, &streamWithCtx{ServerStream: ss, ctx: ctx})
}

type streamWithCtx struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *streamWithCtx) Context() context.Context { return s.ctx }
