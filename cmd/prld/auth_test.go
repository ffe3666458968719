package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net/url"
	"os"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	protov1 "github.com/SanjoDeundiak/process-launcher/api/v1"
)

func TestContext_HasCaller(t *testing.T) {
	expected := "TEST"
	actual, ok := callerFromContext(withCaller(context.Background(), expected))
	if !ok || actual != expected {
		t.Fatalf("expected %s, got %q (%v)", expected, actual, ok)
	}
	if _, ok := callerFromContext(context.Background()); ok {
		t.Fatalf("expected no caller in empty context")
	}
}

func peerContext(uris ...*url.URL) context.Context {
	leaf := &x509.Certificate{URIs: uris}
	info := credentials.TLSInfo{State: tls.ConnectionState{PeerCertificates: []*x509.Certificate{leaf}}}
	return peer.NewContext(context.Background(), &peer.Peer{AuthInfo: info})
}

func TestTls_SpiffeUriSan(t *testing.T) {
	ctx := peerContext(
		&url.URL{Scheme: "https", Host: "example.com"},
		&url.URL{Scheme: "spiffe", Host: "client1", Path: "/workload"},
	)

	actual, ok := spiffeIdFromPeer(ctx)
	if !ok || actual != "client1" {
		t.Fatalf("expected client1, got %q", actual)
	}
}

func TestTls_NoSpiffeUriSan(t *testing.T) {
	if actual, ok := spiffeIdFromPeer(peerContext()); ok {
		t.Fatalf("expected no identity, got %s", actual)
	}
	if actual, ok := spiffeIdFromPeer(context.Background()); ok {
		t.Fatalf("expected no identity without peer, got %s", actual)
	}
}

func fixedIdentity(caller string) func(context.Context) (string, bool) {
	return func(context.Context) (string, bool) { return caller, caller != "" }
}

func ownersOf(owners map[string]string) func(string) (string, error) {
	return func(id string) (string, error) {
		owner, ok := owners[id]
		if !ok {
			return "", os.ErrNotExist
		}
		return owner, nil
	}
}

func TestAuthorizer_Unary(t *testing.T) {
	owners := ownersOf(map[string]string{"p1": "client1"})
	var seen string
	handler := func(ctx context.Context, _ any) (any, error) {
		seen, _ = callerFromContext(ctx)
		return "ok", nil
	}

	cases := []struct {
		name   string
		caller string
		req    any
		code   codes.Code
	}{
		{"owner", "client1", &protov1.ProcessRequest{ProcessIdentifier: "p1"}, codes.OK},
		{"other client", "client2", &protov1.ProcessRequest{ProcessIdentifier: "p1"}, codes.PermissionDenied},
		{"unknown process", "client1", &protov1.ProcessRequest{ProcessIdentifier: "p2"}, codes.PermissionDenied},
		{"anonymous", "", &protov1.ProcessRequest{ProcessIdentifier: "p1"}, codes.Unauthenticated},
		{"start needs no owner", "client2", &protov1.StartRequest{Command: "true"}, codes.OK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seen = ""
			auth := &authorizer{identify: fixedIdentity(tc.caller), owner: owners}
			_, err := auth.unary(context.Background(), tc.req, &grpc.UnaryServerInfo{}, handler)
			if status.Code(err) != tc.code {
				t.Fatalf("expected %v, got %v", tc.code, err)
			}
			if tc.code == codes.OK && seen != tc.caller {
				t.Fatalf("handler saw caller %q, expected %q", seen, tc.caller)
			}
		})
	}
}

func TestAuthorizer_OwnerLookupError(t *testing.T) {
	auth := &authorizer{
		identify: fixedIdentity("client1"),
		owner:    func(string) (string, error) { return "client1", errors.New("lookup failed") },
	}
	called := false
	_, err := auth.unary(context.Background(), &protov1.ProcessRequest{ProcessIdentifier: "p1"}, &grpc.UnaryServerInfo{},
		func(context.Context, any) (any, error) { called = true; return nil, nil })
	if status.Code(err) != codes.PermissionDenied || called {
		t.Fatalf("expected PermissionDenied before the handler, got %v (handler called: %v)", err, called)
	}
}

type contextStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *contextStream) Context() context.Context { return s.ctx }

func TestAuthorizer_Stream(t *testing.T) {
	auth := &authorizer{identify: fixedIdentity("client1"), owner: ownersOf(nil)}
	var seen string
	err := auth.stream(nil, &contextStream{ctx: context.Background()}, &grpc.StreamServerInfo{},
		func(_ any, ss grpc.ServerStream) error {
			seen, _ = callerFromContext(ss.Context())
			return nil
		})
	if err != nil || seen != "client1" {
		t.Fatalf("expected caller client1, got %q (%v)", seen, err)
	}

	anonymous := &authorizer{identify: fixedIdentity(""), owner: ownersOf(nil)}
	err = anonymous.stream(nil, &contextStream{ctx: context.Background()}, &grpc.StreamServerInfo{},
		func(any, grpc.ServerStream) error { return nil })
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}
