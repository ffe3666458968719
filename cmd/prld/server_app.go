package main

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	protov1 "github.com/SanjoDeundiak/process-launcher/api/v1"
	"github.com/SanjoDeundiak/process-launcher/pkg/config"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib/runner"
)

const shutdownGrace = 5 * time.Second

// GRPCServer encapsulates TLS/mTLS configuration, gRPC server instance and listener.
type GRPCServer struct {
	lis    net.Listener
	s      *grpc.Server
	runner *runner.Runner
}

// NewGRPCServer constructs a TLS-enabled gRPC server that requires client certs (mTLS),
// registers the ProcessRunnerServiceServer, and prepares it to serve on the configured address.
func NewGRPCServer(cfg *config.Config, logger zerolog.Logger) (*GRPCServer, error) {
	if err := cfg.ValidateTLS(); err != nil {
		return nil, err
	}

	tlsConfig, err := serverTLSConfig(cfg)
	if err != nil {
		return nil, err
	}

	r, err := runner.NewRunner(
		runner.WithBaseDir(cfg.BaseDir),
		runner.WithStopTimeout(cfg.StopTimeout),
		runner.WithOrphanReaping(cfg.ReapOrphans),
		runner.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	lis, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	creds := credentials.NewTLS(tlsConfig)
	grpcLogger := logger.With().Str("component", "grpc").Logger()
	opts := append([]grpc.ServerOption{grpc.Creds(creds)}, interceptors(newAuthorizer(r), grpcLogger)...)
	s := grpc.NewServer(opts...)

	protov1.RegisterProcessRunnerServiceServer(s, NewProcessRunnerServiceServer(r, logger))

	return &GRPCServer{lis: lis, s: s, runner: r}, nil
}

// interceptors authorizes every call before logging it, so the log line
// carries the authenticated caller.
func interceptors(auth *authorizer, logger zerolog.Logger) []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(auth.unary, loggingUnary(logger)),
		grpc.ChainStreamInterceptor(auth.stream, loggingStream(logger)),
	}
}

func serverTLSConfig(cfg *config.Config) (*tls.Config, error) {
	cert, err := tls.X509KeyPair([]byte(cfg.TLSCert), []byte(cfg.TLSKey))
	if err != nil {
		return nil, fmt.Errorf("failed to load server key pair: %w", err)
	}

	caPool := x509.NewCertPool()
	if ok := caPool.AppendCertsFromPEM([]byte(cfg.CATLSCert)); !ok {
		return nil, fmt.Errorf("failed to append CA certificate to pool")
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      caPool,
		ClientCAs:    caPool,
		ClientAuth:   tls.RequireAndVerifyClientCert,
		MinVersion:   tls.VersionTLS13,
	}, nil
}

// Serve starts serving gRPC on the configured listener.
func (g *GRPCServer) Serve() error {
	return g.s.Serve(g.lis)
}

// Addr returns the network address the server is bound to.
func (g *GRPCServer) Addr() net.Addr { return g.lis.Addr() }

// Stop gracefully stops the gRPC server and releases the runner. Calls still
// running after shutdownGrace, such as open Watch streams, are cancelled.
func (g *GRPCServer) Stop() {
	stopped := make(chan struct{})
	go func() {
		g.s.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(shutdownGrace):
		g.s.Stop()
	}
	g.runner.Close()
}
