package main

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"

	protov1 "github.com/SanjoDeundiak/process-launcher/api/v1"
	"github.com/SanjoDeundiak/process-launcher/pkg/config"
)

func loadConfig() (*config.Config, error) {
	var opts []config.Option
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	return config.Load(opts...)
}

func dial() (*grpc.ClientConn, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateTLS(); err != nil {
		return nil, err
	}

	cert, err := tls.X509KeyPair([]byte(cfg.TLSCert), []byte(cfg.TLSKey))
	if err != nil {
		return nil, fmt.Errorf("failed to parse TLS cert/key: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM([]byte(cfg.CATLSCert)) {
		return nil, fmt.Errorf("failed to parse CA cert")
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		MinVersion:   tls.VersionTLS13,
	}
	creds := credentials.NewTLS(tlsConfig)

	return grpc.NewClient(cfg.Address, grpc.WithTransportCredentials(creds))
}

// withClient dials the server, runs fn and closes the connection.
func withClient(fn func(client protov1.ProcessRunnerServiceClient) error) error {
	conn, err := dial()
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(protov1.NewProcessRunnerServiceClient(conn))
}

func grpcCode(err error) codes.Code {
	st, ok := status.FromError(err)
	if !ok {
		return codes.Unknown
	}
	return st.Code()
}
