package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/SanjoDeundiak/process-launcher/pkg/config"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib/logging"
)

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "prld",
		Short:         "Process Launcher daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.Option
			if configFile != "" {
				opts = append(opts, config.WithConfigFile(configFile))
			}
			cfg, err := config.Load(opts...)
			if err != nil {
				return err
			}
			logger := logging.New(cfg.Log, "prld")

			srv, err := NewGRPCServer(cfg, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize server: %w", err)
			}

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, unix.SIGINT, unix.SIGTERM)
			defer signal.Stop(sigs)
			go func() {
				sig := <-sigs
				logger.Info().Stringer("signal", sig).Msg("shutting down")
				srv.Stop()
			}()

			logger.Info().Stringer("address", srv.Addr()).Msg("server (TLS) listening")
			return srv.Serve()
		},
	}
	root.Flags().StringVarP(&configFile, "config", "c", "", "path to a config file")

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
