package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"

	protov1 "github.com/SanjoDeundiak/process-launcher/api/v1"
)

func newLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs <process_id>",
		Short: "Print logs (stdout/stderr) written so far",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			processID := args[0]
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			return withClient(func(client protov1.ProcessRunnerServiceClient) error {
				resp, err := client.GetOutput(ctx, &protov1.ProcessRequest{ProcessIdentifier: processID})
				if err != nil {
					if grpcCode(err) == codes.PermissionDenied {
						_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Forbidden. Only the creator of the process can read its logs.")
						return nil
					}
					return err
				}
				if _, err := cmd.OutOrStdout().Write(resp.GetStdout()); err != nil {
					return err
				}
				_, err = cmd.ErrOrStderr().Write(resp.GetStderr())
				return err
			})
		},
	}
	return cmd
}
