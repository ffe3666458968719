package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"

	protov1 "github.com/SanjoDeundiak/process-launcher/api/v1"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <process_id>",
		Short: "Get status of a process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			processID := args[0]
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			return withClient(func(client protov1.ProcessRunnerServiceClient) error {
				resp, err := client.Status(ctx, &protov1.ProcessRequest{ProcessIdentifier: processID})
				if err != nil {
					if grpcCode(err) == codes.PermissionDenied {
						_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Forbidden. Only the creator of the process can get its status.")
						return nil
					}
					return err
				}
				printStatusTable(cmd.OutOrStdout(), processID, resp.GetStatus(), resp.GetProcess())
				return nil
			})
		},
	}
	return cmd
}
