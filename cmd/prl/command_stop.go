package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"

	protov1 "github.com/SanjoDeundiak/process-launcher/api/v1"
)

func newStopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop <process_id>",
		Short: "Stop a process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			processID := args[0]
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			return withClient(func(client protov1.ProcessRunnerServiceClient) error {
				resp, err := client.Stop(ctx, &protov1.ProcessRequest{ProcessIdentifier: processID})
				if err != nil {
					if grpcCode(err) == codes.PermissionDenied {
						_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Forbidden. Only the creator of the process can stop it.")
						return nil
					}
					return err
				}
				// Print the status and process returned by Stop directly
				printStatusTable(cmd.OutOrStdout(), processID, resp.GetStatus(), resp.GetProcess())
				return nil
			})
		},
	}
	return cmd
}
