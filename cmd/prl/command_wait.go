package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"

	protov1 "github.com/SanjoDeundiak/process-launcher/api/v1"
)

func newWaitCmd() *cobra.Command {
	var exitWithCode bool

	cmd := &cobra.Command{
		Use:   "wait <process_id>",
		Short: "Wait for a process to terminate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			processID := args[0]
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			return withClient(func(client protov1.ProcessRunnerServiceClient) error {
				resp, err := client.Wait(ctx, &protov1.ProcessRequest{ProcessIdentifier: processID})
				if err != nil {
					if grpcCode(err) == codes.PermissionDenied {
						_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Forbidden. Only the creator of the process can wait for it.")
						return nil
					}
					return err
				}
				printStatusTable(cmd.OutOrStdout(), processID, resp.GetStatus(), resp.GetProcess())
				if exitWithCode {
					if code := shellExitCode(resp.GetStatus()); code != 0 {
						os.Exit(code)
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&exitWithCode, "exit-code", false, "exit with the process's exit code (128+signal when killed)")

	return cmd
}

// shellExitCode follows the shell convention for a finished process.
func shellExitCode(st *protov1.ProcessStatus) int {
	switch st.GetExitReason() {
	case protov1.ExitReason_EXIT_REASON_EXITED:
		return int(st.GetExitCode())
	case protov1.ExitReason_EXIT_REASON_SIGNALED:
		return 128 + int(st.GetSignal())
	default:
		return 0
	}
}
