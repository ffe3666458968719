package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	protov1 "github.com/SanjoDeundiak/process-launcher/api/v1"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print a line for every process of yours that terminates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(client protov1.ProcessRunnerServiceClient) error {
				stream, err := client.Watch(cmd.Context(), &protov1.WatchRequest{})
				if err != nil {
					return err
				}
				for {
					ev, err := stream.Recv()
					if errors.Is(err, io.EOF) {
						return nil
					}
					if err != nil {
						return err
					}
					printEventLine(cmd.OutOrStdout(), ev)
				}
			})
		},
	}
	return cmd
}
