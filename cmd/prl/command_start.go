package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	protov1 "github.com/SanjoDeundiak/process-launcher/api/v1"
)

func newStartCmd() *cobra.Command {
	var (
		envFlags []string
		clearEnv bool
	)

	cmd := &cobra.Command{
		Use:   "start [--env KEY=VALUE]... [--clear-env] -- <command> [args...]",
		Short: "Start a new process",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("command to execute is required; use -- to separate CLI flags from the command")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := parseEnvFlags(envFlags)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			return withClient(func(client protov1.ProcessRunnerServiceClient) error {
				resp, err := client.Start(ctx, &protov1.StartRequest{
					Command:  args[0],
					Args:     toBytes(args[1:]),
					Env:      env,
					ClearEnv: clearEnv,
				})
				if err != nil {
					return err
				}
				// Print only process ID as per design
				fmt.Fprintln(cmd.OutOrStdout(), resp.GetProcessIdentifier())
				return nil
			})
		},
	}
	cmd.Flags().StringArrayVarP(&envFlags, "env", "e", nil, "set an environment variable for the process (KEY=VALUE, repeatable)")
	cmd.Flags().BoolVar(&clearEnv, "clear-env", false, "start from an empty environment instead of the server's")

	return cmd
}

func toBytes(args []string) [][]byte {
	out := make([][]byte, len(args))
	for i, arg := range args {
		out[i] = []byte(arg)
	}
	return out
}

// parseEnvFlags turns KEY=VALUE pairs into a map; later pairs win.
func parseEnvFlags(pairs []string) (map[string][]byte, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	env := make(map[string][]byte, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --env %q: expected KEY=VALUE", pair)
		}
		env[key] = []byte(value)
	}
	return env, nil
}
