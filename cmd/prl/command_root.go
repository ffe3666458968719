package main

import "github.com/spf13/cobra"

// configFile is set by the persistent --config flag.
var configFile string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "prl",
		Short:         "Process Launcher CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a config file")

	root.AddCommand(newStartCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newStopCmd())
	root.AddCommand(newWaitCmd())
	root.AddCommand(newLogsCmd())
	root.AddCommand(newWatchCmd())

	return root
}
