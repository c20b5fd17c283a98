package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "tdcache",
		Short: "Recover media streams from Telegram Desktop streaming cache files",
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newRecoverCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newAppendCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("tdcache 0.1.0-dev")
		},
	}
}
