package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newAppendCmd() *cobra.Command {
	var at int64

	cmd := &cobra.Command{
		Use:   "append <recovered-file> <continuation-file>",
		Short: "Append a raw continuation cache file to a recovered stream",
		Long: `Continuation cache files for the same media are plain byte runs, not
slice-serialized, so they can be appended as-is. The recovered file is first
truncated at --at, normally the last contiguous offset printed by recover, so
that bytes sitting past an unfilled hole never survive into the final stream.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cont, err := readInput(args[1])
			if err != nil {
				return err
			}

			orig, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if at < 0 || at > int64(len(orig)) {
				return fmt.Errorf("offset %d is outside %s (%d bytes)", at, args[0], len(orig))
			}

			// Splice through a temp file and rename into place so a
			// failed write never leaves the recovered stream truncated.
			tmp, err := os.CreateTemp(filepath.Dir(args[0]), ".append-tmp-*")
			if err != nil {
				return err
			}
			tmpName := tmp.Name()

			if _, err := tmp.Write(orig[:at]); err != nil {
				tmp.Close()
				os.Remove(tmpName)
				return fmt.Errorf("append to %s: %w", args[0], err)
			}
			if _, err := tmp.Write(cont); err != nil {
				tmp.Close()
				os.Remove(tmpName)
				return fmt.Errorf("append to %s: %w", args[0], err)
			}
			if err := tmp.Close(); err != nil {
				os.Remove(tmpName)
				return fmt.Errorf("append to %s: %w", args[0], err)
			}
			if err := os.Rename(tmpName, args[0]); err != nil {
				os.Remove(tmpName)
				return fmt.Errorf("replace %s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "appended %d byte(s) at offset %d; stream is now %d byte(s)\n",
				len(cont), at, at+int64(len(cont)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&at, "at", 0, "offset to truncate the recovered file at before appending")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}
