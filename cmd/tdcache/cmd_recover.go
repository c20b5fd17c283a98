package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/applesheeple/tdcache/pkg/stream"
)

func newRecoverCmd() *cobra.Command {
	var flags decodeFlags
	var trim bool

	cmd := &cobra.Command{
		Use:   "recover <cache-file> <output-file>",
		Short: "Rebuild the media stream from a streaming cache file",
		Long: `Rebuild the linear media stream from a decrypted streaming cache file.

The printed last contiguous offset is the byte count that is guaranteed
gap-free from the start of the output. Data past it sits beyond a hole the
download never filled; pass --trim to cut the output there, which is required
before appending continuation cache files.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			res, err := stream.Reconstruct(data, opts)
			if err != nil {
				return err
			}

			out := res.Buffer
			if trim {
				out = out[:res.LastContiguous]
			}
			if err := createOutput(args[1], out); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "recovered %d byte(s) from %d slice(s), %d part(s)\n",
				len(out), len(res.Slices), res.PartCount())
			fmt.Fprintf(w, "last contiguous offset: %d\n", res.LastContiguous)
			fmt.Fprintf(w, "trailing bytes: %d\n", res.TrailingBytes)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&trim, "trim", false, "truncate output at the last contiguous offset")
	return cmd
}
