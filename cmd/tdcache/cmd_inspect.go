package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/applesheeple/tdcache/pkg/stream"
)

func newInspectCmd() *cobra.Command {
	var flags decodeFlags
	var showParts bool

	cmd := &cobra.Command{
		Use:   "inspect <cache-file>",
		Short: "Print the slice/part map and coverage summary of a cache file",
		Args:  cobra.ExactArgs(1),
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
			sum := stream.Summarize(res)

			w := cmd.OutOrStdout()
			if showParts {
				for _, s := range res.Slices {
					fmt.Fprintf(w, "slice %d: %d part(s)\n", s.Index, len(s.Parts))
					for i, p := range s.Parts {
						fmt.Fprintf(w, "  part %d: offset=%d size=%d\n", i, p.DestOffset, p.Size)
					}
				}
			}

			fmt.Fprintf(w, "slices: %d, parts: %d\n", sum.SliceCount, sum.PartCount)
			fmt.Fprintf(w, "stream size: %d byte(s), covered: %d byte(s)\n", sum.BufferSize, sum.Covered)
			fmt.Fprintf(w, "part size mean/median: %.1f/%.1f\n", sum.MeanPartSize, sum.MedianPartSize)
			fmt.Fprintf(w, "last contiguous offset: %d (discontinuity: %d byte(s))\n",
				sum.LastContiguous, sum.Discontinuity)
			for _, g := range sum.Gaps {
				fmt.Fprintf(w, "  gap %v: %d byte(s)\n", g, g.Len())
			}
			fmt.Fprintf(w, "trailing bytes: %d\n", sum.TrailingBytes)
			fmt.Fprintf(w, "contiguous prefix blake2b: %s\n", sum.PrefixDigest)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&showParts, "parts", false, "list every part of every slice")
	return cmd
}
