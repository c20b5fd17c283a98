package stream

import (
	"encoding/hex"

	"github.com/montanaflynn/stats"
	"golang.org/x/crypto/blake2b"

	"github.com/applesheeple/tdcache/pkg/coverage"
)

// Summary condenses a reconstruction into the figures an operator needs to
// decide where to truncate the output and whether a continuation file can be
// appended.
type Summary struct {
	SliceCount int
	PartCount  int

	BufferSize     int64
	LastContiguous int64
	TrailingBytes  int64

	// Covered is the total number of bytes that received data;
	// Discontinuity is the buffer span past the contiguous prefix,
	// which includes every unfilled hole.
	Covered       int64
	Discontinuity int64
	Gaps          []coverage.Range

	MeanPartSize   float64
	MedianPartSize float64

	// PrefixDigest is the hex BLAKE2b-256 digest of the contiguous prefix,
	// stable across runs over the same cache file.
	PrefixDigest string
}

// Summarize computes a Summary from a reconstruction result.
func Summarize(res *Result) *Summary {
	s := &Summary{
		SliceCount:     len(res.Slices),
		PartCount:      res.PartCount(),
		BufferSize:     int64(len(res.Buffer)),
		LastContiguous: res.LastContiguous,
		TrailingBytes:  res.TrailingBytes,
		Covered:        res.Coverage.Covered(),
		Gaps:           res.Coverage.Gaps(int64(len(res.Buffer))),
	}
	s.Discontinuity = s.BufferSize - s.LastContiguous

	sizes := make(stats.Float64Data, 0, s.PartCount)
	for _, sl := range res.Slices {
		for _, p := range sl.Parts {
			sizes = append(sizes, float64(p.Size))
		}
	}
	// stats errors only on empty input; zero is the right figure there.
	s.MeanPartSize, _ = stats.Mean(sizes)
	s.MedianPartSize, _ = stats.Median(sizes)

	digest := blake2b.Sum256(res.Buffer[:res.LastContiguous])
	s.PrefixDigest = hex.EncodeToString(digest[:])
	return s
}
