package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/applesheeple/tdcache/pkg/cache"
	"github.com/applesheeple/tdcache/pkg/coverage"
)

// Result is the terminal output of a reconstruction.
type Result struct {
	// Buffer holds the rebuilt stream. Bytes outside Coverage are zero
	// fill and must not be trusted.
	Buffer []byte

	// LastContiguous is the byte offset up to which Buffer is gap-free
	// from the start. Data past it may sit beyond an unfilled hole.
	LastContiguous int64

	// TrailingBytes counts the opaque container bytes after the last
	// decodable slice.
	TrailingBytes int64

	// Slices are the decoded slice descriptors, in container order.
	Slices []cache.Slice

	// Coverage is the set of destination ranges that received data.
	Coverage *coverage.Set
}

// PartCount returns the total number of parts across all slices.
func (r *Result) PartCount() int {
	var n int
	for _, s := range r.Slices {
		n += len(s.Parts)
	}
	return n
}

// Reconstruct rebuilds the media stream from a full container byte sequence.
//
// Parts are applied strictly in container order (slice order, then part order
// within each slice), never sorted by destination: the format has no
// versioning, so a later part overwriting an earlier one is resolved by write
// order alone. Decode stops at the first point where no complete slice
// remains; those bytes are surfaced in Result.TrailingBytes. There is no
// partial-success mode: any write failure aborts with no result.
func Reconstruct(data []byte, opts cache.Options) (*Result, error) {
	b := NewBuilder()
	r := cache.NewSliceReader(data, opts)

	var slices []cache.Slice
	for {
		s, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		for i, p := range s.Parts {
			if err := b.Write(int64(p.DestOffset), p.Payload()); err != nil {
				return nil, fmt.Errorf("slice %d part %d at offset %d: %w", s.Index, i, p.DestOffset, err)
			}
		}
		slices = append(slices, *s)
	}

	return &Result{
		Buffer:         b.Bytes(),
		LastContiguous: b.ContiguousPrefix(),
		TrailingBytes:  r.TrailingBytes(),
		Slices:         slices,
		Coverage:       b.Coverage(),
	}, nil
}
