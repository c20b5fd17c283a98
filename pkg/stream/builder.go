// Package stream rebuilds a linear media byte-stream from the out-of-order
// parts recorded in a streaming cache container.
package stream

import (
	"errors"
	"math"

	"github.com/applesheeple/tdcache/pkg/coverage"
)

// ErrOffsetOverflow reports a part whose destination range cannot be
// addressed in the output buffer.
var ErrOffsetOverflow = errors.New("destination range exceeds addressable stream space")

// Builder owns the destination buffer. Writes may land at any offset; the
// buffer grows as needed and every touched range is recorded in the coverage
// set. Bytes the builder filled in to bridge a gap are zero and carry no
// meaning: only covered ranges hold valid data.
type Builder struct {
	buf []byte
	cov coverage.Set
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder { return &Builder{} }

// Write copies payload into the buffer at destOffset, growing the buffer if
// needed. Later writes overwrite earlier ones at the same offset. The touched
// range is merged into the coverage set before returning.
func (b *Builder) Write(destOffset int64, payload []byte) error {
	if destOffset < 0 || destOffset > int64(math.MaxInt)-int64(len(payload)) {
		return ErrOffsetOverflow
	}
	if len(payload) == 0 {
		return nil
	}

	end := destOffset + int64(len(payload))
	if grow := end - int64(len(b.buf)); grow > 0 {
		b.buf = append(b.buf, make([]byte, grow)...)
	}
	copy(b.buf[destOffset:end], payload)
	b.cov.Merge(coverage.Range{Start: destOffset, End: end})
	return nil
}

// Bytes returns the destination buffer. The builder keeps ownership until the
// caller stops writing.
func (b *Builder) Bytes() []byte { return b.buf }

// Len returns the current buffer length.
func (b *Builder) Len() int64 { return int64(len(b.buf)) }

// ContiguousPrefix returns the length of the unbroken covered prefix starting
// at offset 0.
func (b *Builder) ContiguousPrefix() int64 { return b.cov.ContiguousPrefix() }

// Coverage exposes the set of covered destination ranges.
func (b *Builder) Coverage() *coverage.Set { return &b.cov }
