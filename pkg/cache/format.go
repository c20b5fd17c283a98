// Package cache decodes Telegram Desktop's streaming media cache container.
//
// A decrypted cache file for a large media download holds one or more slices.
// Each slice starts with a 4-byte part count, followed by that many parts. A
// part is an 8-byte header (destination offset in the rebuilt media stream,
// then payload size, both 32-bit) followed by the payload bytes. The cache
// writer emulates a media player, so parts are neither ordered nor contiguous:
// a forward seek to a trailing index atom produces a part near the end of the
// stream long before the middle arrives.
//
// A few bytes usually remain after the last decodable slice. Their meaning is
// unknown; they are reported as an opaque trailing count and never parsed.
package cache

import "encoding/binary"

const (
	sliceHeaderSize = 4
	partHeaderSize  = 8

	// Bounds observed on real cache files. Slices never carry more than a
	// few dozen parts, and the cache writer caps parts at 128 KiB.
	DefaultMaxSliceParts = 80
	DefaultMaxPartSize   = 128 * 1024
)

// Part is one (destination offset, size, payload) record within a slice. The
// payload is a view into the container input, not a copy.
type Part struct {
	DestOffset uint32
	Size       uint32

	payload []byte
}

// Payload returns the part's payload bytes. The slice aliases the container
// input and must not be modified.
func (p Part) Payload() []byte { return p.payload }

// Slice is one header-delimited group of parts, in container order.
type Slice struct {
	Index int
	Parts []Part
}

// Options control container decoding.
type Options struct {
	// ByteOrder for the 32-bit header fields. Nil selects little-endian,
	// the order used by the originating platform.
	ByteOrder binary.ByteOrder

	// MaxSliceParts stops decoding when a slice declares more parts.
	// The format carries no checksum, so an absurd count is the only hint
	// that the parser has run into non-slice data. Zero disables the bound.
	MaxSliceParts uint32

	// MaxPartSize stops decoding when a part declares a larger payload.
	// Zero disables the bound.
	MaxPartSize uint32
}

// DefaultOptions returns decoding options matching real cache files:
// little-endian headers with the observed sanity bounds.
func DefaultOptions() Options {
	return Options{
		ByteOrder:     binary.LittleEndian,
		MaxSliceParts: DefaultMaxSliceParts,
		MaxPartSize:   DefaultMaxPartSize,
	}
}

func (o Options) byteOrder() binary.ByteOrder {
	if o.ByteOrder == nil {
		return binary.LittleEndian
	}
	return o.ByteOrder
}
