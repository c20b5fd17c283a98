package cache

import "io"

// SliceReader decodes slices from a container in a single forward pass.
//
// Decoding stops cleanly the moment the remaining input cannot hold one more
// complete slice, or a header exceeds the configured sanity bounds. That is
// the container's normal end condition, not an error: the undecoded remainder
// is reported by TrailingBytes.
type SliceReader struct {
	data []byte
	opts Options

	pos  int
	next int
	done bool
}

// NewSliceReader returns a reader over the full container byte sequence.
func NewSliceReader(data []byte, opts Options) *SliceReader {
	return &SliceReader{data: data, opts: opts}
}

// Next decodes and returns the next slice. It returns io.EOF once the
// remaining input cannot satisfy a complete slice; the reader does not
// advance past the last fully decoded slice.
func (r *SliceReader) Next() (*Slice, error) {
	if r.done {
		return nil, io.EOF
	}

	order := r.opts.byteOrder()
	pos := r.pos

	if len(r.data)-pos < sliceHeaderSize {
		r.done = true
		return nil, io.EOF
	}
	count := order.Uint32(r.data[pos:])
	pos += sliceHeaderSize

	if r.opts.MaxSliceParts != 0 && count > r.opts.MaxSliceParts {
		r.done = true
		return nil, io.EOF
	}

	// The count is untrusted input; never let it size an allocation
	// beyond what the remaining bytes could possibly hold.
	capHint := (len(r.data) - pos) / partHeaderSize
	if int64(count) < int64(capHint) {
		capHint = int(count)
	}
	parts := make([]Part, 0, capHint)
	for i := uint32(0); i < count; i++ {
		if len(r.data)-pos < partHeaderSize {
			r.done = true
			return nil, io.EOF
		}
		dest := order.Uint32(r.data[pos:])
		size := order.Uint32(r.data[pos+4:])
		pos += partHeaderSize

		if r.opts.MaxPartSize != 0 && size > r.opts.MaxPartSize {
			r.done = true
			return nil, io.EOF
		}
		if int64(len(r.data))-int64(pos) < int64(size) {
			r.done = true
			return nil, io.EOF
		}
		parts = append(parts, Part{
			DestOffset: dest,
			Size:       size,
			payload:    r.data[pos : pos+int(size)],
		})
		pos += int(size)
	}

	s := &Slice{Index: r.next, Parts: parts}
	r.next++
	r.pos = pos
	return s, nil
}

// TrailingBytes returns the number of input bytes after the last fully
// decoded slice. Before decoding finishes it reports the bytes not yet
// consumed.
func (r *SliceReader) TrailingBytes() int64 {
	return int64(len(r.data) - r.pos)
}

// DecodeAll decodes every slice in data and returns them together with the
// trailing byte count.
func DecodeAll(data []byte, opts Options) ([]Slice, int64) {
	r := NewSliceReader(data, opts)
	var slices []Slice
	for {
		s, err := r.Next()
		if err != nil {
			return slices, r.TrailingBytes()
		}
		slices = append(slices, *s)
	}
}
