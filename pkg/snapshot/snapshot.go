package snapshot

import (
	"fmt"

	"github.com/DataDog/zstd"
)

// DefaultCompressionLevel favours size; snapshots are written once per run.
const DefaultCompressionLevel = zstd.DefaultCompression

// Extension is appended to a target path to name its snapshot.
const Extension = ".snap"

type options struct {
	level int
}

// Option configures Encode.
type Option func(*options)

// WithCompressionLevel sets the zstd compression level.
func WithCompressionLevel(level int) Option {
	return func(o *options) {
		o.level = level
	}
}

// PathFor returns the snapshot path for a target file.
func PathFor(target string) string {
	return target + Extension
}

// Encode compresses data into a snapshot.
func Encode(data []byte, opts ...Option) ([]byte, error) {
	o := options{level: DefaultCompressionLevel}
	for _, opt := range opts {
		opt(&o)
	}

	compressed, err := zstd.CompressLevel(nil, data, o.level)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	out := make([]byte, HeaderSize+len(compressed))
	NewHeader(uint64(len(data)), uint64(len(compressed))).EncodeTo(out)
	copy(out[HeaderSize:], compressed)
	return out, nil
}

// Decode validates a snapshot and returns its uncompressed content.
func Decode(b []byte) ([]byte, error) {
	h := &Header{}
	if err := h.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	body := b[HeaderSize:]
	if uint64(len(body)) != h.CompressedLength {
		return nil, fmt.Errorf("truncated snapshot: expected %d compressed bytes, got %d", h.CompressedLength, len(body))
	}

	data, err := zstd.Decompress(nil, body)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	if uint64(len(data)) != h.Length {
		return nil, fmt.Errorf("incomplete read: expected %d, got %d", h.Length, len(data))
	}
	return data, nil
}
