// Package snapshot stores a zstd-compressed copy of a file's content taken
// before it is patched, so a patch run can be undone.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Magic bytes identifying a snapshot header.
var Magic = [4]byte{0x54, 0x58, 0x53, 0x4e} // "TXSN"

// HeaderSize is the fixed binary size of a snapshot header.
const HeaderSize = 24 // 4 + 4 + 8 + 8 bytes

// ErrInvalidMagic is returned when data does not start with Magic.
var ErrInvalidMagic = errors.New("invalid snapshot magic")

// Header precedes the compressed frame in a snapshot.
type Header struct {
	Magic            [4]byte
	HeaderLength     uint32
	Length           uint64 // Uncompressed size
	CompressedLength uint64 // Compressed size
}

// NewHeader creates a snapshot header with the given sizes.
func NewHeader(uncompressedSize, compressedSize uint64) *Header {
	return &Header{
		Magic:            Magic,
		HeaderLength:     16,
		Length:           uncompressedSize,
		CompressedLength: compressedSize,
	}
}

// Validate checks the header for validity.
func (h *Header) Validate() error {
	if h.Magic != Magic {
		return fmt.Errorf("%w: expected %x, got %x", ErrInvalidMagic, Magic, h.Magic)
	}
	if h.HeaderLength != 16 {
		return fmt.Errorf("invalid header length: expected 16, got %d", h.HeaderLength)
	}
	if h.CompressedLength == 0 {
		return fmt.Errorf("compressed size is zero")
	}
	return nil
}

// MarshalBinary encodes the header to binary format.
func (h *Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	h.EncodeTo(buf)
	return buf, nil
}

// EncodeTo writes the header to buf, which must hold HeaderSize bytes.
func (h *Header) EncodeTo(buf []byte) {
	copy(buf[0:4], h.Magic[:])
	binary.LittleEndian.PutUint32(buf[4:8], h.HeaderLength)
	binary.LittleEndian.PutUint64(buf[8:16], h.Length)
	binary.LittleEndian.PutUint64(buf[16:24], h.CompressedLength)
}

// UnmarshalBinary decodes and validates the header.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("header data too short: need %d, got %d", HeaderSize, len(data))
	}
	copy(h.Magic[:], data[0:4])
	h.HeaderLength = binary.LittleEndian.Uint32(data[4:8])
	h.Length = binary.LittleEndian.Uint64(data[8:16])
	h.CompressedLength = binary.LittleEndian.Uint64(data[16:24])
	return h.Validate()
}
