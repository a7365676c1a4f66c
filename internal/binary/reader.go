// Package binary provides the byte cursor and encoders used to read and
// write ASF objects.
package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/robert-malhotra/go-asf/internal/guid"
)

// ErrTruncated is returned when fewer bytes remain than a read requires.
var ErrTruncated = errors.New("truncated input")

// Reader is a forward cursor over a byte source of known size.
type Reader struct {
	r     io.ReaderAt
	order binary.ByteOrder
	size  int64
	pos   int64
}

// Config holds reader and writer configuration.
type Config struct {
	ByteOrder binary.ByteOrder
}

// DefaultConfig returns the ASF configuration. ASF fields are little-endian.
func DefaultConfig() Config {
	return Config{
		ByteOrder: binary.LittleEndian,
	}
}

// NewReader creates a cursor over the first size bytes of r.
func NewReader(r io.ReaderAt, size int64, cfg Config) *Reader {
	return &Reader{
		r:     r,
		order: cfg.ByteOrder,
		size:  size,
	}
}

// NewBytesReader creates a little-endian cursor over b.
func NewBytesReader(b []byte) *Reader {
	return NewReader(bytes.NewReader(b), int64(len(b)), DefaultConfig())
}

// At returns a new reader positioned at the given offset.
// The new reader shares the underlying io.ReaderAt but has independent position.
func (r *Reader) At(offset int64) *Reader {
	return &Reader{
		r:     r.r,
		order: r.order,
		size:  r.size,
		pos:   offset,
	}
}

// Pos returns the current read position.
func (r *Reader) Pos() int64 {
	return r.pos
}

// Size returns the total size of the source.
func (r *Reader) Size() int64 {
	return r.size
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int64 {
	if r.pos >= r.size {
		return 0
	}
	return r.size - r.pos
}

// ReadBytes reads exactly n bytes from the current position.
// The position is left unchanged on failure.
func (r *Reader) ReadBytes(n uint64) ([]byte, error) {
	buf, err := r.read(n)
	if err != nil {
		return nil, err
	}
	r.pos += int64(n)
	return buf, nil
}

// Peek reads n bytes without advancing the position.
func (r *Reader) Peek(n uint64) ([]byte, error) {
	return r.read(n)
}

func (r *Reader) read(n uint64) ([]byte, error) {
	if n > uint64(r.Remaining()) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, %d remain", ErrTruncated, n, r.pos, r.Remaining())
	}
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	read, err := r.r.ReadAt(buf, r.pos)
	if uint64(read) < n {
		if err == nil || errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: reading %d bytes at offset %d: %w", ErrTruncated, n, r.pos, err)
	}
	return buf, nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(buf), nil
}

// ReadUint64 reads an unsigned 64-bit integer.
func (r *Reader) ReadUint64() (uint64, error) {
	buf, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(buf), nil
}

// ReadGUID reads a 16-byte identifier in wire order.
func (r *Reader) ReadGUID() (guid.GUID, error) {
	buf, err := r.ReadBytes(guid.Size)
	if err != nil {
		return guid.Zero, err
	}
	return guid.FromBytes(buf)
}

// Skip advances the position by n bytes.
func (r *Reader) Skip(n int64) {
	r.pos += n
}

// ByteOrder returns the configured byte order.
func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.order
}
