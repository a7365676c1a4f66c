package binary

import (
	"encoding/binary"
	"io"

	"github.com/robert-malhotra/go-asf/internal/guid"
)

// Writer writes ASF fields sequentially to an io.WriterAt.
type Writer struct {
	w     io.WriterAt
	order binary.ByteOrder
	pos   int64
}

// NewWriter creates a binary writer with the given configuration.
func NewWriter(w io.WriterAt, cfg Config) *Writer {
	return &Writer{
		w:     w,
		order: cfg.ByteOrder,
	}
}

// At returns a new writer positioned at the given offset.
// The new writer shares the underlying io.WriterAt but has independent position.
func (w *Writer) At(offset int64) *Writer {
	return &Writer{
		w:     w.w,
		order: w.order,
		pos:   offset,
	}
}

// Pos returns the current write position.
func (w *Writer) Pos() int64 {
	return w.pos
}

// WriteBytes writes the given bytes at the current position.
func (w *Writer) WriteBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	n, err := w.w.WriteAt(data, w.pos)
	w.pos += int64(n)
	return err
}

// WriteUint32 writes an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) error {
	buf := make([]byte, 4)
	w.order.PutUint32(buf, v)
	return w.WriteBytes(buf)
}

// WriteUint64 writes an unsigned 64-bit integer.
func (w *Writer) WriteUint64(v uint64) error {
	buf := make([]byte, 8)
	w.order.PutUint64(buf, v)
	return w.WriteBytes(buf)
}

// WriteGUID writes a 16-byte identifier in wire order.
func (w *Writer) WriteGUID(g guid.GUID) error {
	return w.WriteBytes(g[:])
}

// ByteOrder returns the configured byte order.
func (w *Writer) ByteOrder() binary.ByteOrder {
	return w.order
}

// Buffer is a growable in-memory io.WriterAt.
type Buffer struct {
	buf []byte
}

// NewBuffer returns a buffer with capacity for size bytes.
func NewBuffer(size int) *Buffer {
	return &Buffer{buf: make([]byte, 0, size)}
}

// WriteAt implements io.WriterAt.
func (b *Buffer) WriteAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, io.ErrShortWrite
	}
	end := int(off) + len(p)
	if end > len(b.buf) {
		if end <= cap(b.buf) {
			b.buf = b.buf[:end]
		} else {
			grown := make([]byte, end, end*2)
			copy(grown, b.buf)
			b.buf = grown
		}
	}
	copy(b.buf[off:], p)
	return len(p), nil
}

// Bytes returns the written bytes.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// PutGUID returns the wire bytes of g.
func PutGUID(g guid.GUID) []byte {
	return g.Bytes()
}

// Uint32LE encodes v as 4 little-endian bytes.
func Uint32LE(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

// Int64LE encodes v as 8 little-endian bytes.
func Int64LE(v int64) []byte {
	return binary.LittleEndian.AppendUint64(nil, uint64(v))
}
