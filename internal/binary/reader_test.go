package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/robert-malhotra/go-asf/internal/guid"
)

// shortReaderAt reports fewer bytes than requested without an error.
type shortReaderAt []byte

func (b shortReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(b)) {
		return 0, nil
	}
	n := copy(p, b[off:])
	return n, nil
}

func TestReaderReadUint32(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(0x12345678))
	binary.Write(&buf, binary.LittleEndian, uint32(0xDEADBEEF))

	r := NewBytesReader(buf.Bytes())

	v, err := r.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32 failed: %v", err)
	}
	if v != 0x12345678 {
		t.Errorf("expected 0x12345678, got 0x%08x", v)
	}

	v, err = r.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32 failed: %v", err)
	}
	if v != 0xDEADBEEF {
		t.Errorf("expected 0xDEADBEEF, got 0x%08x", v)
	}
}

func TestReaderReadUint64(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint64(0x123456789ABCDEF0))

	r := NewBytesReader(buf.Bytes())

	v, err := r.ReadUint64()
	if err != nil {
		t.Fatalf("ReadUint64 failed: %v", err)
	}
	if v != 0x123456789ABCDEF0 {
		t.Errorf("expected 0x123456789ABCDEF0, got 0x%016x", v)
	}
}

func TestReaderReadGUID(t *testing.T) {
	data := append(guid.AudioSpread.Bytes(), 0xAA)
	r := NewBytesReader(data)

	g, err := r.ReadGUID()
	if err != nil {
		t.Fatalf("ReadGUID failed: %v", err)
	}
	if g != guid.AudioSpread {
		t.Errorf("expected %s, got %s", guid.AudioSpread, g)
	}
	if r.Pos() != 16 {
		t.Errorf("expected pos 16, got %d", r.Pos())
	}
}

func TestReaderTruncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		read func(r *Reader) error
	}{
		{"uint32", []byte{1, 2, 3}, func(r *Reader) error { _, err := r.ReadUint32(); return err }},
		{"uint64", []byte{1, 2, 3, 4, 5, 6, 7}, func(r *Reader) error { _, err := r.ReadUint64(); return err }},
		{"guid", make([]byte, 15), func(r *Reader) error { _, err := r.ReadGUID(); return err }},
		{"bytes", []byte{1}, func(r *Reader) error { _, err := r.ReadBytes(2); return err }},
		{"huge", []byte{1}, func(r *Reader) error { _, err := r.ReadBytes(1 << 40); return err }},
		{"peek", nil, func(r *Reader) error { _, err := r.Peek(1); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewBytesReader(tt.data)
			err := tt.read(r)
			if !errors.Is(err, ErrTruncated) {
				t.Fatalf("expected ErrTruncated, got %v", err)
			}
			if r.Pos() != 0 {
				t.Errorf("failed read moved position to %d", r.Pos())
			}
		})
	}
}

func TestReaderShortSource(t *testing.T) {
	// Declared size is larger than what the source can deliver
	r := NewReader(shortReaderAt{1, 2}, 8, DefaultConfig())

	_, err := r.ReadUint64()
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestReaderZeroLengthRead(t *testing.T) {
	r := NewBytesReader(nil)

	b, err := r.ReadBytes(0)
	if err != nil {
		t.Fatalf("ReadBytes(0) failed: %v", err)
	}
	if len(b) != 0 {
		t.Errorf("expected empty slice, got %v", b)
	}
}

func TestReaderAt(t *testing.T) {
	r := NewBytesReader([]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05})

	// Read from offset 3
	r2 := r.At(3)
	v, err := r2.ReadBytes(1)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if v[0] != 0x03 {
		t.Errorf("expected 0x03, got 0x%02x", v[0])
	}
	if r2.Remaining() != 2 {
		t.Errorf("expected 2 remaining, got %d", r2.Remaining())
	}

	// Original reader should be unaffected
	if r.Pos() != 0 {
		t.Errorf("expected original reader at 0, got %d", r.Pos())
	}
}

func TestReaderSkipAndRemaining(t *testing.T) {
	r := NewBytesReader([]byte{0x00, 0x01, 0x02, 0x03, 0x04})

	r.Skip(2)
	if r.Remaining() != 3 {
		t.Errorf("expected 3 remaining, got %d", r.Remaining())
	}

	r.Skip(10)
	if r.Remaining() != 0 {
		t.Errorf("expected 0 remaining past end, got %d", r.Remaining())
	}
	if r.Size() != 5 {
		t.Errorf("expected size 5, got %d", r.Size())
	}
}

func TestReaderPeek(t *testing.T) {
	r := NewBytesReader([]byte{0x00, 0x01, 0x02, 0x03})

	// Peek should not advance position
	peeked, err := r.Peek(2)
	if err != nil {
		t.Fatalf("Peek failed: %v", err)
	}
	if !bytes.Equal(peeked, []byte{0x00, 0x01}) {
		t.Errorf("expected [0x00, 0x01], got %v", peeked)
	}

	if r.Pos() != 0 {
		t.Errorf("Peek should not advance position, got %d", r.Pos())
	}

	// Read should still get the same data
	read, err := r.ReadBytes(2)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if !bytes.Equal(read, peeked) {
		t.Errorf("Read after Peek mismatch: %v vs %v", read, peeked)
	}
}
