package object

import (
	"encoding"
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-asf/internal/binary"
	"github.com/robert-malhotra/go-asf/internal/guid"
)

// HeaderSize is the size of the identifier and size fields shared by every object.
const HeaderSize = guid.Size + 8

// Errors
var (
	ErrTruncated       = binary.ErrTruncated
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrInvalidSize     = errors.New("invalid object size")
	ErrDuplicateObject = errors.New("object already registered")
)

// Object is implemented by every ASF object.
type Object interface {
	// ID returns the object type identifier written in the header.
	ID() guid.GUID
	// Mandatory reports whether a container must hold at least one instance.
	Mandatory() bool
	// Multiple reports whether a container may hold more than one instance.
	Multiple() bool
	// MarshalBinary returns the object with its header. The size field is
	// computed from the encoded payload.
	encoding.BinaryMarshaler
}

// Header is the decoded object header.
type Header struct {
	ID   guid.GUID
	Size uint64
}

// DecodeHeader reads the 24-byte object header. The declared size is not
// checked against the bytes that follow.
func DecodeHeader(r *binary.Reader) (Header, error) {
	buf, err := r.ReadBytes(HeaderSize)
	if err != nil {
		return Header{}, fmt.Errorf("reading object header: %w", err)
	}

	id, err := guid.FromBytes(buf[:guid.Size])
	if err != nil {
		return Header{}, err
	}

	return Header{
		ID:   id,
		Size: r.ByteOrder().Uint64(buf[guid.Size:]),
	}, nil
}

// EncodeHeader returns the 24-byte header for an object of the given total size.
func EncodeHeader(id guid.GUID, size uint64) []byte {
	buf := make([]byte, 0, HeaderSize)
	buf = append(buf, binary.PutGUID(id)...)
	buf = append(buf, binary.Int64LE(int64(size))...)
	return buf
}

// BodySize returns the number of payload bytes declared by the header.
func (h Header) BodySize() (uint64, error) {
	if h.Size < HeaderSize {
		return 0, fmt.Errorf("%w: %d is smaller than the %d byte header", ErrInvalidSize, h.Size, HeaderSize)
	}
	return h.Size - HeaderSize, nil
}

// decodeAtomic runs fn on a copy of r and advances r only if fn succeeds.
func decodeAtomic[T any](r *binary.Reader, fn func(cr *binary.Reader) (T, error)) (T, error) {
	cr := r.At(r.Pos())
	v, err := fn(cr)
	if err != nil {
		var zero T
		return zero, err
	}
	r.Skip(cr.Pos() - r.Pos())
	return v, nil
}
