package object

import (
	"bytes"
	"fmt"

	"github.com/robert-malhotra/go-asf/internal/binary"
	"github.com/robert-malhotra/go-asf/internal/guid"
)

// Unknown holds an object whose identifier has no registered decoder.
type Unknown struct {
	id   guid.GUID
	body []byte
}

// NewUnknown returns an object with the given identifier and raw body.
func NewUnknown(id guid.GUID, body []byte) Unknown {
	return Unknown{id: id, body: bytes.Clone(body)}
}

// DecodeUnknown reads an object header and the body it declares.
// On failure r is not advanced.
func DecodeUnknown(r *binary.Reader) (Unknown, error) {
	return decodeAtomic(r, func(cr *binary.Reader) (Unknown, error) {
		hdr, err := DecodeHeader(cr)
		if err != nil {
			return Unknown{}, err
		}

		n, err := hdr.BodySize()
		if err != nil {
			return Unknown{}, err
		}

		body, err := cr.ReadBytes(n)
		if err != nil {
			return Unknown{}, fmt.Errorf("reading body of object %s: %w", hdr.ID, err)
		}

		return Unknown{id: hdr.ID, body: body}, nil
	})
}

func (o Unknown) ID() guid.GUID   { return o.id }
func (o Unknown) Mandatory() bool { return false }
func (o Unknown) Multiple() bool  { return true }

// Body returns a copy of the raw payload.
func (o Unknown) Body() []byte {
	return bytes.Clone(o.body)
}

// MarshalBinary writes the header with a recomputed size followed by the body.
func (o Unknown) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, HeaderSize+len(o.body))
	out = append(out, EncodeHeader(o.id, uint64(HeaderSize+len(o.body)))...)
	return append(out, o.body...), nil
}

// String implements fmt.Stringer.
func (o Unknown) String() string {
	return fmt.Sprintf("Unknown{id=%s, body=%d bytes}", o.id, len(o.body))
}
