package object

import (
	"bytes"
	"fmt"
	"math"

	"github.com/robert-malhotra/go-asf/internal/binary"
	"github.com/robert-malhotra/go-asf/internal/guid"
)

// ErrorCorrectionID identifies the Error Correction Object.
var ErrorCorrectionID = guid.ErrorCorrectionObject

// MaxErrorCorrectionData is the largest data length the 32-bit prefix can carry.
const MaxErrorCorrectionData = math.MaxUint32

/*
Error Correction Object Layout:
Offset  Size  Description
0       16    Object ID (ErrorCorrectionID)
16      8     Object size (44 + data length)
24      16    Error correction type (GUID)
40      4     Error correction data length
44      var   Error correction data
*/

// ErrorCorrection defines the error correction method used in the content.
// The type identifier and data are opaque; their interpretation belongs to
// the error correction engine.
//
// ErrorCorrection is a value: WithType and WithData return modified copies.
type ErrorCorrection struct {
	typ     guid.GUID
	typeSet bool
	data    []byte
}

// NewErrorCorrection returns an object with no type and no data.
func NewErrorCorrection() ErrorCorrection {
	return ErrorCorrection{}
}

// DecodeErrorCorrection reads an Error Correction Object, header included.
// The header identifier is trusted to have been checked by the caller.
// On failure r is not advanced.
func DecodeErrorCorrection(r *binary.Reader) (ErrorCorrection, error) {
	return decodeAtomic(r, func(cr *binary.Reader) (ErrorCorrection, error) {
		if _, err := DecodeHeader(cr); err != nil {
			return ErrorCorrection{}, err
		}

		typ, err := cr.ReadGUID()
		if err != nil {
			return ErrorCorrection{}, fmt.Errorf("reading error correction type: %w", err)
		}

		dataLength, err := cr.ReadUint32()
		if err != nil {
			return ErrorCorrection{}, fmt.Errorf("reading error correction data length: %w", err)
		}

		data, err := cr.ReadBytes(uint64(dataLength))
		if err != nil {
			return ErrorCorrection{}, fmt.Errorf("reading error correction data: %w", err)
		}

		return ErrorCorrection{typ: typ, typeSet: true, data: data}, nil
	})
}

func (o ErrorCorrection) ID() guid.GUID   { return ErrorCorrectionID }
func (o ErrorCorrection) Mandatory() bool { return false }
func (o ErrorCorrection) Multiple() bool  { return false }

// Type returns the error correction type and whether it has been set.
func (o ErrorCorrection) Type() (guid.GUID, bool) {
	return o.typ, o.typeSet
}

// WithType returns a copy with the error correction type set.
func (o ErrorCorrection) WithType(typ guid.GUID) ErrorCorrection {
	o.typ = typ
	o.typeSet = true
	return o
}

// Data returns a copy of the scheme specific data.
func (o ErrorCorrection) Data() []byte {
	return bytes.Clone(o.data)
}

// WithData returns a copy holding a copy of data.
func (o ErrorCorrection) WithData(data []byte) ErrorCorrection {
	o.data = bytes.Clone(data)
	return o
}

// Populated reports whether both the type and data have been provided,
// either by decoding or through WithType and WithData.
func (o ErrorCorrection) Populated() bool {
	return o.typeSet && o.data != nil
}

// Equal reports whether both objects hold the same type and data.
func (o ErrorCorrection) Equal(other ErrorCorrection) bool {
	return o.typ == other.typ && o.typeSet == other.typeSet && bytes.Equal(o.data, other.data)
}

// SerializedSize returns the total encoded size, header included.
func (o ErrorCorrection) SerializedSize() (uint64, error) {
	if err := checkDataLength(uint64(len(o.data))); err != nil {
		return 0, err
	}
	return HeaderSize + guid.Size + 4 + uint64(len(o.data)), nil
}

// MarshalBinary encodes the object. An unset type is written as the zero GUID.
func (o ErrorCorrection) MarshalBinary() ([]byte, error) {
	total, err := o.SerializedSize()
	if err != nil {
		return nil, err
	}

	buf := binary.NewBuffer(int(total))
	w := binary.NewWriter(buf, binary.DefaultConfig())

	// Payload first, the header size is taken from what was written
	pw := w.At(HeaderSize)
	if err := pw.WriteGUID(o.typ); err != nil {
		return nil, err
	}
	if err := pw.WriteUint32(uint32(len(o.data))); err != nil {
		return nil, err
	}
	if err := pw.WriteBytes(o.data); err != nil {
		return nil, err
	}

	if err := w.WriteBytes(EncodeHeader(ErrorCorrectionID, uint64(pw.Pos()))); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String implements fmt.Stringer.
func (o ErrorCorrection) String() string {
	typ := "unset"
	if o.typeSet {
		typ = o.typ.String()
	}
	return fmt.Sprintf("ErrorCorrection{type=%s, data=%d bytes}", typ, len(o.data))
}

func checkDataLength(n uint64) error {
	if n > MaxErrorCorrectionData {
		return fmt.Errorf("%w: error correction data is %d bytes, limit is %d", ErrPayloadTooLarge, n, uint64(MaxErrorCorrectionData))
	}
	return nil
}
