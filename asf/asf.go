// Package asf reads and writes the objects of an ASF container.
//
// Every ASF object starts with a 16-byte identifier and an 8-byte size
// covering the whole object. The package decodes single objects from a
// byte slice, re-encodes them with a recomputed size, and scans a sequence
// of objects from an io.ReaderAt.
//
// Decoding a single object:
//
//	obj, err := asf.Decode(raw)
//	if ec, ok := obj.(asf.ErrorCorrection); ok {
//		typ, _ := ec.Type()
//		fmt.Println(typ, len(ec.Data()))
//	}
//
// Building one:
//
//	ec := asf.NewErrorCorrection().WithType(asf.AudioSpread).WithData(data)
//	raw, err := asf.Encode(ec)
//
// Scanning a stream of objects:
//
//	s := asf.NewScanner(f, size, asf.WithLogger(logger))
//	for {
//		obj, err := s.Next()
//		if err == io.EOF {
//			break
//		}
//		...
//	}
package asf

import (
	"github.com/robert-malhotra/go-asf/internal/binary"
	"github.com/robert-malhotra/go-asf/internal/guid"
	"github.com/robert-malhotra/go-asf/internal/object"
)

type (
	// GUID is a 16-byte ASF identifier in wire order.
	GUID = guid.GUID
	// Object is implemented by every ASF object.
	Object = object.Object
	// Header is a decoded 24-byte object header.
	Header = object.Header
	// ErrorCorrection is the Error Correction Object.
	ErrorCorrection = object.ErrorCorrection
	// Unknown is an object without a registered decoder.
	Unknown = object.Unknown
	// Registry maps object identifiers to decoders and names.
	Registry = object.Registry
	// Descriptor is a Registry entry.
	Descriptor = object.Descriptor
)

// HeaderSize is the size of the header shared by every object.
const HeaderSize = object.HeaderSize

// Well-known identifiers.
var (
	ErrorCorrectionID = object.ErrorCorrectionID
	NoErrorCorrection = guid.NoErrorCorrection
	AudioSpread       = guid.AudioSpread
)

// ParseGUID parses the registry text form of a GUID.
func ParseGUID(s string) (GUID, error) {
	return guid.Parse(s)
}

// NewErrorCorrection returns an Error Correction Object with no type and no data.
func NewErrorCorrection() ErrorCorrection {
	return object.NewErrorCorrection()
}

// NewUnknown returns an object with the given identifier and raw body.
func NewUnknown(id GUID, body []byte) Unknown {
	return object.NewUnknown(id, body)
}

// DefaultRegistry returns a registry of every object type the package decodes.
func DefaultRegistry() *Registry {
	return object.DefaultRegistry()
}

// Decode decodes the first object in raw using the default registry.
// Bytes after the object are ignored.
func Decode(raw []byte) (Object, error) {
	return object.DefaultRegistry().Decode(binary.NewBytesReader(raw))
}

// DecodeHeader decodes the 24-byte header at the start of raw.
func DecodeHeader(raw []byte) (Header, error) {
	return object.DecodeHeader(binary.NewBytesReader(raw))
}

// DecodeErrorCorrection decodes an Error Correction Object from the start of raw.
func DecodeErrorCorrection(raw []byte) (ErrorCorrection, error) {
	return object.DecodeErrorCorrection(binary.NewBytesReader(raw))
}

// Encode serializes obj with its header.
func Encode(obj Object) ([]byte, error) {
	return obj.MarshalBinary()
}

// EncodeHeader returns the 24-byte header for an object of the given total size.
func EncodeHeader(id GUID, size uint64) []byte {
	return object.EncodeHeader(id, size)
}
