// Package object implements the ASF object framing protocol.
//
// Every ASF object starts with the same 24-byte header followed by a
// type-specific payload:
//
//	Offset  Size  Description
//	0       16    Object identifier (GUID)
//	16      8     Object size, little-endian, including these 24 bytes
//	24      var   Payload
//
// The identifier selects the concrete object type. The size is always
// derived when an object is written; it is never stored independently of
// the payload it describes.
//
// # Objects
//
// Concrete objects implement [Object]. They report their cardinality within
// a container through Mandatory and Multiple, and serialize themselves with
// MarshalBinary, which recomputes the size field from the encoded payload.
//
//   - [ErrorCorrection]: the Error Correction Object, an opaque scheme
//     identifier plus length-prefixed scheme data
//   - [Unknown]: any object whose identifier is not registered; the body is
//     kept verbatim so it can be written back unchanged
//
// # Usage
//
// Decode a single object whose identifier is already known:
//
//	r := binary.NewBytesReader(raw)
//	ec, err := object.DecodeErrorCorrection(r)
//
// Dispatch on the identifier with a registry:
//
//	obj, err := object.DefaultRegistry().Decode(r)
//
// Build and encode an object:
//
//	ec := object.NewErrorCorrection().
//		WithType(guid.AudioSpread).
//		WithData([]byte{0x01, 0x02})
//	raw, err := ec.MarshalBinary()
//
// # Errors
//
//   - [ErrTruncated]: the cursor ran out of bytes during a decode
//   - [ErrPayloadTooLarge]: data does not fit a 32-bit length prefix
//   - [ErrInvalidSize]: a declared size is smaller than the header
//   - [ErrDuplicateObject]: an identifier was registered twice
package object
