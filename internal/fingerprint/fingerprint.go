// Package fingerprint derives content identifiers for encoded objects.
package fingerprint

import (
	"encoding"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Bytes returns a CIDv1 using the raw multicodec and a sha2-256 multihash.
func Bytes(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// Of fingerprints the canonical encoding of obj. Objects that decode to
// the same fields share a fingerprint regardless of the size declared in
// their original header.
func Of(obj encoding.BinaryMarshaler) (cid.Cid, error) {
	raw, err := obj.MarshalBinary()
	if err != nil {
		return cid.Undef, err
	}
	return Bytes(raw)
}
