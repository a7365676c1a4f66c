// Package guid implements the 16-byte identifiers used by ASF objects.
//
// ASF stores GUIDs in the Microsoft layout: the first three groups of the
// text form are little-endian on the wire, the last two are stored as-is.
package guid

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Size is the wire size of a GUID in bytes.
const Size = 16

// ErrInvalidGUID is returned when a GUID cannot be parsed.
var ErrInvalidGUID = errors.New("invalid GUID")

// GUID is a 16-byte identifier in wire order.
type GUID [Size]byte

// Zero is the all-zero GUID.
var Zero GUID

// FromBytes copies the first 16 bytes of b into a GUID.
func FromBytes(b []byte) (GUID, error) {
	var g GUID
	if len(b) < Size {
		return g, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidGUID, Size, len(b))
	}
	copy(g[:], b[:Size])
	return g, nil
}

// Parse parses the registry text form, with or without braces.
func Parse(s string) (GUID, error) {
	var g GUID

	s = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "{"), "}")
	parts := strings.Split(s, "-")
	if len(parts) != 5 {
		return g, fmt.Errorf("%w: %q", ErrInvalidGUID, s)
	}

	widths := [5]int{8, 4, 4, 4, 12}
	raw := make([][]byte, 5)
	for i, p := range parts {
		if len(p) != widths[i] {
			return g, fmt.Errorf("%w: group %d of %q", ErrInvalidGUID, i+1, s)
		}
		b, err := hex.DecodeString(p)
		if err != nil {
			return g, fmt.Errorf("%w: %q", ErrInvalidGUID, s)
		}
		raw[i] = b
	}

	// First three groups are little-endian on the wire
	binary.LittleEndian.PutUint32(g[0:4], binary.BigEndian.Uint32(raw[0]))
	binary.LittleEndian.PutUint16(g[4:6], binary.BigEndian.Uint16(raw[1]))
	binary.LittleEndian.PutUint16(g[6:8], binary.BigEndian.Uint16(raw[2]))
	copy(g[8:10], raw[3])
	copy(g[10:16], raw[4])
	return g, nil
}

// MustParse is like Parse but panics on malformed input.
// It is meant for package-level identifier tables.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// String returns the upper-case registry form.
func (g GUID) String() string {
	return fmt.Sprintf("%08X-%04X-%04X-%X-%X",
		binary.LittleEndian.Uint32(g[0:4]),
		binary.LittleEndian.Uint16(g[4:6]),
		binary.LittleEndian.Uint16(g[6:8]),
		g[8:10],
		g[10:16],
	)
}

// Bytes returns a copy of the wire bytes.
func (g GUID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, g[:])
	return b
}

// IsZero reports whether every byte is zero.
func (g GUID) IsZero() bool {
	return g == Zero
}

// MarshalText implements encoding.TextMarshaler.
func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GUID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
