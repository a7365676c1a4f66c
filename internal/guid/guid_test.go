package guid

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestParseWireLayout(t *testing.T) {
	g, err := Parse("75B22635-668E-11CF-A6D9-00AA0062CE6C")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := []byte{
		0x35, 0x26, 0xB2, 0x75, // little-endian
		0x8E, 0x66, // little-endian
		0xCF, 0x11, // little-endian
		0xA6, 0xD9, 0x00, 0xAA, 0x00, 0x62, 0xCE, 0x6C,
	}
	if !bytes.Equal(g[:], expected) {
		t.Errorf("wire bytes mismatch:\n got  % X\n want % X", g[:], expected)
	}
}

func TestStringRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"upper", "75B22630-668E-11CF-A6D9-00AA0062CE6C", "75B22630-668E-11CF-A6D9-00AA0062CE6C"},
		{"lower", "1806d474-cadf-4509-a4ba-9aabcb96aae8", "1806D474-CADF-4509-A4BA-9AABCB96AAE8"},
		{"braces", "{20FB5700-5B55-11CF-A8FD-00805F5C442B}", "20FB5700-5B55-11CF-A8FD-00805F5C442B"},
		{"zero", "00000000-0000-0000-0000-000000000000", "00000000-0000-0000-0000-000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := g.String(); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{
		"",
		"75B22630",
		"75B22630-668E-11CF-A6D9",
		"75B2263-0668E-11CF-A6D9-00AA0062CE6C",
		"75B22630-668E-11CF-A6D9-00AA0062CE6Z",
		"75B22630-668E-11CF-A6D9-00AA0062CE6C-00",
	}

	for _, in := range inputs {
		t.Run("input_"+in, func(t *testing.T) {
			_, err := Parse(in)
			if !errors.Is(err, ErrInvalidGUID) {
				t.Errorf("expected ErrInvalidGUID, got %v", err)
			}
		})
	}
}

func TestFromBytes(t *testing.T) {
	raw := ErrorCorrectionObject.Bytes()
	g, err := FromBytes(append(raw, 0xFF))
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	if g != ErrorCorrectionObject {
		t.Errorf("expected %s, got %s", ErrorCorrectionObject, g)
	}

	if _, err := FromBytes(raw[:15]); !errors.Is(err, ErrInvalidGUID) {
		t.Errorf("expected ErrInvalidGUID for short input, got %v", err)
	}
}

func TestBytesIsCopy(t *testing.T) {
	g := AudioSpread
	b := g.Bytes()
	b[0] ^= 0xFF
	if g != AudioSpread {
		t.Error("mutating Bytes() result changed the GUID")
	}
}

func TestIsZero(t *testing.T) {
	if !Zero.IsZero() {
		t.Error("expected Zero.IsZero() to be true")
	}
	if NoErrorCorrection.IsZero() {
		t.Error("expected NoErrorCorrection.IsZero() to be false")
	}
}

func TestTextMarshaling(t *testing.T) {
	type doc struct {
		ID GUID `json:"id"`
	}

	out, err := json.Marshal(doc{ID: PaddingObject})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `{"id":"1806D474-CADF-4509-A4BA-9AABCB96AAE8"}` {
		t.Errorf("unexpected JSON: %s", out)
	}

	var back doc
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back.ID != PaddingObject {
		t.Errorf("expected %s, got %s", PaddingObject, back.ID)
	}
}

func TestKnownIdentifiersDistinct(t *testing.T) {
	all := []GUID{
		HeaderObject, DataObject, SimpleIndexObject, IndexObject,
		FilePropertiesObject, StreamPropertiesObject, HeaderExtensionObject,
		CodecListObject, ContentDescriptionObject, ExtendedContentDescriptionObject,
		StreamBitratePropertiesObject, PaddingObject, ErrorCorrectionObject,
		NoErrorCorrection, AudioSpread,
	}

	seen := make(map[GUID]bool)
	for _, g := range all {
		if seen[g] {
			t.Errorf("duplicate identifier %s", g)
		}
		seen[g] = true
	}
}
