package object

import (
	"fmt"

	"github.com/robert-malhotra/go-asf/internal/binary"
	"github.com/robert-malhotra/go-asf/internal/guid"
)

// DecodeFunc decodes one object, header included, from r.
type DecodeFunc func(r *binary.Reader) (Object, error)

// Descriptor describes an object type known to a Registry.
type Descriptor struct {
	// ID is the header identifier that selects this type.
	ID guid.GUID

	// Name is a human readable name used in listings and errors.
	Name string

	// Decode constructs the object. Descriptors without a decoder only
	// name the identifier; such objects decode as Unknown.
	Decode DecodeFunc
}

// Registry maps object identifiers to decoders.
// It must be fully populated before it is used for decoding.
type Registry struct {
	entries map[guid.GUID]Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[guid.GUID]Descriptor)}
}

// DefaultRegistry returns a registry with every object type this package
// decodes, plus names for the other well-known top-level and header objects.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	for _, d := range defaultDescriptors() {
		// Table entries are distinct
		_ = reg.Register(d)
	}
	return reg
}

func defaultDescriptors() []Descriptor {
	return []Descriptor{
		{ID: ErrorCorrectionID, Name: "Error Correction", Decode: decodeErrorCorrectionObject},
		{ID: guid.HeaderObject, Name: "Header"},
		{ID: guid.DataObject, Name: "Data"},
		{ID: guid.SimpleIndexObject, Name: "Simple Index"},
		{ID: guid.IndexObject, Name: "Index"},
		{ID: guid.FilePropertiesObject, Name: "File Properties"},
		{ID: guid.StreamPropertiesObject, Name: "Stream Properties"},
		{ID: guid.HeaderExtensionObject, Name: "Header Extension"},
		{ID: guid.CodecListObject, Name: "Codec List"},
		{ID: guid.ContentDescriptionObject, Name: "Content Description"},
		{ID: guid.ExtendedContentDescriptionObject, Name: "Extended Content Description"},
		{ID: guid.StreamBitratePropertiesObject, Name: "Stream Bitrate Properties"},
		{ID: guid.PaddingObject, Name: "Padding"},
	}
}

func decodeErrorCorrectionObject(r *binary.Reader) (Object, error) {
	ec, err := DecodeErrorCorrection(r)
	if err != nil {
		return nil, err
	}
	return ec, nil
}

// Register adds a descriptor. Registering an identifier twice fails.
func (reg *Registry) Register(d Descriptor) error {
	if existing, ok := reg.entries[d.ID]; ok {
		return fmt.Errorf("%w: %s (%s)", ErrDuplicateObject, d.ID, existing.Name)
	}
	reg.entries[d.ID] = d
	return nil
}

// Lookup returns the descriptor registered for id.
func (reg *Registry) Lookup(id guid.GUID) (Descriptor, bool) {
	d, ok := reg.entries[id]
	return d, ok
}

// Name returns the registered name for id, or "Unknown".
func (reg *Registry) Name(id guid.GUID) string {
	if d, ok := reg.entries[id]; ok && d.Name != "" {
		return d.Name
	}
	return "Unknown"
}

// Len returns the number of registered identifiers.
func (reg *Registry) Len() int {
	return len(reg.entries)
}

// Decode peeks the object identifier and decodes the object with the
// registered decoder, or as Unknown when there is none.
func (reg *Registry) Decode(r *binary.Reader) (Object, error) {
	peek, err := r.Peek(guid.Size)
	if err != nil {
		return nil, fmt.Errorf("reading object header: %w", err)
	}

	id, err := guid.FromBytes(peek)
	if err != nil {
		return nil, err
	}

	d, ok := reg.entries[id]
	if !ok || d.Decode == nil {
		return DecodeUnknown(r)
	}

	obj, err := d.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s object: %w", reg.Name(id), err)
	}
	return obj, nil
}
