package asf

import (
	"errors"
	"fmt"
	"io"

	"github.com/robert-malhotra/go-asf/internal/binary"
	"github.com/robert-malhotra/go-asf/internal/object"
)

// Scanner reads consecutive objects from a byte source.
// A Scanner is not safe for concurrent use.
type Scanner struct {
	r      *binary.Reader
	opts   *scanOptions
	offset int64
	err    error
}

// NewScanner returns a scanner over the first size bytes of r.
func NewScanner(r io.ReaderAt, size int64, opts ...Option) *Scanner {
	o := defaultScanOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Scanner{
		r:    binary.NewReader(r, size, binary.DefaultConfig()),
		opts: o,
	}
}

// NewBytesScanner returns a scanner over raw.
func NewBytesScanner(raw []byte, opts ...Option) *Scanner {
	s := NewScanner(nil, 0, opts...)
	s.r = binary.NewBytesReader(raw)
	return s
}

// Offset returns the offset of the object the next call to Next decodes.
func (s *Scanner) Offset() int64 {
	return s.offset
}

// Next decodes the next object. It returns io.EOF when no bytes remain.
// After a decode error every later call returns the same error.
//
// The scanner continues at the end declared by each object's header, so
// trailing bytes a decoder did not consume are skipped.
func (s *Scanner) Next() (Object, error) {
	if s.err != nil {
		return nil, s.err
	}

	start := s.offset
	cur := s.r.At(start)
	if cur.Remaining() == 0 {
		s.err = io.EOF
		return nil, io.EOF
	}

	hdr, err := object.DecodeHeader(cur.At(start))
	if err != nil {
		return nil, s.fail(start, err)
	}
	if _, err := hdr.BodySize(); err != nil {
		return nil, s.fail(start, err)
	}
	if s.opts.maxObjectSize > 0 && hdr.Size > s.opts.maxObjectSize {
		return nil, s.fail(start, fmt.Errorf("%w: %d bytes, limit %d", ErrObjectTooLarge, hdr.Size, s.opts.maxObjectSize))
	}

	obj, err := s.opts.registry.Decode(cur)
	if err != nil {
		return nil, s.fail(start, err)
	}

	consumed := uint64(cur.Pos() - start)
	log := s.opts.logger.With().
		Int64("offset", start).
		Stringer("id", hdr.ID).
		Str("name", s.opts.registry.Name(hdr.ID)).
		Uint64("size", hdr.Size).
		Logger()

	if consumed != hdr.Size {
		if s.opts.strictSize {
			return nil, s.fail(start, fmt.Errorf("%w: declared %d, decoded %d", ErrSizeMismatch, hdr.Size, consumed))
		}
		log.Warn().Uint64("consumed", consumed).Msg("declared size differs from decoded size")
	}

	remaining := uint64(s.r.Size() - start)
	if hdr.Size > remaining {
		log.Warn().Uint64("remaining", remaining).Msg("object extends past end of input")
		s.offset = s.r.Size()
	} else {
		s.offset = start + int64(hdr.Size)
	}

	log.Debug().Msg("decoded object")
	return obj, nil
}

func (s *Scanner) fail(offset int64, err error) error {
	s.err = fmt.Errorf("object at offset %d: %w", offset, err)
	s.opts.logger.Debug().Err(err).Int64("offset", offset).Msg("object decode failed")
	return s.err
}

// ScanFunc is called for each object decoded by Walk.
// Return nil to continue, ErrStopWalk to stop without an error, or any
// other error to stop and return it.
type ScanFunc func(offset int64, obj Object) error

// ErrStopWalk can be returned from a ScanFunc to stop walking without an error.
var ErrStopWalk = errors.New("walk stopped")

// Walk calls fn for every remaining object.
func (s *Scanner) Walk(fn ScanFunc) error {
	for {
		offset := s.offset
		obj, err := s.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(offset, obj); err != nil {
			if errors.Is(err, ErrStopWalk) {
				return nil
			}
			return err
		}
	}
}

// ReadAll decodes every object in the first size bytes of r.
func ReadAll(r io.ReaderAt, size int64, opts ...Option) ([]Object, error) {
	var objects []Object
	err := NewScanner(r, size, opts...).Walk(func(_ int64, obj Object) error {
		objects = append(objects, obj)
		return nil
	})
	return objects, err
}
