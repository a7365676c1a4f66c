package asf

import (
	"errors"

	"github.com/robert-malhotra/go-asf/internal/guid"
	"github.com/robert-malhotra/go-asf/internal/object"
)

// Common errors
var (
	ErrTruncated       = object.ErrTruncated
	ErrPayloadTooLarge = object.ErrPayloadTooLarge
	ErrInvalidSize     = object.ErrInvalidSize
	ErrDuplicateObject = object.ErrDuplicateObject
	ErrInvalidGUID     = guid.ErrInvalidGUID
	ErrSizeMismatch    = errors.New("declared object size does not match decoded size")
	ErrObjectTooLarge  = errors.New("object exceeds size limit")
)
