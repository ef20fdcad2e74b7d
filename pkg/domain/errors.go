package domain

import "errors"

// ErrInvalidDefinition is returned when a raw flow definition lacks a usable
// states collection.
var ErrInvalidDefinition = errors.New("invalid flow definition")

// ErrDocumentNotFound is returned when the target document for a section
// update does not exist.
var ErrDocumentNotFound = errors.New("document not found")

// ErrMalformedSource is returned when the friendly-name source cannot be
// parsed as structured data.
var ErrMalformedSource = errors.New("malformed friendly-name source")
