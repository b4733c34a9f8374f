package stamp

import "errors"

// Error kinds surfaced by the annotation pipeline. All errors returned from
// this package wrap exactly one of these sentinels; match with errors.Is.
// Every kind is fatal: nothing is written to the destination path once any
// of them occurs.
var (
	// ErrInputNotFound reports a missing source file.
	ErrInputNotFound = errors.New("input PDF does not exist")

	// ErrInvalidConfiguration reports an inconsistent numbering scheme,
	// detected before any page is touched.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrTemplate reports a label template referencing an unrecognized
	// placeholder name.
	ErrTemplate = errors.New("invalid label template")

	// ErrInvalidGeometry reports a page with non-positive or non-finite
	// dimensions.
	ErrInvalidGeometry = errors.New("invalid page geometry")

	// ErrCodec reports a failure of the underlying PDF read/write
	// capability, wrapped with the file path it occurred on.
	ErrCodec = errors.New("PDF codec failure")
)
