package iri

import "fmt"

// ErrorKind is a programmatic code identifying the class of parse failure.
type ErrorKind string

const (
	// ErrMalformedIRI indicates the input matches neither the iri nor the
	// irelative-ref production, or has trailing characters after them.
	ErrMalformedIRI ErrorKind = "MALFORMED_IRI"
	// ErrMalformedAuthority indicates the iauthority component could not be
	// decomposed into userinfo, host, and port.
	ErrMalformedAuthority ErrorKind = "MALFORMED_AUTHORITY"
	// ErrInvalidHost indicates the host is a malformed IP literal or a
	// dotted-quad with an out-of-range octet.
	ErrInvalidHost ErrorKind = "INVALID_HOST"
)

// ParseError describes a failed IRI parse with the byte offset at which the
// failing alternative gave up.
type ParseError struct {
	Kind   ErrorKind
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("iri: %s at offset %d", e.Msg, e.Offset)
}

func (p *parser) errorf(kind ErrorKind, offset int, format string, args ...interface{}) error {
	return &ParseError{Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
