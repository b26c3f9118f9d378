package nquads

import "fmt"

// ErrorKind is a programmatic code identifying the class of parse failure.
type ErrorKind string

const (
	// ErrMalformedIRI indicates an IRIREF whose content is not a valid
	// RFC 3987 reference.
	ErrMalformedIRI ErrorKind = "MALFORMED_IRI"
	// ErrUnterminatedIRIRef indicates an IRIREF with no closing '>'.
	ErrUnterminatedIRIRef ErrorKind = "UNTERMINATED_IRIREF"
	// ErrUnterminatedString indicates a literal with no closing '"'.
	ErrUnterminatedString ErrorKind = "UNTERMINATED_STRING"
	// ErrInvalidEscape indicates a '\' introducing neither an ECHAR nor a
	// UCHAR, or a UCHAR with too few hex digits.
	ErrInvalidEscape ErrorKind = "INVALID_ESCAPE"
	// ErrInvalidCodepoint indicates a UCHAR naming a surrogate or a value
	// beyond U+10FFFF, or a raw character a production forbids.
	ErrInvalidCodepoint ErrorKind = "INVALID_CODEPOINT"
	// ErrInvalidBlankNodeLabel indicates a malformed BLANK_NODE_LABEL.
	ErrInvalidBlankNodeLabel ErrorKind = "INVALID_BLANK_NODE_LABEL"
	// ErrMalformedLangTag indicates a malformed LANGTAG.
	ErrMalformedLangTag ErrorKind = "MALFORMED_LANGTAG"
	// ErrMalformedVariable indicates a '?' followed by an invalid name.
	ErrMalformedVariable ErrorKind = "MALFORMED_VARIABLE"
	// ErrMissingTerminator indicates a statement without its final '.'.
	ErrMissingTerminator ErrorKind = "MISSING_TERMINATOR"
	// ErrUnexpectedTermKind indicates a well-formed term that is not
	// permitted at its position under the active parsing mode.
	ErrUnexpectedTermKind ErrorKind = "UNEXPECTED_TERM_KIND"
	// ErrUnexpectedEndOfInput indicates a statement cut short.
	ErrUnexpectedEndOfInput ErrorKind = "UNEXPECTED_END_OF_INPUT"
)

// ParseError describes a failed statement parse. Line is 1-based and refers
// to the physical line of the document; Offset is the 0-based byte offset
// within that line.
type ParseError struct {
	Kind   ErrorKind
	Line   int
	Offset int
	Msg    string
	Err    error // underlying cause, if any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("nquads: line %d, offset %d: %s", e.Line, e.Offset, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
