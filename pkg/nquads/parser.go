package nquads

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rdfline/rdfline/internal/intern"
	"github.com/rdfline/rdfline/pkg/iri"
	"github.com/rdfline/rdfline/pkg/rdf"
)

// Format selects between the triple and quad syntaxes. They differ only in
// whether an optional graph label may precede the statement terminator.
type Format int

const (
	// NTriples accepts subject predicate object '.' statements.
	NTriples Format = iota
	// NQuads additionally accepts an optional graph label before the '.'.
	NQuads
)

// Mode selects the term-kind policy applied after a token is recognized.
type Mode int

const (
	// Strict applies the W3C term positioning rules: IRIs must be absolute,
	// subjects are IRIs or blank nodes, predicates are IRIs, objects may
	// also be literals, and graph labels are IRIs or blank nodes.
	Strict Mode = iota
	// Generalized accepts any term kind at any position, relative IRIs,
	// and ?name variables.
	Generalized
)

// position names a term slot within a statement, for kind checking and
// error messages.
type position int

const (
	posSubject position = iota
	posPredicate
	posObject
	posGraph
)

func (p position) String() string {
	switch p {
	case posSubject:
		return "subject"
	case posPredicate:
		return "predicate"
	case posObject:
		return "object"
	default:
		return "graph label"
	}
}

// statementParser is a cursor over one logical line of input.
type statementParser struct {
	input  string
	pos    int
	line   int
	format Format
	mode   Mode
	pool   *intern.Pool
}

func (p *statementParser) errorf(kind ErrorKind, offset int, format string, args ...interface{}) error {
	return &ParseError{Kind: kind, Line: p.line, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

func (p *statementParser) skipWS() {
	for p.pos < len(p.input) && isWS(p.input[p.pos]) {
		p.pos++
	}
}

// parseStatement recognizes one full statement and requires that nothing
// but whitespace and an optional comment follow the terminating '.'.
func (p *statementParser) parseStatement() (*rdf.Quad, error) {
	p.skipWS()
	subject, err := p.parseTerm(posSubject)
	if err != nil {
		return nil, err
	}
	p.skipWS()
	predicate, err := p.parseTerm(posPredicate)
	if err != nil {
		return nil, err
	}
	p.skipWS()
	object, err := p.parseTerm(posObject)
	if err != nil {
		return nil, err
	}
	p.skipWS()

	var graph rdf.Term = rdf.NewDefaultGraph()
	if p.format == NQuads && p.pos < len(p.input) && p.input[p.pos] != '.' {
		graph, err = p.parseTerm(posGraph)
		if err != nil {
			return nil, err
		}
		p.skipWS()
	}

	if p.pos >= len(p.input) {
		return nil, p.errorf(ErrMissingTerminator, p.pos, "expected '.' at end of statement")
	}
	if p.input[p.pos] != '.' {
		return nil, p.errorf(ErrMissingTerminator, p.pos, "expected '.', found %q", p.input[p.pos])
	}
	p.pos++
	p.skipWS()
	if p.pos < len(p.input) && p.input[p.pos] != '#' {
		return nil, p.errorf(ErrMissingTerminator, p.pos, "unexpected content after '.'")
	}
	return rdf.NewQuad(subject, predicate, object, graph), nil
}

// parseTerm recognizes the token at the cursor and applies the positional
// kind check for the active mode.
func (p *statementParser) parseTerm(pos position) (rdf.Term, error) {
	if p.pos >= len(p.input) {
		return nil, p.errorf(ErrUnexpectedEndOfInput, p.pos, "expected %s", pos)
	}
	start := p.pos
	var (
		term     rdf.Term
		absolute bool
		err      error
	)
	switch p.input[p.pos] {
	case '<':
		term, absolute, err = p.parseIRIRef()
	case '_':
		term, err = p.parseBlankNode()
	case '"':
		term, err = p.parseLiteral()
	case '?':
		term, err = p.parseVariable()
	default:
		return nil, p.errorf(ErrUnexpectedTermKind, p.pos, "expected %s, found %q", pos, p.input[p.pos])
	}
	if err != nil {
		return nil, err
	}
	if p.mode == Generalized {
		return term, nil
	}
	if term.Type() == rdf.TermTypeNamedNode && !absolute {
		return nil, p.errorf(ErrUnexpectedTermKind, start, "relative IRI as %s", pos)
	}
	switch term.Type() {
	case rdf.TermTypeNamedNode:
		return term, nil
	case rdf.TermTypeBlankNode:
		if pos == posPredicate {
			return nil, p.errorf(ErrUnexpectedTermKind, start, "blank node as %s", pos)
		}
		return term, nil
	case rdf.TermTypeLiteral:
		if pos != posObject {
			return nil, p.errorf(ErrUnexpectedTermKind, start, "literal as %s", pos)
		}
		return term, nil
	default:
		return nil, p.errorf(ErrUnexpectedTermKind, start, "variable as %s", pos)
	}
}

// parseIRIRef recognizes IRIREF: '<' with UCHAR escapes decoded and the raw
// control and delimiter characters of the production rejected, then a full
// RFC 3987 parse of the decoded content. The second result reports whether
// the reference is absolute.
func (p *statementParser) parseIRIRef() (rdf.Term, bool, error) {
	start := p.pos
	p.pos++ // '<'
	var sb strings.Builder
	for {
		if p.pos >= len(p.input) {
			return nil, false, p.errorf(ErrUnterminatedIRIRef, start, "missing '>'")
		}
		c := p.input[p.pos]
		if c == '>' {
			p.pos++
			break
		}
		switch {
		case c == '\\':
			r, err := p.readUCHAR()
			if err != nil {
				return nil, false, err
			}
			sb.WriteRune(r)
		case c <= 0x20 || c == '<' || c == '"' || c == '{' || c == '}' || c == '|' || c == '^' || c == '`':
			return nil, false, p.errorf(ErrInvalidCodepoint, p.pos, "character %q not allowed in IRIREF", c)
		default:
			r, size := utf8.DecodeRuneInString(p.input[p.pos:])
			sb.WriteRune(r)
			p.pos += size
		}
	}
	text := sb.String()
	parsed, err := iri.Parse(text)
	if err != nil {
		return nil, false, &ParseError{
			Kind: ErrMalformedIRI, Line: p.line, Offset: start,
			Msg: fmt.Sprintf("invalid IRI %q", text), Err: err,
		}
	}
	if p.pool != nil {
		return p.pool.NamedNode(text), parsed.IsAbsolute(), nil
	}
	return rdf.NewNamedNode(text), parsed.IsAbsolute(), nil
}

// parseLiteral recognizes STRING_LITERAL_QUOTE with an optional LANGTAG or
// '^^' datatype suffix.
func (p *statementParser) parseLiteral() (rdf.Term, error) {
	start := p.pos
	p.pos++ // '"'
	var sb strings.Builder
	for {
		if p.pos >= len(p.input) {
			return nil, p.errorf(ErrUnterminatedString, start, "missing closing '\"'")
		}
		c := p.input[p.pos]
		if c == '"' {
			p.pos++
			break
		}
		switch c {
		case '\\':
			r, ok, err := p.readECHAR()
			if err != nil {
				return nil, err
			}
			if !ok {
				r, err = p.readUCHAR()
				if err != nil {
					return nil, err
				}
			}
			sb.WriteRune(r)
		case '\n', '\r':
			return nil, p.errorf(ErrInvalidCodepoint, p.pos, "raw line break in literal")
		default:
			r, size := utf8.DecodeRuneInString(p.input[p.pos:])
			sb.WriteRune(r)
			p.pos += size
		}
	}
	value := sb.String()

	if p.pos < len(p.input) && p.input[p.pos] == '@' {
		tag, err := p.parseLangTag()
		if err != nil {
			return nil, err
		}
		return rdf.NewLiteralWithLanguage(value, tag), nil
	}
	if strings.HasPrefix(p.input[p.pos:], "^^") {
		p.pos += 2
		if p.pos >= len(p.input) {
			return nil, p.errorf(ErrUnexpectedEndOfInput, p.pos, "expected datatype IRI after '^^'")
		}
		if p.input[p.pos] != '<' {
			return nil, p.errorf(ErrUnexpectedTermKind, p.pos, "expected datatype IRI after '^^', found %q", p.input[p.pos])
		}
		dt, absolute, err := p.parseIRIRef()
		if err != nil {
			return nil, err
		}
		if p.mode == Strict && !absolute {
			return nil, p.errorf(ErrUnexpectedTermKind, start, "relative IRI as datatype")
		}
		return rdf.NewLiteralWithDatatype(value, dt.(*rdf.NamedNode)), nil
	}
	return rdf.NewLiteral(value), nil
}

// readECHAR decodes the two-character string escapes. It reports ok=false
// without consuming anything when the cursor sits on a UCHAR instead.
func (p *statementParser) readECHAR() (rune, bool, error) {
	if p.pos+1 >= len(p.input) {
		return 0, false, p.errorf(ErrInvalidEscape, p.pos, "incomplete escape")
	}
	var r rune
	switch p.input[p.pos+1] {
	case 't':
		r = '\t'
	case 'b':
		r = '\b'
	case 'n':
		r = '\n'
	case 'r':
		r = '\r'
	case 'f':
		r = '\f'
	case '"':
		r = '"'
	case '\'':
		r = '\''
	case '\\':
		r = '\\'
	case 'u', 'U':
		return 0, false, nil
	default:
		return 0, false, p.errorf(ErrInvalidEscape, p.pos, `invalid escape '\%c'`, p.input[p.pos+1])
	}
	p.pos += 2
	return r, true, nil
}

// readUCHAR decodes \uXXXX or \UXXXXXXXX at the cursor. Surrogates and
// values beyond U+10FFFF are rejected.
func (p *statementParser) readUCHAR() (rune, error) {
	start := p.pos
	if p.pos+1 >= len(p.input) {
		return 0, p.errorf(ErrInvalidEscape, start, "incomplete escape")
	}
	var n int
	switch p.input[p.pos+1] {
	case 'u':
		n = 4
	case 'U':
		n = 8
	default:
		return 0, p.errorf(ErrInvalidEscape, start, `invalid escape '\%c'`, p.input[p.pos+1])
	}
	if p.pos+2+n > len(p.input) {
		return 0, p.errorf(ErrInvalidEscape, start, "truncated \\%c escape", p.input[p.pos+1])
	}
	// accumulate in 64 bits: eight hex digits can exceed the rune range
	var v int64
	for i := 0; i < n; i++ {
		c := p.input[p.pos+2+i]
		if !isHex(c) {
			return 0, p.errorf(ErrInvalidEscape, start, "non-hex digit %q in \\%c escape", c, p.input[p.pos+1])
		}
		v = v<<4 | int64(hexVal(c))
	}
	if v >= 0xD800 && v <= 0xDFFF || v > 0x10FFFF {
		return 0, p.errorf(ErrInvalidCodepoint, start, "escape names invalid codepoint U+%04X", v)
	}
	p.pos += 2 + n
	return rune(v), nil
}

// parseBlankNode recognizes BLANK_NODE_LABEL. Dots may appear inside the
// label but never end it, so a dot run is consumed only when a label
// character follows it; otherwise the dots are left for the terminator.
func (p *statementParser) parseBlankNode() (rdf.Term, error) {
	start := p.pos
	if !strings.HasPrefix(p.input[p.pos:], "_:") {
		return nil, p.errorf(ErrInvalidBlankNodeLabel, start, "expected '_:'")
	}
	p.pos += 2
	r, size := utf8.DecodeRuneInString(p.input[p.pos:])
	if size == 0 || !isPNCharsU(r) && !(r >= '0' && r <= '9') {
		return nil, p.errorf(ErrInvalidBlankNodeLabel, start, "invalid first label character")
	}
	labelStart := p.pos
	p.pos += size
	for p.pos < len(p.input) {
		if p.input[p.pos] == '.' {
			// consume the dot run only if the label continues after it
			j := p.pos
			for j < len(p.input) && p.input[j] == '.' {
				j++
			}
			next, n := utf8.DecodeRuneInString(p.input[j:])
			if n == 0 || !isPNChars(next) {
				break
			}
			p.pos = j + n
			continue
		}
		r, size = utf8.DecodeRuneInString(p.input[p.pos:])
		if !isPNChars(r) {
			break
		}
		p.pos += size
	}
	label := p.input[labelStart:p.pos]
	if p.pool != nil {
		return p.pool.BlankNode(label), nil
	}
	return rdf.NewBlankNode(label), nil
}

// parseLangTag recognizes LANGTAG: '@' 1*ALPHA *( '-' 1*(ALPHA|DIGIT) ).
func (p *statementParser) parseLangTag() (string, error) {
	start := p.pos
	p.pos++ // '@'
	tagStart := p.pos
	for p.pos < len(p.input) && isAlphaByte(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == tagStart {
		return "", p.errorf(ErrMalformedLangTag, start, "empty language tag")
	}
	for p.pos < len(p.input) && p.input[p.pos] == '-' {
		p.pos++
		subStart := p.pos
		for p.pos < len(p.input) && isAlnumByte(p.input[p.pos]) {
			p.pos++
		}
		if p.pos == subStart {
			return "", p.errorf(ErrMalformedLangTag, start, "empty language subtag")
		}
	}
	return p.input[tagStart:p.pos], nil
}

// parseVariable recognizes '?' followed by a variable name.
func (p *statementParser) parseVariable() (rdf.Term, error) {
	start := p.pos
	p.pos++ // '?'
	r, size := utf8.DecodeRuneInString(p.input[p.pos:])
	if size == 0 || !isVarNameStart(r) {
		return nil, p.errorf(ErrMalformedVariable, start, "invalid variable name")
	}
	nameStart := p.pos
	p.pos += size
	for p.pos < len(p.input) {
		r, size = utf8.DecodeRuneInString(p.input[p.pos:])
		if !isVarNameChar(r) {
			break
		}
		p.pos += size
	}
	return rdf.NewVariable(p.input[nameStart:p.pos]), nil
}

func isAlphaByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isAlnumByte(b byte) bool {
	return isAlphaByte(b) || b >= '0' && b <= '9'
}
