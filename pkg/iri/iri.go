package iri

import (
	"strings"
	"unicode/utf8"
)

// IRI is the decomposed form of an RFC 3987 reference. A reference with a
// scheme matched the absolute `iri` production; one without matched
// `irelative-ref`. Components are kept exactly as written: percent-encoding
// is validated but never decoded here, and no normalization is applied.
type IRI struct {
	Scheme      string // empty for relative references
	Authority   *Authority
	Path        string
	Query       string
	HasQuery    bool // distinguishes "?" (empty query) from no query
	Fragment    string
	HasFragment bool
}

// IsAbsolute reports whether the reference carried a scheme.
func (i *IRI) IsAbsolute() bool {
	return i.Scheme != ""
}

// String reassembles the reference from its components. For any parsed
// input the result parses back to an equal decomposition.
func (i *IRI) String() string {
	var sb strings.Builder
	if i.Scheme != "" {
		sb.WriteString(i.Scheme)
		sb.WriteByte(':')
	}
	if i.Authority != nil {
		sb.WriteString("//")
		sb.WriteString(i.Authority.String())
	}
	sb.WriteString(i.Path)
	if i.HasQuery {
		sb.WriteByte('?')
		sb.WriteString(i.Query)
	}
	if i.HasFragment {
		sb.WriteByte('#')
		sb.WriteString(i.Fragment)
	}
	return sb.String()
}

// Parse recognizes input as an RFC 3987 iri or irelative-ref and returns its
// decomposition. The whole input must be consumed; partial matches fail.
//
// The absolute form is tried first: a scheme prefix immediately followed by
// ':' commits to `iri`, anything else falls back to `irelative-ref`. Within
// the hierarchical part the alternatives are tried in grammar order
// (authority, absolute path, rootless/noscheme path, empty path), with the
// empty path guarded by lookahead so it never masks a non-empty one.
//
// Percent-encoded octets are checked for hex-digit syntax only; whether they
// decode to well-formed UTF-8 is left to the resolution/normalization layer.
func Parse(input string) (*IRI, error) {
	p := &parser{input: input}
	out := &IRI{}

	if end, ok := p.scanScheme(); ok {
		out.Scheme = input[:end]
		p.pos = end + 1 // skip ':'
	}
	if err := p.parseHierPart(out, out.Scheme != ""); err != nil {
		return nil, err
	}
	if p.pos < len(input) && input[p.pos] == '?' {
		p.pos++
		out.Query = p.scanQuery()
		out.HasQuery = true
	}
	if p.pos < len(input) && input[p.pos] == '#' {
		p.pos++
		out.Fragment = p.scanFragment()
		out.HasFragment = true
	}
	if p.pos != len(input) {
		return nil, p.errorf(ErrMalformedIRI, p.pos, "unexpected character %q", rest(input, p.pos))
	}
	return out, nil
}

type parser struct {
	input string
	pos   int
}

// scanScheme matches ALPHA *( ALPHA | DIGIT | "+" | "-" | "." ) immediately
// followed by ':' and returns the scheme end offset. It consumes nothing;
// the caller commits by moving past the ':'.
func (p *parser) scanScheme() (int, bool) {
	if len(p.input) == 0 || !isAlpha(rune(p.input[0])) {
		return 0, false
	}
	for i := 1; i < len(p.input); i++ {
		c := rune(p.input[i])
		if c == ':' {
			return i, true
		}
		if !isSchemeChar(c) {
			return 0, false
		}
	}
	return 0, false
}

// parseHierPart parses ihier-part (absolute) or irelative-part (relative).
// The two differ only in the third alternative: ipath_rootless permits ':'
// in the first segment, ipath_noscheme does not.
func (p *parser) parseHierPart(out *IRI, absolute bool) error {
	if strings.HasPrefix(p.input[p.pos:], "//") {
		p.pos += 2
		end := p.pos
		for end < len(p.input) {
			c := p.input[end]
			if c == '/' || c == '?' || c == '#' {
				break
			}
			end++
		}
		auth, err := parseAuthority(p.input[p.pos:end], p.pos)
		if err != nil {
			return err
		}
		out.Authority = auth
		p.pos = end
		out.Path = p.scanPathAbempty()
		return nil
	}

	if p.pos < len(p.input) && p.input[p.pos] == '/' {
		// ipath_absolute: "/" [ isegment-nz *( "/" isegment ) ]
		start := p.pos
		p.pos++
		if p.scanSegment(true) != "" {
			for p.pos < len(p.input) && p.input[p.pos] == '/' {
				p.pos++
				p.scanSegment(true)
			}
		}
		out.Path = p.input[start:p.pos]
		return nil
	}

	// ipath_rootless / ipath_noscheme: a non-empty first segment
	start := p.pos
	if p.scanSegment(absolute) == "" {
		// ipath_empty: zero characters, valid only before '?', '#', or EOI
		if p.pos < len(p.input) {
			c := p.input[p.pos]
			if c != '?' && c != '#' {
				return p.errorf(ErrMalformedIRI, p.pos, "unexpected character %q", rest(p.input, p.pos))
			}
		}
		out.Path = ""
		return nil
	}
	for p.pos < len(p.input) && p.input[p.pos] == '/' {
		p.pos++
		p.scanSegment(true)
	}
	out.Path = p.input[start:p.pos]
	return nil
}

// scanPathAbempty matches *( "/" isegment ).
func (p *parser) scanPathAbempty() string {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] == '/' {
		p.pos++
		p.scanSegment(true)
	}
	return p.input[start:p.pos]
}

// scanSegment consumes the longest run of ipchar / pct-encoded. When
// allowColon is false the run additionally excludes ':' (isegment-nz-nc).
func (p *parser) scanSegment(allowColon bool) string {
	start := p.pos
	for p.pos < len(p.input) {
		if p.input[p.pos] == '%' {
			if !p.scanPctEncoded() {
				break
			}
			continue
		}
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if r == ':' && !allowColon {
			break
		}
		if !isIPChar(r) {
			break
		}
		p.pos += size
	}
	return p.input[start:p.pos]
}

// scanPctEncoded consumes "%" HEXDIG HEXDIG at the cursor, or nothing.
func (p *parser) scanPctEncoded() bool {
	if p.pos+2 < len(p.input) &&
		isHexDigit(rune(p.input[p.pos+1])) && isHexDigit(rune(p.input[p.pos+2])) {
		p.pos += 3
		return true
	}
	return false
}

// iquery = *( ipchar | iprivate | "/" | "?" )
func (p *parser) scanQuery() string {
	start := p.pos
	for p.pos < len(p.input) {
		if p.input[p.pos] == '%' {
			if !p.scanPctEncoded() {
				break
			}
			continue
		}
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !isIPChar(r) && !isIPrivate(r) && r != '/' && r != '?' {
			break
		}
		p.pos += size
	}
	return p.input[start:p.pos]
}

// ifragment = *( ipchar | "/" | "?" )
func (p *parser) scanFragment() string {
	start := p.pos
	for p.pos < len(p.input) {
		if p.input[p.pos] == '%' {
			if !p.scanPctEncoded() {
				break
			}
			continue
		}
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !isIPChar(r) && r != '/' && r != '?' {
			break
		}
		p.pos += size
	}
	return p.input[start:p.pos]
}

// rest returns a short excerpt of input starting at off, for error messages.
func rest(input string, off int) string {
	if off >= len(input) {
		return ""
	}
	end := off + 8
	if end > len(input) {
		end = len(input)
	}
	return input[off:end]
}
