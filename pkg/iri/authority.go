package iri

import (
	"strings"
	"unicode/utf8"
)

// HostKind discriminates the three host forms of the iauthority grammar.
type HostKind int

const (
	HostRegName HostKind = iota
	HostIPv4
	HostIPLiteral
)

// Host is the parsed host component. Value holds the raw text: the
// registered name, the dotted quad, or the bracket contents of an IP
// literal (without the brackets). Octets is populated for HostIPv4.
type Host struct {
	Kind   HostKind
	Value  string
	Octets [4]byte
}

func (h Host) String() string {
	if h.Kind == HostIPLiteral {
		return "[" + h.Value + "]"
	}
	return h.Value
}

// Authority is the decomposed iauthority component.
type Authority struct {
	UserInfo    string
	HasUserInfo bool
	Host        Host
	Port        string
	HasPort     bool // an empty port ("host:") is syntactically valid
}

func (a *Authority) String() string {
	var sb strings.Builder
	if a.HasUserInfo {
		sb.WriteString(a.UserInfo)
		sb.WriteByte('@')
	}
	sb.WriteString(a.Host.String())
	if a.HasPort {
		sb.WriteByte(':')
		sb.WriteString(a.Port)
	}
	return sb.String()
}

// parseAuthority decomposes the authority text (everything between "//" and
// the next '/', '?', '#', or end of input). base is the offset of text
// within the full reference, so errors carry absolute offsets.
//
// Host alternatives are tried in grammar order: IP literal, IPv4, then the
// reg-name catch-all. A host made solely of digits and dots in exactly four
// groups is committed to the IPv4 alternative, so an out-of-range octet
// (256.0.0.1) is an invalid host rather than a registered name.
func parseAuthority(text string, base int) (*Authority, error) {
	a := &parser{input: text}
	out := &Authority{}

	// iuserinfo is only taken when terminated by '@'
	end := a.scanUserInfo()
	if end < len(text) && text[end] == '@' {
		out.UserInfo = text[:end]
		out.HasUserInfo = true
		a.pos = end + 1
	} else {
		a.pos = 0
	}

	if a.pos < len(text) && text[a.pos] == '[' {
		rb := strings.IndexByte(text[a.pos:], ']')
		if rb < 0 {
			return nil, a.errorf(ErrMalformedAuthority, base+a.pos, "missing ']' in IP literal")
		}
		inner := text[a.pos+1 : a.pos+rb]
		if !isIPvFuture(inner) && !isIPv6(inner) {
			return nil, a.errorf(ErrInvalidHost, base+a.pos+1, "invalid IP literal %q", inner)
		}
		out.Host = Host{Kind: HostIPLiteral, Value: inner}
		a.pos += rb + 1
	} else {
		start := a.pos
		a.scanRegName()
		hostText := text[start:a.pos]
		if isDottedQuadShape(hostText) {
			octets, ok := parseIPv4(hostText)
			if !ok {
				return nil, a.errorf(ErrInvalidHost, base+start, "invalid IPv4 address %q", hostText)
			}
			out.Host = Host{Kind: HostIPv4, Value: hostText, Octets: octets}
		} else {
			out.Host = Host{Kind: HostRegName, Value: hostText}
		}
	}

	if a.pos < len(text) && text[a.pos] == ':' {
		a.pos++
		start := a.pos
		for a.pos < len(text) && isDigit(rune(text[a.pos])) {
			a.pos++
		}
		out.Port = text[start:a.pos]
		out.HasPort = true
	}
	if a.pos != len(text) {
		return nil, a.errorf(ErrMalformedAuthority, base+a.pos, "unexpected character %q in authority", rest(text, a.pos))
	}
	return out, nil
}

// scanUserInfo returns the end of the longest iuserinfo run
// ( iunreserved | pct-encoded | sub-delims | ":" ) from the start of the
// input without moving the cursor.
func (p *parser) scanUserInfo() int {
	i := 0
	for i < len(p.input) {
		if p.input[i] == '%' {
			if i+2 < len(p.input) && isHexDigit(rune(p.input[i+1])) && isHexDigit(rune(p.input[i+2])) {
				i += 3
				continue
			}
			break
		}
		r, size := utf8.DecodeRuneInString(p.input[i:])
		if !isIUnreserved(r) && !isSubDelim(r) && r != ':' {
			break
		}
		i += size
	}
	return i
}

// scanRegName consumes *( iunreserved | pct-encoded | sub-delims ).
func (p *parser) scanRegName() {
	for p.pos < len(p.input) {
		if p.input[p.pos] == '%' {
			if !p.scanPctEncoded() {
				return
			}
			continue
		}
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !isIUnreserved(r) && !isSubDelim(r) {
			return
		}
		p.pos += size
	}
}

// isDottedQuadShape reports whether s is four non-empty dot-separated
// groups of decimal digits, the shape that commits to the IPv4 alternative.
func isDottedQuadShape(s string) bool {
	groups := 1
	digits := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '.':
			if digits == 0 {
				return false
			}
			groups++
			digits = 0
		case isDigit(rune(s[i])):
			digits++
		default:
			return false
		}
	}
	return groups == 4 && digits > 0
}

// parseIPv4 parses a dotted quad using the strict dec-octet rule: 0-255,
// no leading zeros. The same rule validates the ls32 tail of an IPv6
// address.
func parseIPv4(s string) ([4]byte, bool) {
	var octets [4]byte
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return octets, false
	}
	for i, part := range parts {
		v, ok := parseDecOctet(part)
		if !ok {
			return octets, false
		}
		octets[i] = v
	}
	return octets, true
}

// parseDecOctet matches DIGIT | %x31-39 DIGIT | "1" 2DIGIT | "2" %x30-34
// DIGIT | "25" %x30-35. The alternative ordering makes the rule unambiguous
// by construction; 256 and 01 match nothing.
func parseDecOctet(s string) (byte, bool) {
	if len(s) == 0 || len(s) > 3 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(rune(s[i])) {
			return 0, false
		}
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, false
	}
	v := 0
	for i := 0; i < len(s); i++ {
		v = v*10 + int(s[i]-'0')
	}
	if v > 255 {
		return 0, false
	}
	return byte(v), true
}

// isIPvFuture matches "v" 1*HEXDIG "." 1*( unreserved | sub-delims | ":" ).
func isIPvFuture(s string) bool {
	if len(s) < 4 || (s[0] != 'v' && s[0] != 'V') {
		return false
	}
	i := 1
	for i < len(s) && isHexDigit(rune(s[i])) {
		i++
	}
	if i == 1 || i >= len(s) || s[i] != '.' {
		return false
	}
	i++
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		r := rune(s[i])
		if !isUnreserved(r) && !isSubDelim(r) && r != ':' {
			return false
		}
	}
	return true
}

// isIPv6 validates an IPv6 address, covering every elision shape of the
// grammar: zero through seven groups before "::", the fully elided "::",
// and the unelided eight-group form, with an optional dotted-quad ls32
// tail. Validation is syntactic only.
func isIPv6(s string) bool {
	left := s
	right := ""
	elided := false
	if i := strings.Index(s, "::"); i >= 0 {
		elided = true
		left, right = s[:i], s[i+2:]
		if strings.Contains(right, "::") {
			return false
		}
	}
	// A dotted-quad tail only ever ends the address.
	ln, ok := countIPv6Groups(left, !elided)
	if !ok {
		return false
	}
	rn, ok := countIPv6Groups(right, true)
	if !ok {
		return false
	}
	if elided {
		return ln+rn <= 7
	}
	return ln == 8
}

// countIPv6Groups counts h16 groups in a colon-separated list; a trailing
// dotted quad counts as two groups when tailAllowed.
func countIPv6Groups(part string, tailAllowed bool) (int, bool) {
	if part == "" {
		return 0, true
	}
	groups := strings.Split(part, ":")
	n := 0
	for i, g := range groups {
		if g == "" {
			return 0, false
		}
		if i == len(groups)-1 && tailAllowed && strings.Contains(g, ".") {
			if _, ok := parseIPv4(g); !ok {
				return 0, false
			}
			n += 2
			continue
		}
		if !isH16(g) {
			return 0, false
		}
		n++
	}
	return n, true
}

// isH16 matches 1*4HEXDIG.
func isH16(s string) bool {
	if len(s) == 0 || len(s) > 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(rune(s[i])) {
			return false
		}
	}
	return true
}
