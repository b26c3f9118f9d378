package iri

// Code point range tables for the RFC 3987 Unicode classes. Each table is a
// sorted list of disjoint inclusive ranges so membership is a binary search;
// the boundaries are reproduced verbatim from the grammar.

// ucschar, RFC 3987
var ucscharRanges = [][2]rune{
	{0x00A0, 0xD7FF},
	{0xF900, 0xFDCF},
	{0xFDF0, 0xFFEF},
	{0x10000, 0x1FFFD},
	{0x20000, 0x2FFFD},
	{0x30000, 0x3FFFD},
	{0x40000, 0x4FFFD},
	{0x50000, 0x5FFFD},
	{0x60000, 0x6FFFD},
	{0x70000, 0x7FFFD},
	{0x80000, 0x8FFFD},
	{0x90000, 0x9FFFD},
	{0xA0000, 0xAFFFD},
	{0xB0000, 0xBFFFD},
	{0xC0000, 0xCFFFD},
	{0xD0000, 0xDFFFD},
	{0xE1000, 0xEFFFD},
}

// iprivate, RFC 3987
var iprivateRanges = [][2]rune{
	{0xE000, 0xF8FF},
	{0xF0000, 0xFFFFD},
	{0x100000, 0x10FFFD},
}

func inRanges(r rune, ranges [][2]rune) bool {
	lo, hi := 0, len(ranges)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case r < ranges[mid][0]:
			hi = mid
		case r > ranges[mid][1]:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

func isUCSChar(r rune) bool {
	return inRanges(r, ucscharRanges)
}

func isIPrivate(r rune) bool {
	return inRanges(r, iprivateRanges)
}

func isAlpha(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// unreserved, RFC 3986
func isUnreserved(r rune) bool {
	return isAlpha(r) || isDigit(r) || r == '-' || r == '.' || r == '_' || r == '~'
}

// iunreserved = unreserved | ucschar
func isIUnreserved(r rune) bool {
	return isUnreserved(r) || isUCSChar(r)
}

// sub-delims, RFC 3986
func isSubDelim(r rune) bool {
	switch r {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

// ipchar = iunreserved | pct-encoded | sub-delims | ":" | "@"
// (pct-encoded is handled by the scanners, not here)
func isIPChar(r rune) bool {
	return isIUnreserved(r) || isSubDelim(r) || r == ':' || r == '@'
}

// scheme = ALPHA *( ALPHA | DIGIT | "+" | "-" | "." )
func isSchemeChar(r rune) bool {
	return isAlpha(r) || isDigit(r) || r == '+' || r == '-' || r == '.'
}
