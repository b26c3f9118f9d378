package nquads

// Character classes of the N-Triples/N-Quads terminal productions. The
// Unicode portions are sorted inclusive ranges checked by binary search.

var pnCharsBaseRanges = [][2]rune{
	{0x00C0, 0x00D6},
	{0x00D8, 0x00F6},
	{0x00F8, 0x02FF},
	{0x0370, 0x037D},
	{0x037F, 0x1FFF},
	{0x200C, 0x200D},
	{0x2070, 0x218F},
	{0x2C00, 0x2FEF},
	{0x3001, 0xD7FF},
	{0xF900, 0xFDCF},
	{0xFDF0, 0xFFFD},
	{0x10000, 0xEFFFF},
}

func inRanges(r rune, ranges [][2]rune) bool {
	lo, hi := 0, len(ranges)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case r < ranges[mid][0]:
			hi = mid - 1
		case r > ranges[mid][1]:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

func isPNCharsBase(r rune) bool {
	if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' {
		return true
	}
	return inRanges(r, pnCharsBaseRanges)
}

// isPNCharsU covers PN_CHARS_U as this family of formats defines it: the
// base class plus '_' and ':'.
func isPNCharsU(r rune) bool {
	return r == '_' || r == ':' || isPNCharsBase(r)
}

func isPNChars(r rune) bool {
	if isPNCharsU(r) || r == '-' || r >= '0' && r <= '9' || r == 0xB7 {
		return true
	}
	return r >= 0x300 && r <= 0x36F || r >= 0x203F && r <= 0x2040
}

// isVarNameStart matches the first character of a variable name; unlike
// blank node labels, variable names never contain ':'.
func isVarNameStart(r rune) bool {
	return r == '_' || r >= '0' && r <= '9' || isPNCharsBase(r)
}

func isVarNameChar(r rune) bool {
	return isVarNameStart(r) || r == 0xB7 ||
		r >= 0x300 && r <= 0x36F || r >= 0x203F && r <= 0x2040
}

func isWS(b byte) bool {
	return b == ' ' || b == '\t'
}

func isHex(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func hexVal(b byte) rune {
	switch {
	case b >= '0' && b <= '9':
		return rune(b - '0')
	case b >= 'a' && b <= 'f':
		return rune(b-'a') + 10
	default:
		return rune(b-'A') + 10
	}
}
