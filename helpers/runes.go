package helpers

func IsBetween(val rune, first, last rune) bool {
	if val > last {
		return false
	}
	if val >= first {
		return true
	}
	return false
}

// IsAlnum is the ASCII-only letter/digit test used for synthesized literals,
// unicode letters and digits do not count.
func IsAlnum(r rune) bool {
	return IsBetween(r, 'A', 'Z') || IsBetween(r, 'a', 'z') || IsBetween(r, '0', '9')
}
