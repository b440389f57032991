package orderkey

// Digits is the key alphabet in ordinal order.
const Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	base = len(Digits)

	minDigit byte = '0'
	maxDigit byte = 'z'
)

// digitIndex maps a byte to its position in Digits, or -1.
var digitIndex = func() [256]int {
	var t [256]int
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < base; i++ {
		t[Digits[i]] = i
	}
	return t
}()

// isDigit reports whether c belongs to the alphabet.
func isDigit(c byte) bool {
	return digitIndex[c] >= 0
}

// digitAt returns s[i], or the zero digit past the end of s.
func digitAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return minDigit
}

// tail returns s[i:], or "" when i is past the end of s.
func tail(s string, i int) string {
	if i >= len(s) {
		return ""
	}
	return s[i:]
}

// checkDigits returns the offset of the first byte outside the alphabet, or -1.
func checkDigits(s string) int {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return i
		}
	}
	return -1
}
