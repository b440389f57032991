package orderkey

import "strings"

// Midpoint returns the shortest fraction strictly between a and b.
//
// An empty b means no upper bound. a must sort before b and neither may end
// in '0'. The result never ends in '0' either.
func Midpoint(a, b string) (string, error) {
	if b != "" && a >= b {
		return "", orderViolation(a, b)
	}
	for _, s := range []string{a, b} {
		if strings.HasSuffix(s, string(minDigit)) {
			return "", invalidKey(s, "fraction part has trailing zero")
		}
		if off := checkDigits(s); off >= 0 {
			return "", invalidKey(s, "invalid digit %q at offset %d", s[off], off)
		}
	}
	return midpoint(a, b), nil
}

// midpoint assumes a < b (or b unbounded) and no trailing zeros.
func midpoint(a, b string) string {
	if b != "" {
		// a is padded with zero digits while looking for a common prefix,
		// which always ends before b does.
		n := 0
		for digitAt(a, n) == b[n] {
			n++
		}
		if n > 0 {
			return b[:n] + midpoint(tail(a, n), b[n:])
		}
	}

	digitA := 0
	if a != "" {
		digitA = digitIndex[a[0]]
	}
	digitB := base
	if b != "" {
		digitB = digitIndex[b[0]]
	}

	if digitB-digitA > 1 {
		// round half up
		return string(Digits[(digitA+digitB+1)/2])
	}
	if len(b) > 1 {
		return b[:1]
	}
	return string(Digits[digitA]) + midpoint(tail(a, 1), "")
}
