package orderkey

import "strings"

const (
	// Zero is the integer "a0", the key handed out when there are no neighbours.
	Zero = "a0"

	// Smallest is the lowest integer of the scheme. It is a valid integer
	// part but never a valid key: nothing could ever be inserted before it.
	Smallest = "A00000000000000000000000000"
)

// IntegerLength returns the length of an integer part from its head character.
func IntegerLength(head byte) (int, error) {
	switch {
	case head >= 'a' && head <= 'z':
		return int(head-'a') + 2, nil
	case head >= 'A' && head <= 'Z':
		return int('Z'-head) + 2, nil
	}
	return 0, invalidKey(string(head), "head must be in A-Z or a-z")
}

// ValidateInteger checks that i is a well-formed integer part.
func ValidateInteger(i string) error {
	if i == "" {
		return invalidKey(i, "empty integer part")
	}
	n, err := IntegerLength(i[0])
	if err != nil {
		return invalidKey(i, "invalid head %q", i[0])
	}
	if n != len(i) {
		return invalidKey(i, "head %q implies length %d, got %d", i[0], n, len(i))
	}
	if off := checkDigits(i); off >= 0 {
		return invalidKey(i, "invalid digit %q at offset %d", i[off], off)
	}
	return nil
}

// IncrementInteger returns the integer one above x.
//
// The second result is false when x is the largest integer the scheme can
// represent ("z" followed by 26 'z' digits); callers then extend the
// fraction part instead.
func IncrementInteger(x string) (string, bool, error) {
	if err := ValidateInteger(x); err != nil {
		return "", false, err
	}
	head, digs := x[0], []byte(x[1:])

	carry := true
	for i := len(digs) - 1; carry && i >= 0; i-- {
		d := digitIndex[digs[i]] + 1
		if d == base {
			digs[i] = minDigit
		} else {
			digs[i] = Digits[d]
			carry = false
		}
	}
	if !carry {
		return string(head) + string(digs), true, nil
	}

	switch head {
	case 'Z':
		return Zero, true, nil
	case 'z':
		return "", false, nil
	}
	h := head + 1
	if h > 'a' {
		digs = append(digs, minDigit)
	} else {
		digs = digs[:len(digs)-1]
	}
	return string(h) + string(digs), true, nil
}

// DecrementInteger returns the integer one below x.
//
// The second result is false when x is Smallest.
func DecrementInteger(x string) (string, bool, error) {
	if err := ValidateInteger(x); err != nil {
		return "", false, err
	}
	head, digs := x[0], []byte(x[1:])

	borrow := true
	for i := len(digs) - 1; borrow && i >= 0; i-- {
		d := digitIndex[digs[i]] - 1
		if d < 0 {
			digs[i] = maxDigit
		} else {
			digs[i] = Digits[d]
			borrow = false
		}
	}
	if !borrow {
		return string(head) + string(digs), true, nil
	}

	switch head {
	case 'a':
		return "Z" + string(maxDigit), true, nil
	case 'A':
		return "", false, nil
	}
	h := head - 1
	if h < 'Z' {
		digs = append(digs, maxDigit)
	} else {
		digs = digs[:len(digs)-1]
	}
	return string(h) + string(digs), true, nil
}

// IntegerPart returns the integer part of key.
func IntegerPart(key string) (string, error) {
	if key == "" {
		return "", invalidKey(key, "empty key")
	}
	n, err := IntegerLength(key[0])
	if err != nil {
		return "", invalidKey(key, "invalid head %q", key[0])
	}
	if n > len(key) {
		return "", invalidKey(key, "head %q implies integer length %d, key has %d", key[0], n, len(key))
	}
	return key[:n], nil
}

// split returns the integer and fraction parts of a validated key.
func split(key string) (string, string) {
	n, _ := IntegerLength(key[0])
	return key[:n], key[n:]
}

// Validate reports whether key is a well-formed order key.
//
// A key is rejected if its head is not a letter, if it is shorter than its
// head implies, if it contains bytes outside the alphabet, if its fraction
// part ends in '0', or if it equals Smallest.
func Validate(key string) error {
	if key == Smallest {
		return invalidKey(key, "reserved smallest integer")
	}
	i, err := IntegerPart(key)
	if err != nil {
		return err
	}
	if off := checkDigits(key); off >= 0 {
		return invalidKey(key, "invalid digit %q at offset %d", key[off], off)
	}
	if f := key[len(i):]; strings.HasSuffix(f, string(minDigit)) {
		return invalidKey(key, "fraction part has trailing zero")
	}
	return nil
}

// IsValid reports whether Validate accepts key.
func IsValid(key string) bool {
	return Validate(key) == nil
}

// Compare orders two keys. It is strings.Compare; valid keys need nothing more.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}
