package orderkey

import "slices"

// KeyBetween returns a key strictly between a and b.
//
// Either bound may be empty, meaning no bound on that side. With both bounds
// empty the result is Zero. Among the keys between the bounds it prefers the
// shortest: appending after a key increments its integer part rather than
// extending its fraction.
func KeyBetween(a, b string) (string, error) {
	if a != "" {
		if err := Validate(a); err != nil {
			return "", err
		}
	}
	if b != "" {
		if err := Validate(b); err != nil {
			return "", err
		}
	}
	if a != "" && b != "" && a >= b {
		return "", orderViolation(a, b)
	}

	switch {
	case a == "" && b == "":
		return Zero, nil
	case a == "":
		return keyBefore(b)
	case b == "":
		return keyAfter(a)
	}

	ia, fa := split(a)
	ib, fb := split(b)
	if ia == ib {
		return ia + midpoint(fa, fb), nil
	}
	i, ok, err := IncrementInteger(ia)
	if err != nil {
		return "", err
	}
	// ia < ib, so ia is not the largest integer and ok holds.
	if ok && i < b {
		return i, nil
	}
	return ia + midpoint(fa, ""), nil
}

func keyBefore(b string) (string, error) {
	ib, fb := split(b)
	if ib == Smallest {
		return ib + midpoint("", fb), nil
	}
	if ib < b {
		return ib, nil
	}
	d, ok, err := DecrementInteger(ib)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", invalidKey(b, "no integer below %q", ib)
	}
	if d == Smallest {
		// Smallest is reserved; step into its fraction space instead.
		return d + midpoint("", ""), nil
	}
	return d, nil
}

func keyAfter(a string) (string, error) {
	ia, fa := split(a)
	i, ok, err := IncrementInteger(ia)
	if err != nil {
		return "", err
	}
	if !ok {
		return ia + midpoint(fa, ""), nil
	}
	return i, nil
}

// NKeysBetween returns n ascending keys strictly between a and b.
//
// Bounds follow KeyBetween. With both bounds present the range is split
// recursively around a pivot, so key length grows with log(n) rather than n.
// With one bound open, keys are stepped outward from the closed bound, which
// keeps them as short as KeyBetween would.
func NKeysBetween(a, b string, n int) ([]string, error) {
	if n < 0 {
		return nil, &KeyError{Code: CodeInvalidArgument, Message: "n must not be negative"}
	}
	switch n {
	case 0:
		// Still validate so bad bounds never pass silently.
		if _, err := KeyBetween(a, b); err != nil {
			return nil, err
		}
		return []string{}, nil
	case 1:
		c, err := KeyBetween(a, b)
		if err != nil {
			return nil, err
		}
		return []string{c}, nil
	}

	if b == "" {
		return stepKeys(a, n, func(c string) (string, error) { return KeyBetween(c, "") })
	}
	if a == "" {
		keys, err := stepKeys(b, n, func(c string) (string, error) { return KeyBetween("", c) })
		if err != nil {
			return nil, err
		}
		// Generated walking downward from b.
		slices.Reverse(keys)
		return keys, nil
	}

	mid := n / 2
	c, err := KeyBetween(a, b)
	if err != nil {
		return nil, err
	}
	lo, err := NKeysBetween(a, c, mid)
	if err != nil {
		return nil, err
	}
	hi, err := NKeysBetween(c, b, n-mid-1)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, n)
	keys = append(keys, lo...)
	keys = append(keys, c)
	return append(keys, hi...), nil
}

// stepKeys applies next n times starting from bound, collecting each result.
func stepKeys(bound string, n int, next func(string) (string, error)) ([]string, error) {
	keys := make([]string, 0, n)
	c := bound
	for i := 0; i < n; i++ {
		k, err := next(c)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
		c = k
	}
	return keys, nil
}
