// Package orderkey generates fractional-index order keys.
//
// An order key positions an item among its siblings. Keys compare with plain
// byte-wise string comparison, so callers sort by the key column and never
// need a custom comparator. Inserting or moving an item only ever assigns a
// new key to that item; neighbouring keys are never rewritten.
//
// KEY FORMAT:
//
// A key is an integer part followed by a fraction part, both written in the
// 62-digit alphabet 0-9A-Za-z (in that ordinal order).
//
//   - The integer part is self-describing: its head character encodes its
//     length. Heads 'a'..'z' give lengths 2..27, heads 'Z'..'A' give lengths
//     2..27 in the other direction. "a0" is zero.
//   - The fraction part is zero or more digits and never ends in '0'.
//
// Appending repeatedly grows the integer part ("a0", "a1", ... "az", "b00"),
// which keeps keys short. Inserting between two keys with the same integer
// part extends the fraction part.
//
// An absent bound is the empty string. The empty string is never a valid key.
//
// All functions are pure and safe for concurrent use.
package orderkey
