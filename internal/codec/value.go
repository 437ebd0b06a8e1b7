package codec

import "strconv"

// CanonicalValue returns the storable form of a raw value. A value that
// is exactly the canonical decimal form of an int64 (no leading zeros,
// no sign quirks, no whitespace) is kept in that form; everything else
// passes through verbatim. Either way the function is idempotent, so
// re-canonicalizing a stored value is a no-op.
func CanonicalValue(raw string) string {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return raw
	}
	if canonical := strconv.FormatInt(n, 10); canonical == raw {
		return canonical
	}
	// Parses as an integer but not in canonical form ("007", "+1");
	// stored verbatim like any other string.
	return raw
}
