// Package codec encodes and decodes state labels. A state label packs one
// key-value pair into a single label name, prefix and separator supplied
// by the caller. All functions are pure; no I/O happens here.
package codec

import "strings"

// Parse decodes a label name into its key and value under the given
// prefix and separator. The reported ok is false when the name is not a
// state label: wrong prefix, no separator after the prefix, or an empty
// key portion.
//
// Only the first separator after the prefix delimits key from value, so
// the value may itself contain the separator (a URL with "::" survives
// intact). Keys containing the separator cannot be represented; Format
// does not escape and Parse would stop at the first occurrence.
func Parse(name, prefix, separator string) (key, value string, ok bool) {
	expected := ""
	if prefix != "" {
		expected = prefix + separator
	}
	if !strings.HasPrefix(name, expected) {
		return "", "", false
	}

	rest := name[len(expected):]
	i := strings.Index(rest, separator)
	if i <= 0 {
		// No separator, or nothing before it to act as the key.
		return "", "", false
	}

	return rest[:i], rest[i+len(separator):], true
}

// Format encodes a key-value pair as a label name:
// prefix+separator+key+separator+value, the prefix part omitted when the
// prefix is empty. No escaping is performed.
func Format(key, value, prefix, separator string) string {
	if prefix == "" {
		return key + separator + value
	}
	return prefix + separator + key + separator + value
}
