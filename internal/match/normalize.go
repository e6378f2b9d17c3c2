package match

import (
	"regexp"
	"strings"
)

// nonAlnum matches everything outside [A-Za-z0-9].
var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// codeValue isolates the value portion of a stored code nominally shaped
// codingSystem:codeValue. Everything left of (and including) the first ':'
// is dropped. Codes with no ':' are used whole.
func codeValue(code string) string {
	if i := strings.Index(code, ":"); i >= 0 {
		return code[i+1:]
	}
	return code
}

// lower is the exact-match normalizer.
func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// relaxed strips all non-alphanumeric characters and lowercases.
func relaxed(s string) string {
	return strings.ToLower(nonAlnum.ReplaceAllString(s, ""))
}

// semiRelaxed removes only the '.' character, preserving other punctuation,
// then lowercases.
func semiRelaxed(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), ".", ""))
}
