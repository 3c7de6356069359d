// SPDX-License-Identifier: MIT

// Package arxiv provides helpers for working with arXiv paper identifiers.
package arxiv

import (
	"regexp"
	"strings"
)

// idPattern matches new-style arXiv identifiers such as "1503.01234" or
// "1503.01234v2". Old-style identifiers ("hep-ph/9901001") do not match.
var idPattern = regexp.MustCompile(`^\d+\.\d+(v\d+)?$`)

// StripVersion returns rawID truncated at the first "v". A versioned
// identifier like "1503.01234v2" becomes "1503.01234"; identifiers
// without a version come back unchanged.
func StripVersion(rawID string) string {
	base, _, _ := strings.Cut(rawID, "v")
	return base
}

// IsValidID reports whether rawID is a well-formed new-style arXiv
// identifier, with or without a version suffix.
func IsValidID(rawID string) bool {
	return idPattern.MatchString(rawID)
}
