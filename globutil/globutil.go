// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package globutil provides case-insensitive glob pattern matching.
// Patterns support "*" (any run of characters, including none), "?" (exactly
// one character), and bracket character classes such as "[abc]" or "[a-z]".
// Matching semantics are identical at every call site in this module.
package globutil

import (
	"strings"

	"github.com/gobwas/glob"
)

// Matcher is a compiled glob pattern. The zero value is not usable; obtain
// a Matcher from Compile. A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	pattern string
	g       glob.Glob
}

// Compile compiles pattern into a case-insensitive Matcher.
// A malformed pattern (for example an unterminated character class) is
// reported here, at compile time, never at match time.
//
// The empty pattern compiles to a matcher that matches only the empty
// string. Callers that want "match anything" should use "*".
func Compile(pattern string) (Matcher, error) {
	// Case folding happens at compile time for the pattern and at match
	// time for the input. Character classes are folded with the rest of
	// the pattern, so "[A-Z]" behaves as "[a-z]".
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return Matcher{}, err
	}
	return Matcher{pattern: pattern, g: g}, nil
}

// Match reports whether s matches the compiled pattern, ignoring case.
func (m Matcher) Match(s string) bool {
	return m.g.Match(strings.ToLower(s))
}

// String returns the original pattern text the Matcher was compiled from.
func (m Matcher) String() string {
	return m.pattern
}
