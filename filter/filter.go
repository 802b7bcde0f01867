// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package filter implements the pattern matching strategies used to select
// dictionary records.
//
// A Filter is built once per query and then matched against every candidate
// string scanned. Filters are immutable after construction and are safe for
// concurrent use.
//
// Five strategies are supported:
//  1. Contains: the candidate contains the pattern as a substring.
//  2. Wildcard: the pattern matches the whole candidate where '*' matches any
//     run of characters and '?' matches exactly one character.
//  3. Regex: the pattern is a regular expression that must match the whole
//     candidate. A pattern that fails to compile matches nothing.
//  4. Soundex: the candidate sounds like the pattern (equal Soundex codes).
//  5. Anagram: the candidate has the same non-space characters as the
//     pattern in any order.
package filter

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/gobwas/glob"

	"github.com/ianlewis/go-wordfinder/internal/folding"
)

// ErrUnknownKind indicates that a strategy name is not recognized.
var ErrUnknownKind = errors.New("unknown filter kind")

// RegexTimeout is the maximum time spent evaluating a Regex filter against a
// single candidate. Candidates that time out do not match.
const RegexTimeout = time.Second

// Kind is a matching strategy.
type Kind int

const (
	// ContainsKind matches candidates containing the pattern.
	ContainsKind Kind = iota

	// WildcardKind matches candidates against a '*' and '?' wildcard pattern.
	WildcardKind

	// RegexKind matches candidates against a regular expression.
	RegexKind

	// SoundexKind matches candidates that sound like the pattern.
	SoundexKind

	// AnagramKind matches candidates that are anagrams of the pattern.
	AnagramKind
)

var kindNames = []string{
	ContainsKind: "contains",
	WildcardKind: "wildcard",
	RegexKind:    "regex",
	SoundexKind:  "soundex",
	AnagramKind:  "anagram",
}

// Kinds returns all supported kinds.
func Kinds() []Kind {
	return []Kind{ContainsKind, WildcardKind, RegexKind, SoundexKind, AnagramKind}
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind with the given name. Names are matched
// case-insensitively.
func ParseKind(name string) (Kind, error) {
	i := slices.Index(kindNames, strings.ToLower(strings.TrimSpace(name)))
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return Kind(i), nil
}

// Filter matches candidate strings against a pattern.
type Filter struct {
	kind       Kind
	pattern    string
	ignoreCase bool

	// norm is the normalized pattern for Contains, Soundex and Anagram
	// filters.
	norm string

	// glob is the compiled Wildcard pattern.
	glob glob.Glob

	// re is the compiled Regex pattern. It is nil if the pattern is invalid.
	re *regexp2.Regexp
}

// New returns a new Filter of the given kind. Construction never fails; a
// Regex pattern that does not compile results in a Filter that matches
// nothing. An unknown kind also matches nothing.
func New(kind Kind, pattern string, ignoreCase bool) *Filter {
	f := &Filter{
		kind:       kind,
		pattern:    pattern,
		ignoreCase: ignoreCase,
	}

	switch kind {
	case ContainsKind:
		f.norm = f.fold(pattern)
	case WildcardKind:
		f.glob = compileWildcard(f.fold(pattern))
	case RegexKind:
		f.re = compileRegex(pattern, ignoreCase)
	case SoundexKind:
		f.norm = Soundex(pattern)
	case AnagramKind:
		f.norm = f.sortChars(pattern)
	}

	return f
}

// Kind returns the filter's matching strategy.
func (f *Filter) Kind() Kind {
	return f.kind
}

// Pattern returns the source pattern the filter was built from.
func (f *Filter) Pattern() string {
	return f.pattern
}

// IgnoreCase returns whether the filter ignores case.
func (f *Filter) IgnoreCase() bool {
	return f.ignoreCase
}

// String returns a string representation of the Filter.
func (f *Filter) String() string {
	return fmt.Sprintf("%s(%q, ignoreCase=%t)", f.kind, f.pattern, f.ignoreCase)
}

// Match returns true if the candidate matches the filter. A nil Filter
// matches everything.
func (f *Filter) Match(candidate string) bool {
	if f == nil {
		return true
	}

	switch f.kind {
	case ContainsKind:
		return strings.Contains(f.fold(candidate), f.norm)
	case WildcardKind:
		return f.glob != nil && f.glob.Match(f.fold(candidate))
	case RegexKind:
		if f.re == nil {
			return false
		}
		ok, err := f.re.MatchString(candidate)
		return err == nil && ok
	case SoundexKind:
		return Soundex(candidate) == f.norm
	case AnagramKind:
		return f.sortChars(candidate) == f.norm
	default:
		return false
	}
}

// fold performs case folding on s if the filter ignores case.
func (f *Filter) fold(s string) string {
	if !f.ignoreCase {
		return s
	}
	return folding.String(s, folding.Case())
}

// sortChars returns the non-space characters of s in sorted order.
func (f *Filter) sortChars(s string) string {
	s = folding.String(s, folding.Spaces())
	r := []rune(f.fold(s))
	slices.Sort(r)
	return string(r)
}

// compileWildcard compiles a '*' and '?' wildcard pattern. All other
// characters are matched literally.
func compileWildcard(pattern string) glob.Glob {
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case '*', '?':
			b.WriteRune(r)
		default:
			b.WriteString(glob.QuoteMeta(string(r)))
		}
	}

	g, err := glob.Compile(b.String())
	if err != nil {
		return nil
	}
	return g
}

// compileRegex compiles a regular expression anchored to match the entire
// candidate. It returns nil if the pattern is invalid.
func compileRegex(pattern string, ignoreCase bool) *regexp2.Regexp {
	opts := regexp2.None
	if ignoreCase {
		opts |= regexp2.IgnoreCase
	}

	// Validate the pattern on its own so that unbalanced groups are not
	// hidden by the anchoring group.
	if _, err := regexp2.Compile(pattern, opts); err != nil {
		return nil
	}

	re, err := regexp2.Compile(`\A(?:`+pattern+`)\z`, opts)
	if err != nil {
		return nil
	}
	re.MatchTimeout = RegexTimeout
	return re
}
