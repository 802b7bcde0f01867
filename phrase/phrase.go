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

// Package phrase implements splitting of free-form query text into phrases.
//
// A phrase is either a single word delimited by spaces or a double-quoted
// string which may itself contain spaces. A backslash escapes the following
// character; the sequences \n, \t and \r produce a newline, tab and carriage
// return respectively.
package phrase

import (
	"strings"
)

// Scanner scans phrases from an input string from start to end. A Scanner
// cannot be restarted.
type Scanner struct {
	input []rune
	pos   int

	inQuote bool
	buf     strings.Builder

	token string
	done  bool
}

// NewScanner returns a new Scanner reading phrases from input. Leading and
// trailing whitespace is ignored.
func NewScanner(input string) *Scanner {
	return &Scanner{
		input: []rune(strings.TrimSpace(input)),
	}
}

// Scan advances the Scanner to the next phrase, which will then be available
// through the Text method. It returns false when the input is exhausted.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	for s.pos < len(s.input) {
		c := s.input[s.pos]
		s.pos++

		switch c {
		case '"':
			wasQuoted := s.inQuote
			s.inQuote = !s.inQuote
			token := s.buf.String()
			s.buf.Reset()
			if wasQuoted {
				// A closing quote always ends the phrase.
				s.token = token
				return true
			}
		case '\\':
			if s.pos >= len(s.input) {
				// A trailing escape ends the scan.
				continue
			}
			s.buf.WriteRune(unescape(s.input[s.pos]))
			s.pos++
		case ' ':
			if s.inQuote {
				s.buf.WriteRune(c)
				continue
			}
			if s.buf.Len() > 0 {
				s.token = s.buf.String()
				s.buf.Reset()
				return true
			}
		default:
			s.buf.WriteRune(c)
		}
	}

	s.done = true
	if s.buf.Len() > 0 {
		s.token = s.buf.String()
		s.buf.Reset()
		return true
	}
	s.token = ""
	return false
}

// Text returns the most recent phrase generated by a call to Scan.
func (s *Scanner) Text() string {
	return s.token
}

// Tokenize splits input into phrases.
func Tokenize(input string) []string {
	var phrases []string
	s := NewScanner(input)
	for s.Scan() {
		phrases = append(phrases, s.Text())
	}
	return phrases
}

func unescape(c rune) rune {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return c
	}
}
