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

package folding

import (
	"testing"

	"golang.org/x/text/transform"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		t        []transform.Transformer
		expected string
	}{
		{
			name:     "no transformers",
			input:    "Hello World",
			expected: "Hello World",
		},
		{
			name:     "case",
			input:    "Hello WORLD",
			t:        []transform.Transformer{Case()},
			expected: "hello world",
		},
		{
			name:     "case sharp s",
			input:    "Straße",
			t:        []transform.Transformer{Case()},
			expected: "strasse",
		},
		{
			name:     "spaces",
			input:    " a b  c ",
			t:        []transform.Transformer{Spaces()},
			expected: "abc",
		},
		{
			name:     "spaces keeps tabs",
			input:    "a\tb c",
			t:        []transform.Transformer{Spaces()},
			expected: "a\tbc",
		},
		{
			name:     "spaces and case",
			input:    "New York",
			t:        []transform.Transformer{Spaces(), Case()},
			expected: "newyork",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if want, got := test.expected, String(test.input, test.t...); want != got {
				t.Errorf("String(%q); want: %q, got: %q", test.input, want, got)
			}
		})
	}
}
