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

// Package folding provides text transformers used to normalize dictionary
// terms before they are compared.
package folding

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Case returns a [transform.Transformer] that performs Unicode case folding.
// Transformers are stateful and a new one should be created for each use.
func Case() transform.Transformer {
	return cases.Fold()
}

// Spaces returns a [transform.Transformer] that removes all ASCII space
// runes. Other whitespace is left untouched.
func Spaces() transform.Transformer {
	return runes.Remove(runes.Predicate(func(r rune) bool {
		return r == ' '
	}))
}

// String applies the transformers in order to s. If the transformation
// fails s is returned unchanged.
func String(s string, t ...transform.Transformer) string {
	if len(t) == 0 {
		return s
	}
	folded, _, err := transform.String(transform.Chain(t...), s)
	if err != nil {
		return s
	}
	return folded
}
