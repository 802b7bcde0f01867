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


package main

// speechLabel returns the full name of a part of speech code.
func speechLabel(code string) string {
	switch code {
	case "n":
		return "Noun"
	case "v":
		return "Verb"
	case "a":
		return "Adjective"
	case "r":
		return "Adverb"
	default:
		return code
	}
}

// speechAbbrev returns the abbreviated name of a part of speech code.
func speechAbbrev(code string) string {
	switch code {
	case "n":
		return "noun"
	case "v":
		return "verb"
	case "a":
		return "adj"
	case "r":
		return "adv"
	default:
		return code
	}
}
