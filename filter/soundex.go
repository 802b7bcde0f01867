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

package filter

// soundexLen is the length of a Soundex code.
const soundexLen = 4

// soundexCodes maps the letters A-Z to their Soundex class. '0' marks vowels,
// which separate letters with the same code, and '-' marks H and W, which
// are skipped without separating.
var soundexCodes = [26]byte{
	'0', '1', '2', '3', '0', '1', '2', '-', '0', '2', '2', '4', '5',
	//A  B    C    D    E    F    G    H    I    J    K    L    M
	'5', '0', '1', '2', '6', '2', '3', '0', '1', '-', '2', '0', '2',
	//N  O    P    Q    R    S    T    U    V    W    X    Y    Z
}

// Soundex returns the Soundex code of s. The code is the first letter of s
// in upper case followed by three digits. Characters other than the ASCII
// letters are ignored. If s contains no letters the empty string is
// returned.
func Soundex(s string) string {
	var code [soundexLen]byte
	n := 0

	// last is the class of the previous coded letter or zero after a vowel.
	var last byte
	for i := 0; i < len(s) && n < soundexLen; i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			continue
		}

		class := soundexCodes[c-'A']
		if n == 0 {
			code[0] = c
			n++
			if class != '0' && class != '-' {
				last = class
			}
			continue
		}

		switch class {
		case '0':
			last = 0
		case '-':
		default:
			if class != last {
				code[n] = class
				n++
			}
			last = class
		}
	}

	if n == 0 {
		return ""
	}
	for ; n < soundexLen; n++ {
		code[n] = '0'
	}
	return string(code[:])
}
