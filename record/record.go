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

// Package record implements parsing of dictionary record lines.
//
// Each line of a dictionary holds a single record made up of three fields
// separated by the '@' character:
//
//	WORD@SPEECH@DEFINITION
//
//  1. The word: the dictionary term. It must not be empty.
//  2. The part of speech: a short code such as 'n' (noun), 'v' (verb), 'a'
//     (adjective) or 'r' (adverb). It may be empty or any other code.
//  3. The definition: free text running to the end of the line. Only the
//     first two separators are significant so the definition may itself
//     contain '@' characters.
package record

import (
	"encoding/xml"
	"strings"
)

// Separator is the field separator used in dictionary lines.
const Separator = '@'

// Record is a single dictionary entry.
type Record struct {
	// Word is the dictionary term.
	Word string

	// Speech is the part of speech code.
	Speech string

	// Definition is the definition text.
	Definition string
}

// Parse parses a dictionary line into a Record. It returns false if the line
// does not contain two separators at valid interior positions.
func Parse(line string) (*Record, bool) {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return nil, false
	}

	i := strings.IndexByte(line, Separator)
	if i <= 0 || i >= len(line)-1 {
		return nil, false
	}

	j := strings.IndexByte(line[i+1:], Separator)
	if j < 0 {
		return nil, false
	}
	j += i + 1
	if j >= len(line)-1 {
		return nil, false
	}

	return &Record{
		Word:       line[:i],
		Speech:     line[i+1 : j],
		Definition: line[j+1:],
	}, true
}

// String returns a descriptive representation of the Record.
func (r *Record) String() string {
	return "Word: " + r.Word + " Speech: " + r.Speech + " Definition: " + r.Definition
}

// Line returns the record formatted for display as "word : (speech) definition".
// The part of speech is omitted when empty and the word is omitted if
// includeWord is false.
func (r *Record) Line(includeWord bool) string {
	var b strings.Builder
	if includeWord {
		b.WriteString(r.Word)
		b.WriteString(" : ")
	}
	if r.Speech != "" {
		b.WriteString("(")
		b.WriteString(r.Speech)
		b.WriteString(") ")
	}
	b.WriteString(r.Definition)
	return b.String()
}

// SML returns the record in dictionary line format. An empty part of speech
// is written as a single space so that the line can be parsed again.
func (r *Record) SML() string {
	speech := r.Speech
	if speech == "" {
		speech = " "
	}
	return r.Word + string(Separator) + speech + string(Separator) + r.Definition
}

type xmlRecord struct {
	Word       string `xml:"v"`
	Speech     string `xml:"p"`
	Definition string `xml:"d"`
}

// MarshalXML implements [xml.Marshaler]. Records are encoded as
// <w><v>word</v><p>speech</p><d>definition</d></w>.
func (r *Record) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	//nolint:wrapcheck // error should not be wrapped
	return e.EncodeElement(xmlRecord{
		Word:       r.Word,
		Speech:     r.Speech,
		Definition: r.Definition,
	}, xml.StartElement{Name: xml.Name{Local: "w"}})
}
