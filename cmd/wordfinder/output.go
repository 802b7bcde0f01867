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

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/k3a/html2text"
	"github.com/rodaine/table"

	"github.com/ianlewis/go-wordfinder"
	"github.com/ianlewis/go-wordfinder/record"
)

// printFunc writes search results to w.
type printFunc func(w io.Writer, results []*wordfinder.Result) error

var printers = map[string]printFunc{
	"table": printTable,
	"text":  printText,
	"sml":   printSML,
	"xml":   printXML,
}

func newPrinter(format string) (printFunc, error) {
	p, ok := printers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown format %q", ErrFlagParse, format)
	}
	return p, nil
}

// plainText strips markup from definition text.
func plainText(s string) string {
	return strings.TrimSpace(html2text.HTML2Text(s))
}

// printHeader writes the dictionary name when more than one dictionary was
// searched.
func printHeader(w io.Writer, results []*wordfinder.Result, i int) error {
	if len(results) < 2 {
		return nil
	}
	if i > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\n\n", results[i].Dictionary.Name())
	return err
}

func printTable(w io.Writer, results []*wordfinder.Result) error {
	for i, res := range results {
		if res.Err != nil {
			continue
		}
		if err := printHeader(w, results, i); err != nil {
			return err
		}

		tbl := table.New("Term", "Part of Speech", "Definition").WithWriter(w)
		for _, r := range res.Records {
			tbl.AddRow(r.Word, speechLabel(r.Speech), plainText(r.Definition))
		}
		tbl.Print()
	}
	return nil
}

func printText(w io.Writer, results []*wordfinder.Result) error {
	for i, res := range results {
		if res.Err != nil {
			continue
		}
		if err := printHeader(w, results, i); err != nil {
			return err
		}

		for _, r := range res.Records {
			display := &record.Record{
				Word:       r.Word,
				Speech:     speechAbbrev(r.Speech),
				Definition: plainText(r.Definition),
			}
			if _, err := fmt.Fprintln(w, display.Line(true)); err != nil {
				return err
			}
		}
	}
	return nil
}

func printSML(w io.Writer, results []*wordfinder.Result) error {
	for _, res := range results {
		for _, r := range res.Records {
			if _, err := fmt.Fprintln(w, r.SML()); err != nil {
				return err
			}
		}
	}
	return nil
}

type xmlDictionary struct {
	Name    string           `xml:"name,attr"`
	Records []*record.Record `xml:"w"`
}

type xmlResults struct {
	XMLName      xml.Name        `xml:"results"`
	Dictionaries []xmlDictionary `xml:"dictionary"`
}

func printXML(w io.Writer, results []*wordfinder.Result) error {
	var doc xmlResults
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		doc.Dictionaries = append(doc.Dictionaries, xmlDictionary{
			Name:    res.Dictionary.Name(),
			Records: res.Records,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}
