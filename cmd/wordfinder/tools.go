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
	"fmt"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordfinder/filter"
	"github.com/ianlewis/go-wordfinder/phrase"
)

var tokenizeCommand = &cli.Command{
	Name:         "tokenize",
	Usage:        "split TEXT into words and quoted phrases",
	ArgsUsage:    "TEXT",
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		s := phrase.NewScanner(strings.Join(c.Args().Slice(), " "))
		for s.Scan() {
			if _, err := fmt.Fprintf(c.App.Writer, "%q\n", s.Text()); err != nil {
				return fmt.Errorf("%w: %w", ErrWordfinder, err)
			}
		}
		return nil
	},
}

var soundexCommand = &cli.Command{
	Name:         "soundex",
	Usage:        "print the soundex code of each WORD",
	ArgsUsage:    "WORD...",
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: expected at least one WORD argument", ErrFlagParse)
		}

		tbl := table.New("Word", "Soundex").WithWriter(c.App.Writer)
		for _, word := range c.Args().Slice() {
			tbl.AddRow(word, filter.Soundex(word))
		}
		tbl.Print()
		return nil
	},
}
