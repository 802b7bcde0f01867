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
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordfinder"
	"github.com/ianlewis/go-wordfinder/filter"
	"github.com/ianlewis/go-wordfinder/internal/config"
	"github.com/ianlewis/go-wordfinder/phrase"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "search dictionaries for words matching PATTERN",
	ArgsUsage: "PATTERN",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "strategy",
			Usage:       "match words using `STRATEGY` (" + strings.Join(strategyNames(), "|") + ")",
			Aliases:     []string{"s"},
			DefaultText: filter.ContainsKind.String(),
		},
		&cli.BoolFlag{
			Name:               "match-case",
			Usage:              "match case when comparing words and definitions",
			Aliases:            []string{"c"},
			DisableDefaultText: true,
		},
		&cli.StringFlag{
			Name:  "def",
			Usage: "only show words whose definition contains every word or \"quoted phrase\" in `TEXT`",
		},
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "show at most `N` words per dictionary",
			Aliases:     []string{"n"},
			DefaultText: strconv.Itoa(wordfinder.DefaultLimit.Max),
		},
		&cli.BoolFlag{
			Name:               "no-limit",
			Usage:              "show all matching words",
			DisableDefaultText: true,
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "output `FORMAT` (" + strings.Join(config.Formats, "|") + ")",
			Aliases:     []string{"f"},
			DefaultText: "table",
		},
		&cli.StringSliceFlag{
			Name:  "dict",
			Usage: "search the dictionary `FILE`",
		},
	},
	OnUsageError: usageError,
	Action:       runQuery,
}

func strategyNames() []string {
	var names []string
	for _, k := range filter.Kinds() {
		names = append(names, k.String())
	}
	return names
}

// newQuery builds the search query from the PATTERN argument, the command
// line flags and the configured defaults. Flags take precedence.
func newQuery(c *cli.Context, cfg *config.Config) (*wordfinder.Query, error) {
	strategy := cfg.Search.Strategy
	if c.IsSet("strategy") {
		strategy = c.String("strategy")
	}
	kind, err := filter.ParseKind(strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: --strategy: %w", ErrFlagParse, err)
	}

	matchCase := cfg.Search.MatchCase
	if c.IsSet("match-case") {
		matchCase = c.Bool("match-case")
	}

	limit := wordfinder.Limit{
		Enabled: !cfg.Search.NoLimit,
		Max:     cfg.Search.Limit,
	}
	if c.IsSet("limit") {
		limit.Enabled = true
		limit.Max = c.Int("limit")
	}
	if c.Bool("no-limit") {
		limit.Enabled = false
	}

	q := &wordfinder.Query{
		Word:  filter.New(kind, c.Args().First(), !matchCase),
		Limit: limit,
	}
	for _, p := range phrase.Tokenize(c.String("def")) {
		q.Definition = append(q.Definition, filter.New(filter.ContainsKind, p, !matchCase))
	}

	return q, nil
}

func runQuery(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("%w: expected a single PATTERN argument", ErrFlagParse)
	}

	cfg := appConfig(c)
	logger := appLogger(c)

	q, err := newQuery(c, cfg)
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if c.IsSet("format") {
		format = c.String("format")
	}
	printResults, err := newPrinter(format)
	if err != nil {
		return err
	}

	dicts, errs := openDictionaries(c, cfg, logger)
	failed := printErrors(c.App.ErrWriter, errs)
	if len(dicts) == 0 {
		if failed {
			return ErrSearch
		}
		return ErrNoDictionaries
	}

	logger.Debug("searching dictionaries",
		"count", len(dicts),
		"word", q.Word.String(),
		"definition", len(q.Definition),
	)

	results, err := wordfinder.SearchAll(c.Context, dicts, q, &wordfinder.Options{
		Logger:  logger,
		Workers: cfg.Search.Workers,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSearch, err)
	}

	for _, res := range results {
		if res.Err != nil {
			_, _ = fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", res.Dictionary.Path(), res.Err)
			failed = true
		}
	}

	if err := printResults(c.App.Writer, results); err != nil {
		return fmt.Errorf("%w: writing results: %w", ErrWordfinder, err)
	}

	if failed {
		return ErrSearch
	}
	return nil
}
