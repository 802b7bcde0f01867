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

package wordfinder

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ianlewis/go-wordfinder/filter"
	"github.com/ianlewis/go-wordfinder/record"
)

// MaxLineSize is the maximum size of a single dictionary line.
const MaxLineSize = 1024 * 1024

// Limit limits the number of records returned by a search.
type Limit struct {
	// Enabled turns on limiting.
	Enabled bool

	// Max is the maximum number of records to return. A search with limiting
	// enabled and Max less than one returns no records.
	Max int
}

// DefaultLimit is the default search limit.
var DefaultLimit = Limit{
	Enabled: true,
	Max:     20,
}

// reached returns true if count records satisfy the limit.
func (l Limit) reached(count int) bool {
	return l.Enabled && count >= l.Max
}

// Query is a dictionary search query.
type Query struct {
	// Word is matched against each record's word. It is required.
	Word *filter.Filter

	// Definition filters are matched against each record's definition. All
	// definition filters must match for a record to be accepted.
	Definition []*filter.Filter

	// Limit limits the number of matching records.
	Limit Limit
}

// Match returns true if the record is accepted by the query's filters.
func (q *Query) Match(r *record.Record) bool {
	if !q.Word.Match(r.Word) {
		return false
	}
	for _, f := range q.Definition {
		if !f.Match(r.Definition) {
			return false
		}
	}
	return true
}

func (q *Query) validate() error {
	if q == nil || q.Word == nil {
		return ErrNoWordFilter
	}
	return nil
}

// Options are options for searching dictionaries.
type Options struct {
	// Logger is the logger used to report search progress. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// Workers is the number of dictionaries searched concurrently by
	// SearchAll.
	Workers int
}

// DefaultOptions is the default options for searches.
var DefaultOptions = &Options{
	Workers: 4,
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func (o *Options) workers() int {
	if o == nil || o.Workers < 1 {
		return DefaultOptions.Workers
	}
	return o.Workers
}

// Search scans the dictionary records read from r and returns the records
// accepted by the query in the order they were read. Lines that are not
// valid records are skipped. If reading fails no records are returned and
// the error wraps ErrSourceUnavailable.
//
// The context is checked before each line is read. If it is canceled the
// search stops and the context's error is returned.
func Search(ctx context.Context, r io.Reader, q *Query, opts *Options) ([]*record.Record, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	if q.Limit.reached(0) {
		return nil, nil
	}

	log := opts.logger()

	var result []*record.Record
	var malformed int
	lines, err := scan(ctx, r, func(lineNo int, rec *record.Record) bool {
		if rec == nil {
			log.Debug("skipping malformed record", "line", lineNo)
			malformed++
			return true
		}
		if q.Match(rec) {
			result = append(result, rec)
		}
		return !q.Limit.reached(len(result))
	})
	if err != nil {
		return nil, err
	}

	log.Debug("search complete",
		"query", q.Word,
		"lines", lines,
		"malformed", malformed,
		"matches", len(result),
	)

	return result, nil
}

// scan reads lines from r and calls fn with each parsed record. rec is nil
// for lines that are not valid records. Scanning stops when fn returns
// false. scan returns the number of lines read.
func scan(ctx context.Context, r io.Reader, fn func(lineNo int, rec *record.Record) bool) (int, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			//nolint:wrapcheck // context errors are returned as-is
			return lineNo, err
		}
		if !s.Scan() {
			break
		}
		lineNo++

		rec, ok := record.Parse(s.Text())
		if !ok {
			rec = nil
		}
		if !fn(lineNo, rec) {
			return lineNo, nil
		}
	}

	if err := s.Err(); err != nil {
		return lineNo, fmt.Errorf("%w: reading line %d: %w", ErrSourceUnavailable, lineNo+1, err)
	}
	return lineNo, nil
}
