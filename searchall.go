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
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/ianlewis/go-wordfinder/record"
)

// Result is the result of searching a single dictionary.
type Result struct {
	// Dictionary is the dictionary that was searched.
	Dictionary *Dictionary

	// Records are the matching records.
	Records []*record.Record

	// Err is the error that occurred while searching the dictionary, if any.
	Err error
}

// SearchAll searches several dictionaries concurrently. Results are returned
// in the same order as dicts. Errors searching individual dictionaries are
// reported in each Result's Err field; the returned error is only non-nil
// if the search could not be started.
func SearchAll(ctx context.Context, dicts []*Dictionary, q *Query, opts *Options) ([]*Result, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	pool, err := ants.NewPool(opts.workers())
	if err != nil {
		return nil, fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]*Result, len(dicts))
	var wg sync.WaitGroup
	for i, d := range dicts {
		results[i] = &Result{Dictionary: d}

		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			results[i].Records, results[i].Err = d.Search(ctx, q, opts)
		})
		if err != nil {
			wg.Done()
			results[i].Err = fmt.Errorf("searching %q: %w", d.Name(), err)
		}
	}
	wg.Wait()

	for _, r := range results {
		if r.Err != nil {
			opts.logger().Warn("dictionary search failed", "name", r.Dictionary.Name(), "err", r.Err)
		}
	}

	return results, nil
}
