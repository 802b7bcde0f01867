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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var listCommand = &cli.Command{
	Name:         "list",
	Usage:        "list available dictionaries",
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		cfg := appConfig(c)
		logger := appLogger(c)

		dicts, errs := openDictionaries(c, cfg, logger)
		failed := printErrors(c.App.ErrWriter, errs)

		tbl := table.New("Name", "Words", "Malformed", "Path").WithWriter(c.App.Writer)
		for _, d := range dicts {
			stats, err := d.Stats(c.Context)
			if err != nil {
				_, _ = fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", d.Path(), err)
				failed = true
				continue
			}
			tbl.AddRow(d.Name(), stats.Records, stats.Malformed, d.Path())
		}
		tbl.Print()

		if failed {
			return ErrSearch
		}
		return nil
	},
}
