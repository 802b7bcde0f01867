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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"slices"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordfinder"
	"github.com/ianlewis/go-wordfinder/internal/config"
)

// openDictionaries opens the dictionaries named by the command line and
// configuration. Explicitly named files are opened first. Data directories
// are searched unless files were given and no directory was set explicitly.
// Missing default directories are ignored.
func openDictionaries(c *cli.Context, cfg *config.Config, logger *slog.Logger) ([]*wordfinder.Dictionary, []error) {
	var dicts []*wordfinder.Dictionary
	var errs []error

	files := slices.Concat(cfg.Dictionaries, c.StringSlice("dict"))
	for _, path := range files {
		d, err := wordfinder.Open(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		dicts = append(dicts, d)
	}

	dirs := c.StringSlice("data-dir")
	explicitDirs := c.IsSet("data-dir")
	if !explicitDirs && len(cfg.DataDirs) > 0 {
		dirs = cfg.DataDirs
		explicitDirs = true
	}
	if len(files) > 0 && !explicitDirs {
		return dicts, errs
	}

	for _, dir := range dirs {
		openDicts, openErrs := wordfinder.OpenAll(dir)
		for _, err := range openErrs {
			if !explicitDirs && errors.Is(err, fs.ErrNotExist) {
				logger.Debug("skipping missing data directory", "dir", dir)
				continue
			}
			errs = append(errs, err)
		}
		dicts = append(dicts, openDicts...)
	}

	return dicts, errs
}

// printErrors writes errs to w and returns true if there were any.
func printErrors(w io.Writer, errs []error) bool {
	for _, err := range errs {
		_, _ = fmt.Fprintf(w, "warning: %v\n", err)
	}
	return len(errs) > 0
}
