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
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-wordfinder/record"
)

// compression is the compression format of a dictionary file.
type compression int

const (
	noCompression compression = iota
	gzipCompression
	dictzipCompression
)

// dictExts are the supported dictionary file extensions.
var dictExts = []string{".sml", ".txt"}

// Dictionary is a dictionary file.
type Dictionary struct {
	path        string
	name        string
	compression compression
}

// Stats are statistics about a dictionary's contents.
type Stats struct {
	// Lines is the number of lines in the dictionary.
	Lines int

	// Records is the number of valid records.
	Records int

	// Malformed is the number of lines that are not valid records.
	Malformed int
}

// OpenAll opens all dictionaries under a directory. This function will return
// all successfully opened dictionaries along with any errors that occurred.
// Files that are not dictionaries are ignored.
func OpenAll(path string) ([]*Dictionary, []error) {
	var dicts []*Dictionary
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if _, _, ok := splitExt(info.Name()); !ok {
			return nil
		}
		d, err := Open(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		dicts = append(dicts, d)
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dicts, errs
}

// Open returns the dictionary at the given path. The file is only opened
// while it is searched.
func Open(path string) (*Dictionary, error) {
	name, c, ok := splitExt(filepath.Base(path))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %q is not a regular file", ErrSourceUnavailable, path)
	}

	return &Dictionary{
		path:        path,
		name:        name,
		compression: c,
	}, nil
}

// Name returns the dictionary name. This is the file name without
// extensions.
func (d *Dictionary) Name() string {
	return d.name
}

// Path returns the path to the dictionary file.
func (d *Dictionary) Path() string {
	return d.path
}

// Search searches the dictionary for records matching the query. The
// dictionary file is opened for the duration of the search.
func (d *Dictionary) Search(ctx context.Context, q *Query, opts *Options) ([]*record.Record, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	if q.Limit.reached(0) {
		return nil, nil
	}

	r, err := d.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	opts.logger().Debug("searching dictionary", "name", d.name, "path", d.path)

	return Search(ctx, r, q, opts)
}

// Stats reads the dictionary and returns statistics about its contents.
func (d *Dictionary) Stats(ctx context.Context) (*Stats, error) {
	r, err := d.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var stats Stats
	stats.Lines, err = scan(ctx, r, func(_ int, rec *record.Record) bool {
		if rec == nil {
			stats.Malformed++
		} else {
			stats.Records++
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// open opens the dictionary file for reading and decompresses it if
// necessary.
func (d *Dictionary) open() (io.ReadCloser, error) {
	f, err := os.Open(d.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	switch d.compression {
	case gzipCompression:
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: opening %q: %w", ErrSourceUnavailable, d.path, err)
		}
		return &readCloser{Reader: z, closers: []io.Closer{z, f}}, nil
	case dictzipCompression:
		z, err := dictzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: opening %q: %w", ErrSourceUnavailable, d.path, err)
		}
		return &readCloser{Reader: z, closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

// splitExt splits a dictionary file name into its name and compression. It
// returns false if the file name does not have a dictionary extension.
func splitExt(filename string) (string, compression, bool) {
	name := filename

	c := noCompression
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		c = gzipCompression
	case ".dz":
		c = dictzipCompression
	}
	if c != noCompression {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	ext := filepath.Ext(name)
	if !slices.Contains(dictExts, strings.ToLower(ext)) {
		return "", noCompression, false
	}
	return strings.TrimSuffix(name, ext), c, true
}

// readCloser is a decompressing reader that closes the readers it wraps.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var errs []error
	for _, c := range r.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
