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

// Package testutil contains helpers for writing test dictionaries.
package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// MakeDictOptions are options for writing a test dictionary.
type MakeDictOptions struct {
	// Name is the dictionary file name without extensions. Defaults to
	// 'dictionary'.
	Name string

	// Ext is an optional file extension for the dictionary file. Defaults to
	// '.sml.gz' if Gzip is true, '.sml.dz' if DictZip is true. Otherwise
	// '.sml'.
	Ext string

	// Gzip indicates that the file should be compressed with gzip.
	Gzip bool

	// DictZip indicates that the file should be compressed with DictZip.
	DictZip bool
}

// GetName returns the dictionary file name without extensions.
func (o *MakeDictOptions) GetName() string {
	if o != nil && o.Name != "" {
		return o.Name
	}
	return "dictionary"
}

// GetExt returns the dictionary file extension.
func (o *MakeDictOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.Gzip {
			return ".sml.gz"
		}
		if o.DictZip {
			return ".sml.dz"
		}
	}
	return ".sml"
}

// MakeDict creates the contents of a dictionary file from lines.
func MakeDict(lines []string) []byte {
	if len(lines) == 0 {
		return nil
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

// MakeTempDict writes a dictionary file containing lines to dir and returns
// its path. If dir is empty a new temporary directory is used.
func MakeTempDict(t *testing.T, dir string, lines []string, opts *MakeDictOptions) string {
	t.Helper()

	if dir == "" {
		dir = t.TempDir()
	}

	path := filepath.Join(dir, opts.GetName()+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	d := MakeDict(lines)

	switch {
	case opts != nil && opts.Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(d); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case opts != nil && opts.DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(d); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(d); err != nil {
			t.Fatal(err)
		}
	}

	return path
}
