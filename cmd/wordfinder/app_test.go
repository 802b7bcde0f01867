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
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-wordfinder/internal/testutil"
)

var testLines = []string{
	"cat@n@a small domesticated <i>feline</i>",
	"cart@n@a wheeled vehicle",
	"act@v@to do something",
	"malformed",
	"scat@v@to go away quickly",
}

// isolate points configuration lookups at an empty directory.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("WORDFINDER_CONFIG", "")
}

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := newWordfinderApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(append([]string{"wordfinder"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestQuery(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	testutil.MakeTempDict(t, dir, testLines, nil)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name: "text",
			args: []string{"query", "--format", "text", "cat"},
			expected: "cat : (noun) a small domesticated feline\n" +
				"scat : (verb) to go away quickly\n",
		},
		{
			name: "anagram",
			args: []string{"query", "-s", "anagram", "-f", "sml", "TAC"},
			expected: "cat@n@a small domesticated <i>feline</i>\n" +
				"act@v@to do something\n",
		},
		{
			name:     "match case",
			args:     []string{"query", "-c", "-f", "sml", "CAT"},
			expected: "",
		},
		{
			name:     "definition",
			args:     []string{"query", "-s", "wildcard", "--def", `"wheeled vehicle"`, "-f", "sml", "c*"},
			expected: "cart@n@a wheeled vehicle\n",
		},
		{
			name:     "limit",
			args:     []string{"query", "-n", "1", "-f", "sml", "c"},
			expected: "cat@n@a small domesticated <i>feline</i>\n",
		},
		{
			name: "no limit",
			args: []string{"query", "-n", "1", "--no-limit", "-f", "sml", "c"},
			expected: "cat@n@a small domesticated <i>feline</i>\n" +
				"cart@n@a wheeled vehicle\n" +
				"act@v@to do something\n" +
				"scat@v@to go away quickly\n",
		},
		{
			name:     "regex",
			args:     []string{"query", "-s", "regex", "-f", "sml", "c.r?t"},
			expected: "cat@n@a small domesticated <i>feline</i>\ncart@n@a wheeled vehicle\n",
		},
		{
			name:     "soundex",
			args:     []string{"query", "-s", "soundex", "-f", "sml", "cot"},
			expected: "cat@n@a small domesticated <i>feline</i>\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			args := append([]string{"--data-dir", dir}, test.args...)
			stdout, stderr, err := runApp(t, args...)
			if err != nil {
				t.Fatalf("Run: %v\nstderr: %s", err, stderr)
			}
			if diff := cmp.Diff(test.expected, stdout); diff != "" {
				t.Errorf("stdout (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestQuery_table(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	testutil.MakeTempDict(t, dir, testLines, nil)

	stdout, stderr, err := runApp(t, "--data-dir", dir, "query", "cart")
	if err != nil {
		t.Fatalf("Run: %v\nstderr: %s", err, stderr)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if want, got := 2, len(lines); want != got {
		t.Fatalf("lines; want: %d, got: %d\n%s", want, got, stdout)
	}
	if diff := cmp.Diff([]string{"Term", "Part", "of", "Speech", "Definition"}, strings.Fields(lines[0])); diff != "" {
		t.Errorf("header (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"cart", "Noun", "a", "wheeled", "vehicle"}, strings.Fields(lines[1])); diff != "" {
		t.Errorf("row (-want, +got):\n%s", diff)
	}
}

func TestQuery_xml(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	testutil.MakeTempDict(t, dir, testLines, &testutil.MakeDictOptions{
		Name:    "animals",
		DictZip: true,
	})

	stdout, stderr, err := runApp(t, "--data-dir", dir, "query", "-f", "xml", "cart")
	if err != nil {
		t.Fatalf("Run: %v\nstderr: %s", err, stderr)
	}

	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<dictionary name="animals">`,
		`<v>cart</v>`,
		`<p>n</p>`,
		`<d>a wheeled vehicle</d>`,
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestQuery_multipleDictionaries(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	testutil.MakeTempDict(t, dir, testLines, &testutil.MakeDictOptions{Name: "a"})
	testutil.MakeTempDict(t, dir, []string{"cattle@n@cows"}, &testutil.MakeDictOptions{
		Name: "b",
		Gzip: true,
	})

	stdout, stderr, err := runApp(t, "--data-dir", dir, "query", "-f", "text", "catt")
	if err != nil {
		t.Fatalf("Run: %v\nstderr: %s", err, stderr)
	}

	expected := "a\n\n\nb\n\ncattle : (noun) cows\n"
	if diff := cmp.Diff(expected, stdout); diff != "" {
		t.Errorf("stdout (-want, +got):\n%s", diff)
	}
}

func TestQuery_missingDictionary(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	testutil.MakeTempDict(t, dir, testLines, nil)
	missing := filepath.Join(t.TempDir(), "missing.sml")

	stdout, stderr, err := runApp(t, "--data-dir", dir, "query", "--dict", missing, "-f", "sml", "cart")
	if !errors.Is(err, ErrSearch) {
		t.Fatalf("Run; want: %v, got: %v", ErrSearch, err)
	}
	if want, got := ExitCodeSearchError, exitCode(err); want != got {
		t.Errorf("exitCode; want: %d, got: %d", want, got)
	}
	if !strings.Contains(stderr, missing) {
		t.Errorf("stderr missing %q: %s", missing, stderr)
	}

	// Results from the remaining dictionaries are still printed.
	if want, got := "cart@n@a wheeled vehicle\n", stdout; want != got {
		t.Errorf("stdout; want: %q, got: %q", want, got)
	}
}

func TestQuery_noDictionaries(t *testing.T) {
	isolate(t)

	_, _, err := runApp(t, "--data-dir", t.TempDir(), "query", "cat")
	if !errors.Is(err, ErrNoDictionaries) {
		t.Fatalf("Run; want: %v, got: %v", ErrNoDictionaries, err)
	}
	if want, got := ExitCodeSearchError, exitCode(err); want != got {
		t.Errorf("exitCode; want: %d, got: %d", want, got)
	}
}

func TestQuery_flagErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	testutil.MakeTempDict(t, dir, testLines, nil)

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "no pattern",
			args: []string{"query"},
		},
		{
			name: "too many patterns",
			args: []string{"query", "cat", "dog"},
		},
		{
			name: "unknown strategy",
			args: []string{"query", "-s", "fuzzy", "cat"},
		},
		{
			name: "unknown format",
			args: []string{"query", "-f", "json", "cat"},
		},
		{
			name: "unknown flag",
			args: []string{"query", "--bogus", "cat"},
		},
		{
			name: "bad log level",
			args: []string{"--log-level", "loud", "query", "cat"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			args := append([]string{"--data-dir", dir}, test.args...)
			_, _, err := runApp(t, args...)
			if !errors.Is(err, ErrFlagParse) {
				t.Fatalf("Run; want: %v, got: %v", ErrFlagParse, err)
			}
			if want, got := ExitCodeFlagParseError, exitCode(err); want != got {
				t.Errorf("exitCode; want: %d, got: %d", want, got)
			}
		})
	}
}

func TestQuery_config(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := testutil.MakeTempDict(t, dir, testLines, nil)
	t.Setenv("WORDFINDER_DICTIONARIES", path)
	t.Setenv("WORDFINDER_STRATEGY", "anagram")
	t.Setenv("WORDFINDER_FORMAT", "sml")

	stdout, stderr, err := runApp(t, "query", "tca")
	if err != nil {
		t.Fatalf("Run: %v\nstderr: %s", err, stderr)
	}

	expected := "cat@n@a small domesticated <i>feline</i>\nact@v@to do something\n"
	if diff := cmp.Diff(expected, stdout); diff != "" {
		t.Errorf("stdout (-want, +got):\n%s", diff)
	}

	// Flags override configuration.
	stdout, stderr, err = runApp(t, "query", "-s", "contains", "sca")
	if err != nil {
		t.Fatalf("Run: %v\nstderr: %s", err, stderr)
	}
	if diff := cmp.Diff("scat@v@to go away quickly\n", stdout); diff != "" {
		t.Errorf("stdout (-want, +got):\n%s", diff)
	}
}

func TestList(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := testutil.MakeTempDict(t, dir, testLines, nil)

	stdout, stderr, err := runApp(t, "--data-dir", dir, "list")
	if err != nil {
		t.Fatalf("Run: %v\nstderr: %s", err, stderr)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if want, got := 2, len(lines); want != got {
		t.Fatalf("lines; want: %d, got: %d\n%s", want, got, stdout)
	}
	if diff := cmp.Diff([]string{"dictionary", "4", "1", path}, strings.Fields(lines[1])); diff != "" {
		t.Errorf("row (-want, +got):\n%s", diff)
	}
}

func TestTokenize(t *testing.T) {
	isolate(t)

	stdout, stderr, err := runApp(t, "tokenize", "foo", `"bar baz"`, `qu\"x`)
	if err != nil {
		t.Fatalf("Run: %v\nstderr: %s", err, stderr)
	}

	expected := "\"foo\"\n\"bar baz\"\n\"qu\\\"x\"\n"
	if diff := cmp.Diff(expected, stdout); diff != "" {
		t.Errorf("stdout (-want, +got):\n%s", diff)
	}
}

func TestSoundex(t *testing.T) {
	isolate(t)

	stdout, stderr, err := runApp(t, "soundex", "Robert", "Tymczak")
	if err != nil {
		t.Fatalf("Run: %v\nstderr: %s", err, stderr)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if want, got := 3, len(lines); want != got {
		t.Fatalf("lines; want: %d, got: %d\n%s", want, got, stdout)
	}
	if diff := cmp.Diff([]string{"Robert", "R163"}, strings.Fields(lines[1])); diff != "" {
		t.Errorf("row (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Tymczak", "T522"}, strings.Fields(lines[2])); diff != "" {
		t.Errorf("row (-want, +got):\n%s", diff)
	}

	if _, _, err := runApp(t, "soundex"); !errors.Is(err, ErrFlagParse) {
		t.Errorf("Run; want: %v, got: %v", ErrFlagParse, err)
	}
}

func TestVersion(t *testing.T) {
	isolate(t)

	stdout, stderr, err := runApp(t, "--version")
	if err != nil {
		t.Fatalf("Run: %v\nstderr: %s", err, stderr)
	}
	if !strings.Contains(stdout, "GitVersion") {
		t.Errorf("version output: %q", stdout)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      error
		expected int
	}{
		{nil, ExitCodeSuccess},
		{ErrFlagParse, ExitCodeFlagParseError},
		{ErrSearch, ExitCodeSearchError},
		{ErrNoDictionaries, ExitCodeSearchError},
		{errors.New("other"), ExitCodeUnknownError},
	}

	for _, test := range tests {
		if want, got := test.expected, exitCode(test.err); want != got {
			t.Errorf("exitCode(%v); want: %d, got: %d", test.err, want, got)
		}
	}
}
