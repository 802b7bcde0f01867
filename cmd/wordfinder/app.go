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
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-wordfinder/internal/config"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError

	// ExitCodeSearchError is the exit code used when one or more
	// dictionaries could not be searched.
	ExitCodeSearchError
)

// ErrWordfinder is a parent error for all command errors.
var ErrWordfinder = errors.New("wordfinder")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrWordfinder)

// ErrSearch indicates that one or more dictionaries could not be searched.
var ErrSearch = fmt.Errorf("%w: searching dictionaries", ErrWordfinder)

// ErrNoDictionaries indicates that no dictionaries were found.
var ErrNoDictionaries = fmt.Errorf("%w: no dictionaries found", ErrWordfinder)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

const (
	configKey = "config"
	loggerKey = "logger"
)

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	case errors.Is(err, ErrSearch), errors.Is(err, ErrNoDictionaries):
		return ExitCodeSearchError
	default:
		return ExitCodeUnknownError
	}
}

func newWordfinderApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Search word list dictionaries.",
		Description: strings.Join([]string{
			"Find words by substring, wildcard, regular expression, soundex or anagram.",
			"http://github.com/ianlewis/go-wordfinder",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				EnvVars: []string{config.EnvPath},
			},
			&cli.StringSliceFlag{
				Name:    "data-dir",
				Usage:   "include dictionaries in `DIR`",
				Aliases: []string{"d"},
				Value:   cli.NewStringSlice(dictLocations()...),
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log at `LEVEL` (" + strings.Join(config.LogLevels, "|") + ")",
				DefaultText: "warn",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		HideVersion:     true,
		Metadata:        map[string]interface{}{},
		Before:          setup,
		OnUsageError:    usageError,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			queryCommand,
			listCommand,
			tokenizeCommand,
			soundexCommand,
		},
	}
}

func usageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

// setup loads the configuration and creates the logger used by commands.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}

	logger, err := newLogger(c.App.ErrWriter, cfg.Log)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	c.App.Metadata[configKey] = cfg
	c.App.Metadata[loggerKey] = logger
	return nil
}

func appConfig(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	// NOTE: setup always runs before commands so this is unreachable in
	// practice.
	panic("configuration not loaded")
}

func appLogger(c *cli.Context) *slog.Logger {
	if logger, ok := c.App.Metadata[loggerKey].(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, "%s %s\n", c.App.Name, versionInfo.GitVersion)
	check(err)
	_, err = fmt.Fprintln(c.App.Writer, strings.Join(copyrightNames, "\n"))
	check(err)
	_, err = fmt.Fprintln(c.App.Writer, "")
	check(err)
	_, err = fmt.Fprint(c.App.Writer, versionInfo.String())
	check(err)
	return nil
}
