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
	"errors"
)

var (
	// ErrSourceUnavailable indicates that a dictionary could not be opened or
	// read.
	ErrSourceUnavailable = errors.New("dictionary unavailable")

	// ErrUnsupportedFormat indicates that a file is not a supported dictionary
	// format.
	ErrUnsupportedFormat = errors.New("unsupported dictionary format")

	// ErrNoWordFilter indicates that a query is missing its word filter.
	ErrNoWordFilter = errors.New("word filter required")
)
