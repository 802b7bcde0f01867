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

// Package wordfinder implements a library for searching flat text
// dictionaries in pure Go.
//
// A dictionary is a text file containing one record per line. Each record
// has three fields separated by the '@' character:
//
//	WORD@SPEECH@DEFINITION
//
// Dictionaries may be stored as plain text (.sml or .txt), compressed with
// gzip (.gz) or compressed with dictzip (.dz).
//
// Searches are performed by scanning the dictionary from start to end and
// applying a word filter, and optionally definition filters, to each
// record. Matching records are returned in dictionary order. See the filter
// package for the supported matching strategies.
package wordfinder
