// Copyright 2023 Varun Kumar
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

package source

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

// readAll pulls codepoints until the EOF sentinel, returning everything
// including the sentinel itself.
func readAll(r *Reader) []Char {
	var chars []Char
	for {
		c := r.Next()
		chars = append(chars, c)
		if c.Rune == EOF {
			return chars
		}
	}
}

func TestReader_Next(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []Char
	}{
		{
			name:  "two terminated lines",
			input: "ab\ncd\n",
			expected: []Char{
				{Rune: 'a', Line: 1, Col: 0},
				{Rune: 'b', Line: 1, Col: 1},
				{Rune: '\n', Line: 1, Col: 2},
				{Rune: 'c', Line: 2, Col: 0},
				{Rune: 'd', Line: 2, Col: 1},
				{Rune: '\n', Line: 2, Col: 2},
				{Rune: EOF, Line: 3, Col: 0},
			},
		},
		{
			name:  "missing final terminator gets one appended",
			input: "ab\ncd",
			expected: []Char{
				{Rune: 'a', Line: 1, Col: 0},
				{Rune: 'b', Line: 1, Col: 1},
				{Rune: '\n', Line: 1, Col: 2},
				{Rune: 'c', Line: 2, Col: 0},
				{Rune: 'd', Line: 2, Col: 1},
				{Rune: '\n', Line: 2, Col: 2},
				{Rune: EOF, Line: 3, Col: 0},
			},
		},
		{
			name:  "empty input",
			input: "",
			expected: []Char{
				{Rune: EOF, Line: 1, Col: 0},
			},
		},
		{
			name:  "multi-byte codepoints advance columns by one",
			input: "αβ c",
			expected: []Char{
				{Rune: 'α', Line: 1, Col: 0},
				{Rune: 'β', Line: 1, Col: 1},
				{Rune: ' ', Line: 1, Col: 2},
				{Rune: 'c', Line: 1, Col: 3},
				{Rune: '\n', Line: 1, Col: 4},
				{Rune: EOF, Line: 2, Col: 0},
			},
		},
		{
			name:  "blank line",
			input: "\n",
			expected: []Char{
				{Rune: '\n', Line: 1, Col: 0},
				{Rune: EOF, Line: 2, Col: 0},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := NewReader(strings.NewReader(tc.input))
			got := readAll(r)

			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Next (-want +got):\n%s", diff)
			}
			if err := r.Err(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestReader_sentinelIsPermanent(t *testing.T) {
	t.Parallel()

	r := NewReader(strings.NewReader("x"))
	readAll(r)

	want := Char{Rune: EOF, Line: 2, Col: 0}
	for i := 0; i < 3; i++ {
		if diff := cmp.Diff(want, r.Next()); diff != "" {
			t.Errorf("Next after EOF (-want +got):\n%s", diff)
		}
	}
}

func TestReader_readError(t *testing.T) {
	t.Parallel()

	errRead := errors.New("read failed")
	r := NewReader(iotest.ErrReader(errRead))

	c := r.Next()
	if c.Rune != EOF {
		t.Errorf("Next: want EOF sentinel, got %q", c.Rune)
	}
	if err := r.Err(); !errors.Is(err, errRead) {
		t.Errorf("Err: want %v, got %v", errRead, err)
	}

	// The reader keeps returning the sentinel after an error.
	if c := r.Next(); c.Rune != EOF {
		t.Errorf("Next after error: want EOF sentinel, got %q", c.Rune)
	}
}
