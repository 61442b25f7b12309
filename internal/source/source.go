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

// Package source supplies input to the scanner one positioned codepoint
// at a time, buffering one physical line of input at a time.
package source

import (
	"bufio"
	"errors"
	"io"

	"github.com/ianlewis/runeio"
)

// EOF is a rune that indicates the end of the input stream.
var EOF rune = -1

// Char is a single codepoint of input tagged with its source position.
type Char struct {
	// Rune is the codepoint, or EOF once the input is exhausted.
	Rune rune

	// Line is the 1-based line number.
	Line int

	// Col is the 0-based codepoint index within the line.
	Col int
}

// Reader reads input one physical line at a time and hands it out one
// codepoint at a time. Once the input is exhausted every subsequent
// call to Next returns the EOF sentinel.
type Reader struct {
	// r is the underlying reader to read from.
	r *runeio.RuneReader

	// buf holds the current physical line.
	buf []rune

	// cursor is the index in buf of the next unread codepoint.
	cursor int

	// line is the 1-based number of the buffered line.
	line int

	// done is set when the input has been exhausted.
	done bool

	// err is the first error the reader encountered.
	err error
}

// NewReader creates a Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	// If already a *bufio.Reader, use it directly.
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &Reader{r: runeio.NewReader(br)}
}

// Next returns the next codepoint of input. It never fails: when the
// input is exhausted, or when an underlying read error occurs, it
// returns the EOF sentinel on this and every subsequent call. Read
// errors are reported by Err.
func (r *Reader) Next() Char {
	for {
		if r.cursor < len(r.buf) {
			col := r.cursor
			r.cursor++
			return Char{Rune: r.buf[col], Line: r.line, Col: col}
		}

		if r.done {
			return Char{Rune: EOF, Line: r.line, Col: 0}
		}

		r.fill()
	}
}

// fill replaces the line buffer with the next physical line of input.
// A final line that ends without a line terminator gets one appended so
// line-termination handling is uniform.
func (r *Reader) fill() {
	r.buf = r.buf[:0]
	r.cursor = 0

	for {
		rn, _, err := r.r.ReadRune()
		if err != nil {
			r.setErr(err)
			if len(r.buf) == 0 {
				r.done = true
			} else {
				r.buf = append(r.buf, '\n')
			}
			break
		}

		r.buf = append(r.buf, rn)
		if rn == '\n' {
			break
		}
	}

	// The sentinel is positioned on the line after the last line of
	// input.
	r.line++
}

// Err returns the first non-EOF error encountered by the reader, if
// any.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) setErr(err error) {
	if r.err == nil && !errors.Is(err, io.EOF) {
		r.err = err
	}
}
