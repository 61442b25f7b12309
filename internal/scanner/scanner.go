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

// Package scanner groups source codepoints into calculator-language
// tokens.
//
// Literals are runs of ASCII digits. Identifiers start with a Unicode
// alphabetic and continue with alphanumerics and underscores. All
// whitespace is discarded, so no token ever spans a line boundary.
package scanner

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/varunkumar0520/CSC-254---A2/internal/source"
	"github.com/varunkumar0520/CSC-254---A2/internal/token"
)

// LexicalError is returned when a character sequence cannot be
// classified into any token. It is not recoverable.
type LexicalError struct {
	// After is the operator rune that required a following '=', or
	// zero when the error is a bare unexpected character.
	After rune

	// Got is the offending rune.
	Got rune

	// Line and Col locate the offending rune.
	Line int
	Col  int
}

// Error implements error.
func (e *LexicalError) Error() string {
	got := fmt.Sprintf("'%c' (0x%x)", e.Got, e.Got)
	if e.Got == source.EOF {
		got = "end of input"
	}
	if e.After != 0 {
		return fmt.Sprintf("expected '=' after '%c', got %s", e.After, got)
	}
	return fmt.Sprintf("unexpected character %s", got)
}

// Scanner turns a stream of positioned codepoints into tokens. It
// always holds exactly one already-fetched lookahead codepoint before
// any call to Scan.
type Scanner struct {
	// src is the underlying source reader.
	src *source.Reader

	// next is the lookahead codepoint, already peeked at.
	next source.Char
}

// New creates a Scanner reading from src. The lookahead is primed with
// a dummy whitespace codepoint which is discarded by the first Scan.
func New(src *source.Reader) *Scanner {
	return &Scanner{
		src:  src,
		next: source.Char{Rune: ' '},
	}
}

// Scan returns the next token. At the end of the input it returns a
// token of type [token.End] on this and every subsequent call. It
// fails with a *LexicalError when the input cannot be tokenized, and
// with a wrapped I/O error when the source reader failed.
func (s *Scanner) Scan() (token.Token, error) {
	for unicode.IsSpace(s.next.Rune) {
		s.next = s.src.Next()
	}
	line, col := s.next.Line, s.next.Col

	if s.next.Rune == source.EOF {
		if err := s.src.Err(); err != nil {
			return token.Token{}, fmt.Errorf("reading input: %w", err)
		}
		return token.Token{Type: token.End, Line: line, Col: col}, nil
	}

	if unicode.IsLetter(s.next.Rune) {
		return s.word(line, col), nil
	}

	if isDigit(s.next.Rune) {
		return s.number(line, col), nil
	}

	return s.operator(line, col)
}

// word scans a maximal run of alphanumeric-or-underscore codepoints and
// classifies it via the keyword table.
func (s *Scanner) word(line, col int) token.Token {
	var text strings.Builder
	for {
		text.WriteRune(s.next.Rune)
		s.next = s.src.Next()
		if s.next.Rune != '_' && !unicode.IsLetter(s.next.Rune) && !unicode.IsDigit(s.next.Rune) {
			break
		}
	}

	t := text.String()
	return token.Token{Type: token.Lookup(t), Text: t, Line: line, Col: col}
}

// number scans a maximal run of digits. A '.' encountered in the run is
// consumed into the text but does not change the classification: the
// token is an integer literal either way, so token.RLit is never
// produced.
func (s *Scanner) number(line, col int) token.Token {
	var text strings.Builder
	for {
		text.WriteRune(s.next.Rune)
		s.next = s.src.Next()
		if !isDigit(s.next.Rune) && s.next.Rune != '.' {
			break
		}
	}

	return token.Token{Type: token.ILit, Text: text.String(), Line: line, Col: col}
}

// operator scans a one- or two-codepoint operator.
func (s *Scanner) operator(line, col int) (token.Token, error) {
	rn := s.next.Rune
	s.next = s.src.Next()

	switch rn {
	case '+':
		return s.single(token.Plus, rn, line, col), nil
	case '-':
		return s.single(token.Minus, rn, line, col), nil
	case '*':
		return s.single(token.Times, rn, line, col), nil
	case '/':
		return s.single(token.DivBy, rn, line, col), nil
	case '(':
		return s.single(token.LParen, rn, line, col), nil
	case ')':
		return s.single(token.RParen, rn, line, col), nil
	case ':':
		return s.pair(token.Gets, rn, line, col)
	case '=':
		return s.pair(token.EqualTo, rn, line, col)
	case '!':
		return s.pair(token.NEqualTo, rn, line, col)
	case '<':
		if s.next.Rune == '=' {
			s.next = s.src.Next()
			return token.Token{Type: token.LesserEq, Text: "<=", Line: line, Col: col}, nil
		}
		return s.single(token.Lesser, rn, line, col), nil
	case '>':
		if s.next.Rune == '=' {
			s.next = s.src.Next()
			return token.Token{Type: token.GreaterEq, Text: ">=", Line: line, Col: col}, nil
		}
		return s.single(token.Greater, rn, line, col), nil
	default:
		return token.Token{}, &LexicalError{Got: rn, Line: line, Col: col}
	}
}

func (s *Scanner) single(typ token.Type, rn rune, line, col int) token.Token {
	return token.Token{Type: typ, Text: string(rn), Line: line, Col: col}
}

// pair completes a two-codepoint operator whose second codepoint must
// be '='.
func (s *Scanner) pair(typ token.Type, first rune, line, col int) (token.Token, error) {
	if s.next.Rune != '=' {
		return token.Token{}, &LexicalError{
			After: first,
			Got:   s.next.Rune,
			Line:  s.next.Line,
			Col:   s.next.Col,
		}
	}

	s.next = s.src.Next()
	return token.Token{Type: typ, Text: string(first) + "=", Line: line, Col: col}, nil
}

// isDigit reports whether rn is an ASCII decimal digit.
func isDigit(rn rune) bool {
	return rn >= '0' && rn <= '9'
}
