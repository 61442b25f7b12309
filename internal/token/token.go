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

// Package token defines the token categories of the calculator language
// along with the keyword table and source positions.
package token

import (
	"fmt"
	"strconv"
)

// Type is the category of a token. The set of categories is closed.
type Type int

const (
	// Begin is a dummy category used to prime the parser's lookahead.
	// It never matches any input.
	Begin Type = iota

	// End signals the end of the input stream. Once produced it is
	// produced forever.
	End

	// Keywords.
	Read
	Write
	If
	Fi
	Do
	Od
	Check
	Int
	Real
	Trunc
	Float

	// Ident is an identifier: an alphabetic rune followed by
	// alphanumerics and underscores.
	Ident

	// ILit is an integer literal.
	ILit

	// RLit is a real literal. The category exists in the language's
	// token set but the scanner currently never produces it; see the
	// scanner package.
	RLit

	// Comparison operators.
	Greater   // >
	Lesser    // <
	EqualTo   // ==
	NEqualTo  // !=
	GreaterEq // >=
	LesserEq  // <=

	// Gets is the assignment operator ":=".
	Gets

	// Arithmetic operators.
	Plus  // +
	Minus // -
	Times // *
	DivBy // /

	// Parentheses.
	LParen
	RParen
)

var typeNames = map[Type]string{
	Begin:     "Begin",
	End:       "End",
	Read:      "Read",
	Write:     "Write",
	If:        "If",
	Fi:        "Fi",
	Do:        "Do",
	Od:        "Od",
	Check:     "Check",
	Int:       "Int",
	Real:      "Real",
	Trunc:     "Trunc",
	Float:     "Float",
	Ident:     "Ident",
	ILit:      "ILit",
	RLit:      "RLit",
	Greater:   "Greater",
	Lesser:    "Lesser",
	EqualTo:   "EqualTo",
	NEqualTo:  "NEqualTo",
	GreaterEq: "GreaterEq",
	LesserEq:  "LesserEq",
	Gets:      "Gets",
	Plus:      "Plus",
	Minus:     "Minus",
	Times:     "Times",
	DivBy:     "DivBy",
	LParen:    "LParen",
	RParen:    "RParen",
}

// String returns the category name used in trace output.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// keywords maps reserved words to their token categories.
var keywords = map[string]Type{
	"read":  Read,
	"write": Write,
	"if":    If,
	"fi":    Fi,
	"do":    Do,
	"od":    Od,
	"check": Check,
	"int":   Int,
	"real":  Real,
	"trunc": Trunc,
	"float": Float,
}

// Lookup returns the keyword category for text, or Ident if text is not
// a reserved word.
func Lookup(text string) Type {
	if typ, ok := keywords[text]; ok {
		return typ
	}
	return Ident
}

// Token is a classified piece of input. Text holds the exact matched
// input text; it is only displayed for Ident, ILit, and RLit tokens.
//
// A Token never spans a line boundary: every whitespace rune, including
// the line terminator, ends the token in progress.
type Token struct {
	// Type is the token's category.
	Type Type

	// Text is the matched input text, byte for byte.
	Text string

	// Line is the 1-based source line of the token's first rune.
	Line int

	// Col is the 0-based codepoint index of the token's first rune in
	// its line.
	Col int
}

// String returns a string representation of the Token.
func (t Token) String() string {
	if t.Text == "" {
		return fmt.Sprintf("%d:%d: %s", t.Line, t.Col, t.Type)
	}
	return fmt.Sprintf("%d:%d: %s %q", t.Line, t.Col, t.Type, t.Text)
}
