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

// Package parser implements a predictive recursive-descent syntax
// checker for the calculator language.
//
// The grammar:
//
//	program     --> stmt_list $$
//	stmt_list   --> stmt stmt_list | ε
//	type        --> int | real | ε
//	stmt        --> ident := expr
//	              | read type ident
//	              | write expr
//	              | if comp stmt_list fi
//	              | do stmt_list od
//	              | check comp
//	              | int ident := expr
//	              | real ident := expr
//	comp        --> expr comp_op expr
//	expr        --> term term_tail
//	term        --> factor factor_tail
//	term_tail   --> add_op term term_tail | ε
//	factor      --> ident | i_lit | r_lit | ( expr )
//	factor_tail --> mul_op factor factor_tail | ε
//	comp_op     --> > | < | == | != | >= | <=
//	add_op      --> + | -
//	mul_op      --> * | /
//
// Each nonterminal is a method that selects a production by matching
// the lookahead token against the production's FIRST set, or against
// the nonterminal's FOLLOW set for the ε alternatives. The parser
// builds no syntax tree; its output is a trace of predicted productions
// and matched terminals written to an io.Writer.
package parser

import (
	"fmt"
	"io"

	"github.com/varunkumar0520/CSC-254---A2/internal/scanner"
	"github.com/varunkumar0520/CSC-254---A2/internal/token"
)

// SyntaxError is returned when the lookahead token fits no production
// of the current nonterminal. It is not recoverable.
type SyntaxError struct {
	// Line is the 1-based source line of the offending token.
	Line int
}

// Error implements error.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error on line %d", e.Line)
}

// set is a set of token categories.
type set map[token.Type]bool

func newSet(types ...token.Type) set {
	s := make(set, len(types))
	for _, t := range types {
		s[t] = true
	}
	return s
}

func union(sets ...set) set {
	u := set{}
	for _, s := range sets {
		for t := range s {
			u[t] = true
		}
	}
	return u
}

// FIRST sets of the grammar's nonterminals.
var (
	firstStmt = newSet(
		token.Ident, token.Read, token.Write, token.If,
		token.Do, token.Check, token.Int, token.Real,
	)

	firstExpr = newSet(token.Ident, token.ILit, token.RLit, token.LParen)

	firstCompOp = newSet(
		token.Greater, token.Lesser, token.EqualTo,
		token.NEqualTo, token.GreaterEq, token.LesserEq,
	)

	firstAddOp = newSet(token.Plus, token.Minus)

	firstMulOp = newSet(token.Times, token.DivBy)
)

// FOLLOW sets used to select the ε productions. These must equal the
// true FOLLOW sets of the grammar; follow_test.go recomputes them from
// the production table and checks these values against the result.
var (
	followStmtList = newSet(token.End, token.Fi, token.Od)

	followType = newSet(token.Ident)

	followTermTail = union(
		firstStmt,
		firstCompOp,
		newSet(token.End, token.Fi, token.Od, token.RParen),
	)

	followFactorTail = union(followTermTail, firstAddOp)
)

// Options control the parser's trace output.
type Options struct {
	// Quiet suppresses the predict/matched trace. Errors are still
	// returned.
	Quiet bool
}

// Parser checks the syntax of a calculator program. It always holds
// exactly one already-fetched lookahead token before any nonterminal
// method runs; the constructor seeds it with a [token.Begin] dummy
// that never matches input.
type Parser struct {
	// s is the underlying scanner.
	s *scanner.Scanner

	// next is the lookahead token, already peeked at.
	next token.Token

	// w receives the trace output.
	w io.Writer

	opts Options
}

// New creates a Parser reading tokens from s and writing its trace to
// w.
func New(s *scanner.Scanner, w io.Writer, opts Options) *Parser {
	return &Parser{
		s:    s,
		next: token.Token{Type: token.Begin},
		w:    w,
		opts: opts,
	}
}

// Parse checks the entire input. It returns nil when the input is a
// valid program, a *SyntaxError or *scanner.LexicalError otherwise.
// The trace lines emitted before a failure remain valid output.
func (p *Parser) Parse() error {
	if err := p.advance(); err != nil {
		return err
	}
	return p.program()
}

// advance replaces the lookahead with the next token.
func (p *Parser) advance() error {
	tok, err := p.s.Scan()
	if err != nil {
		return err
	}
	p.next = tok
	return nil
}

// eat matches the lookahead against the expected terminal, emits the
// matched trace line, and advances. This is the sole detection point
// for terminal mismatches.
func (p *Parser) eat(expected token.Type) error {
	if p.next.Type != expected {
		return p.syntaxError()
	}

	switch expected {
	case token.Ident, token.ILit, token.RLit:
		p.tracef("matched %s: %s\n", expected, p.next.Text)
	default:
		p.tracef("matched %s\n", expected)
	}

	return p.advance()
}

func (p *Parser) predict(nt, rhs string) {
	p.tracef("predict %s --> %s\n", nt, rhs)
}

func (p *Parser) tracef(format string, args ...any) {
	if p.opts.Quiet {
		return
	}
	fmt.Fprintf(p.w, format, args...)
}

func (p *Parser) syntaxError() error {
	return &SyntaxError{Line: p.next.Line}
}

func (p *Parser) program() error {
	switch {
	case firstStmt[p.next.Type] || p.next.Type == token.End:
		p.predict("program", "stmt_list $$")
		if err := p.stmtList(); err != nil {
			return err
		}
		return p.eat(token.End)
	default:
		return p.syntaxError()
	}
}

func (p *Parser) stmtList() error {
	switch {
	case firstStmt[p.next.Type]:
		p.predict("stmt_list", "stmt stmt_list")
		if err := p.stmt(); err != nil {
			return err
		}
		return p.stmtList()
	case followStmtList[p.next.Type]:
		p.predict("stmt_list", "epsilon")
		return nil
	default:
		return p.syntaxError()
	}
}

// typ handles the nonterminal named "type" in the grammar.
func (p *Parser) typ() error {
	switch {
	case p.next.Type == token.Int:
		p.predict("type", "int")
		return p.eat(token.Int)
	case p.next.Type == token.Real:
		p.predict("type", "real")
		return p.eat(token.Real)
	case followType[p.next.Type]:
		p.predict("type", "epsilon")
		return nil
	default:
		return p.syntaxError()
	}
}

func (p *Parser) stmt() error {
	switch p.next.Type {
	case token.Ident:
		p.predict("stmt", "ident gets expr")
		if err := p.eat(token.Ident); err != nil {
			return err
		}
		if err := p.eat(token.Gets); err != nil {
			return err
		}
		return p.expr()
	case token.Read:
		p.predict("stmt", "read type ident")
		if err := p.eat(token.Read); err != nil {
			return err
		}
		if err := p.typ(); err != nil {
			return err
		}
		return p.eat(token.Ident)
	case token.Write:
		p.predict("stmt", "write expr")
		if err := p.eat(token.Write); err != nil {
			return err
		}
		return p.expr()
	case token.If:
		p.predict("stmt", "if comp stmt_list fi")
		if err := p.eat(token.If); err != nil {
			return err
		}
		if err := p.comp(); err != nil {
			return err
		}
		if err := p.stmtList(); err != nil {
			return err
		}
		return p.eat(token.Fi)
	case token.Do:
		p.predict("stmt", "do stmt_list od")
		if err := p.eat(token.Do); err != nil {
			return err
		}
		if err := p.stmtList(); err != nil {
			return err
		}
		return p.eat(token.Od)
	case token.Check:
		p.predict("stmt", "check comp")
		if err := p.eat(token.Check); err != nil {
			return err
		}
		return p.comp()
	case token.Int:
		p.predict("stmt", "int ident gets expr")
		if err := p.eat(token.Int); err != nil {
			return err
		}
		if err := p.eat(token.Ident); err != nil {
			return err
		}
		if err := p.eat(token.Gets); err != nil {
			return err
		}
		return p.expr()
	case token.Real:
		p.predict("stmt", "real ident gets expr")
		if err := p.eat(token.Real); err != nil {
			return err
		}
		if err := p.eat(token.Ident); err != nil {
			return err
		}
		if err := p.eat(token.Gets); err != nil {
			return err
		}
		return p.expr()
	default:
		return p.syntaxError()
	}
}

func (p *Parser) comp() error {
	switch {
	case firstExpr[p.next.Type]:
		p.predict("comp", "expr comp_op expr")
		if err := p.expr(); err != nil {
			return err
		}
		if err := p.compOp(); err != nil {
			return err
		}
		return p.expr()
	default:
		return p.syntaxError()
	}
}

func (p *Parser) expr() error {
	switch {
	case firstExpr[p.next.Type]:
		p.predict("expr", "term term_tail")
		if err := p.term(); err != nil {
			return err
		}
		return p.termTail()
	default:
		return p.syntaxError()
	}
}

func (p *Parser) term() error {
	switch {
	case firstExpr[p.next.Type]:
		p.predict("term", "factor factor_tail")
		if err := p.factor(); err != nil {
			return err
		}
		return p.factorTail()
	default:
		return p.syntaxError()
	}
}

func (p *Parser) termTail() error {
	switch {
	case firstAddOp[p.next.Type]:
		p.predict("term_tail", "add_op term term_tail")
		if err := p.addOp(); err != nil {
			return err
		}
		if err := p.term(); err != nil {
			return err
		}
		return p.termTail()
	case followTermTail[p.next.Type]:
		p.predict("term_tail", "epsilon")
		return nil
	default:
		return p.syntaxError()
	}
}

func (p *Parser) factor() error {
	switch p.next.Type {
	case token.Ident:
		p.predict("factor", "ident")
		return p.eat(token.Ident)
	case token.ILit:
		p.predict("factor", "i_lit")
		return p.eat(token.ILit)
	case token.RLit:
		p.predict("factor", "r_lit")
		return p.eat(token.RLit)
	case token.LParen:
		p.predict("factor", "lparen expr rparen")
		if err := p.eat(token.LParen); err != nil {
			return err
		}
		if err := p.expr(); err != nil {
			return err
		}
		return p.eat(token.RParen)
	default:
		return p.syntaxError()
	}
}

func (p *Parser) factorTail() error {
	switch {
	case firstMulOp[p.next.Type]:
		p.predict("factor_tail", "mul_op factor factor_tail")
		if err := p.mulOp(); err != nil {
			return err
		}
		if err := p.factor(); err != nil {
			return err
		}
		return p.factorTail()
	case followFactorTail[p.next.Type]:
		p.predict("factor_tail", "epsilon")
		return nil
	default:
		return p.syntaxError()
	}
}

func (p *Parser) compOp() error {
	switch p.next.Type {
	case token.Greater:
		p.predict("comp_op", "greater")
		return p.eat(token.Greater)
	case token.Lesser:
		p.predict("comp_op", "lesser")
		return p.eat(token.Lesser)
	case token.EqualTo:
		p.predict("comp_op", "equalto")
		return p.eat(token.EqualTo)
	case token.NEqualTo:
		p.predict("comp_op", "nequalto")
		return p.eat(token.NEqualTo)
	case token.GreaterEq:
		p.predict("comp_op", "greatereq")
		return p.eat(token.GreaterEq)
	case token.LesserEq:
		p.predict("comp_op", "lessereq")
		return p.eat(token.LesserEq)
	default:
		return p.syntaxError()
	}
}

func (p *Parser) addOp() error {
	switch p.next.Type {
	case token.Plus:
		p.predict("add_op", "plus")
		return p.eat(token.Plus)
	case token.Minus:
		p.predict("add_op", "minus")
		return p.eat(token.Minus)
	default:
		return p.syntaxError()
	}
}

func (p *Parser) mulOp() error {
	switch p.next.Type {
	case token.Times:
		p.predict("mul_op", "times")
		return p.eat(token.Times)
	case token.DivBy:
		p.predict("mul_op", "div_by")
		return p.eat(token.DivBy)
	default:
		return p.syntaxError()
	}
}
