/*
 * SignedMath - Checked signed fixed-width integer arithmetic
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/onflow/signedmath"
)

// Expression parsing and evaluation for the calculator REPL.
//
// Grammar:
//
//	expression : term (('+' | '-') term)*
//	term       : factor (('*' | '/' | '%') factor)*
//	factor     : '-' factor | '(' expression ')' | number
//
// Numbers are decimal integer literals; underscores may be used as
// digit separators, e.g. 1_000_000.

type tokenType uint8

const (
	tokenEOF tokenType = iota
	tokenNumber
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenPercent
	tokenParenOpen
	tokenParenClose
)

type token struct {
	typ  tokenType
	text string
	pos  int
}

func lex(input string) ([]token, error) {
	var tokens []token

	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]

		switch {
		case unicode.IsSpace(r):
			i++

		case unicode.IsDigit(r):
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			tokens = append(tokens, token{
				typ:  tokenNumber,
				text: string(runes[start:i]),
				pos:  start,
			})

		default:
			var typ tokenType
			switch r {
			case '+':
				typ = tokenPlus
			case '-':
				typ = tokenMinus
			case '*':
				typ = tokenStar
			case '/':
				typ = tokenSlash
			case '%':
				typ = tokenPercent
			case '(':
				typ = tokenParenOpen
			case ')':
				typ = tokenParenClose
			default:
				return nil, fmt.Errorf("unexpected character %q at position %d", r, i)
			}
			tokens = append(tokens, token{
				typ:  typ,
				text: string(r),
				pos:  i,
			})
			i++
		}
	}

	tokens = append(tokens, token{
		typ: tokenEOF,
		pos: len(runes),
	})

	return tokens, nil
}

type parser struct {
	tokens []token
	cur    int
}

func (p *parser) current() token {
	return p.tokens[p.cur]
}

func (p *parser) next() token {
	t := p.tokens[p.cur]
	if t.typ != tokenEOF {
		p.cur++
	}
	return t
}

// evaluate parses the given input as an arithmetic expression and evaluates
// it using checked Int256 operations.
func evaluate(input string) (signedmath.Int256, error) {
	tokens, err := lex(input)
	if err != nil {
		return signedmath.Int256{}, err
	}

	p := &parser{tokens: tokens}

	result, err := p.parseExpression()
	if err != nil {
		return signedmath.Int256{}, err
	}

	if t := p.current(); t.typ != tokenEOF {
		return signedmath.Int256{}, fmt.Errorf("unexpected %q at position %d", t.text, t.pos)
	}

	return result, nil
}

func (p *parser) parseExpression() (signedmath.Int256, error) {
	result, err := p.parseTerm()
	if err != nil {
		return signedmath.Int256{}, err
	}

	for {
		switch p.current().typ {
		case tokenPlus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return signedmath.Int256{}, err
			}
			result, err = result.Plus(right)
			if err != nil {
				return signedmath.Int256{}, err
			}

		case tokenMinus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return signedmath.Int256{}, err
			}
			result, err = result.Minus(right)
			if err != nil {
				return signedmath.Int256{}, err
			}

		default:
			return result, nil
		}
	}
}

func (p *parser) parseTerm() (signedmath.Int256, error) {
	result, err := p.parseFactor()
	if err != nil {
		return signedmath.Int256{}, err
	}

	for {
		switch p.current().typ {
		case tokenStar:
			p.next()
			right, err := p.parseFactor()
			if err != nil {
				return signedmath.Int256{}, err
			}
			result, err = result.Mul(right)
			if err != nil {
				return signedmath.Int256{}, err
			}

		case tokenSlash:
			p.next()
			right, err := p.parseFactor()
			if err != nil {
				return signedmath.Int256{}, err
			}
			result, err = result.Div(right)
			if err != nil {
				return signedmath.Int256{}, err
			}

		case tokenPercent:
			p.next()
			right, err := p.parseFactor()
			if err != nil {
				return signedmath.Int256{}, err
			}
			result, err = result.Mod(right)
			if err != nil {
				return signedmath.Int256{}, err
			}

		default:
			return result, nil
		}
	}
}

func (p *parser) parseFactor() (signedmath.Int256, error) {
	t := p.next()

	switch t.typ {
	case tokenMinus:
		operand, err := p.parseFactor()
		if err != nil {
			return signedmath.Int256{}, err
		}
		return operand.Negate()

	case tokenParenOpen:
		result, err := p.parseExpression()
		if err != nil {
			return signedmath.Int256{}, err
		}
		if closing := p.next(); closing.typ != tokenParenClose {
			return signedmath.Int256{}, fmt.Errorf("missing ')' at position %d", closing.pos)
		}
		return result, nil

	case tokenNumber:
		literal := strings.ReplaceAll(t.text, "_", "")
		value, ok := new(big.Int).SetString(literal, 10)
		if !ok {
			return signedmath.Int256{}, fmt.Errorf("invalid integer literal %q at position %d", t.text, t.pos)
		}
		return signedmath.NewInt256FromBig(value)

	case tokenEOF:
		return signedmath.Int256{}, fmt.Errorf("unexpected end of expression")

	default:
		return signedmath.Int256{}, fmt.Errorf("unexpected %q at position %d", t.text, t.pos)
	}
}
