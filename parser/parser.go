package parser

import (
	"strings"

	"github.com/takoeight0821/addsub/token"
	"github.com/takoeight0821/addsub/utils"
)

// expr = INTEGER (("+" | "-") INTEGER)* ;
//
// Parser does not build a tree. The code generator drives the grammar
// through Consume, Expect, ExpectNumber and IsAtEnd.
type Parser struct {
	tokens  []token.Token
	current int
}

// NewParser returns a parser over tokens, which must end with an EOF token.
func NewParser(tokens []token.Token) *Parser {
	return &Parser{tokens, 0}
}

func (p Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) advance() token.Token {
	if !p.IsAtEnd() {
		p.current++
	}

	return p.previous()
}

func (p Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p Parser) IsAtEnd() bool {
	return p.peek().Kind == token.EOF
}

// Consume advances past the next token if it is the operator op.
func (p *Parser) Consume(op rune) bool {
	if p.peek().IsOperator(op) {
		p.advance()

		return true
	}

	return false
}

// Expect is like Consume but reports an error when the next token is not op.
func (p *Parser) Expect(op rune) error {
	if p.Consume(op) {
		return nil
	}

	return unexpectedToken(p.peek(), "`"+string(op)+"`")
}

func (p *Parser) ExpectNumber() (int32, error) {
	if p.peek().Kind == token.INTEGER {
		return p.advance().Literal, nil
	}

	return 0, unexpectedToken(p.peek(), "number")
}

type UnexpectedTokenError struct {
	Expected []string
}

func (e UnexpectedTokenError) Error() string {
	return "unexpected token: expected " + strings.Join(e.Expected, ", ")
}

func unexpectedToken(t token.Token, expected ...string) error {
	return utils.ErrorAt{Where: t, Err: UnexpectedTokenError{Expected: expected}}
}
