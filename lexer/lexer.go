package lexer

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/takoeight0821/addsub/token"
)

// Lex splits source into tokens. The result always ends with exactly one EOF token.
// Lexing stops at the first error.
func Lex(source string) ([]token.Token, error) {
	lexer := lexer{
		source:  source,
		tokens:  []token.Token{},
		start:   0,
		current: 0,
	}

	for !lexer.isAtEnd() {
		if err := lexer.scanToken(); err != nil {
			return nil, err
		}
	}

	lexer.tokens = append(lexer.tokens, token.Token{Kind: token.EOF, Lexeme: "", Pos: lexer.current, Literal: 0})

	return lexer.tokens, nil
}

type lexer struct {
	source string
	tokens []token.Token

	start   int // start of current lexeme
	current int // current position in source
}

func (l lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

// rest is the unconsumed part of the source.
func (l lexer) rest() string {
	return l.source[l.current:]
}

func (l *lexer) advance() rune {
	runeValue, width := utf8.DecodeRuneInString(l.rest())
	l.current += width

	return runeValue
}

func (l *lexer) addToken(kind token.Kind, literal int32) {
	text := l.source[l.start:l.current]
	l.tokens = append(l.tokens, token.Token{Kind: kind, Lexeme: text, Pos: l.start, Literal: literal})
}

type UnexpectedCharacterError struct {
	Pos  int
	Char rune
}

func (e UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character: %c at %d", e.Char, e.Pos)
}

func (e UnexpectedCharacterError) Offset() int {
	return e.Pos
}

func (l *lexer) scanToken() error {
	l.start = l.current
	char := l.advance()
	switch {
	case unicode.IsSpace(char):
		// ignore whitespace
		return nil
	case char == '+' || char == '-':
		l.addToken(token.OPERATOR, 0)

		return nil
	case isDigit(char):
		return l.integer()
	}

	return UnexpectedCharacterError{Pos: l.start, Char: char}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (l *lexer) integer() error {
	value, rest, err := ScanNumber(l.source[l.start:])
	if overflow, ok := err.(IntegerOverflowError); ok {
		overflow.Pos = l.start

		return overflow
	}
	l.current = len(l.source) - len(rest)
	l.addToken(token.INTEGER, value)

	return nil
}

type IntegerOverflowError struct {
	Pos    int
	Digits string
}

func (e IntegerOverflowError) Error() string {
	return fmt.Sprintf("integer literal %s overflows int32 at %d", e.Digits, e.Pos)
}

func (e IntegerOverflowError) Offset() int {
	return e.Pos
}

// ScanNumber reads the longest run of decimal digits at the start of text.
// It returns the value of the run and the rest of text.
// If text does not start with a digit, it returns (0, text, nil).
// A run whose value does not fit in int32 is rejected with IntegerOverflowError.
func ScanNumber(text string) (int32, string, error) {
	var value int64
	for i := 0; i < len(text); i++ {
		if !isDigit(rune(text[i])) {
			return int32(value), text[i:], nil
		}
		value = value*10 + int64(text[i]-'0')
		if value > math.MaxInt32 {
			end := i
			for end < len(text) && isDigit(rune(text[end])) {
				end++
			}

			return 0, text[end:], IntegerOverflowError{Digits: text[:end]}
		}
	}

	return int32(value), "", nil
}
