package driver

import (
	"errors"
	"io"
	"strings"

	"github.com/takoeight0821/addsub/codegen"
	"github.com/takoeight0821/addsub/lexer"
	"github.com/takoeight0821/addsub/parser"
)

type ErrorKind int

const (
	UnknownError ErrorKind = iota
	LexicalError
	GrammarError
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case GrammarError:
		return "grammar error"
	default:
		return "error"
	}
}

// Kind classifies an error returned by Compile or Run.
func Kind(err error) ErrorKind {
	var (
		char     lexer.UnexpectedCharacterError
		overflow lexer.IntegerOverflowError
		tok      parser.UnexpectedTokenError
	)
	switch {
	case errors.As(err, &char), errors.As(err, &overflow):
		return LexicalError
	case errors.As(err, &tok):
		return GrammarError
	default:
		return UnknownError
	}
}

// Compile returns the assembly for source.
// If an error occurs, it returns an empty string and the error.
func Compile(source string) (string, error) {
	var b strings.Builder
	if err := codegen.Generate(&b, source); err != nil {
		return "", err
	}

	return b.String(), nil
}

// Run compiles source and writes the program to w.
// Nothing is written unless compilation succeeds.
func Run(w io.Writer, source string) error {
	asm, err := Compile(source)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, asm)

	return err
}
