package codegen

import (
	"fmt"
	"io"

	"github.com/takoeight0821/addsub/lexer"
	"github.com/takoeight0821/addsub/parser"
	"github.com/takoeight0821/addsub/token"
)

// Accumulator is the register holding the running value. main returns it.
const Accumulator = "rax"

// Generate compiles source and writes the assembly to w as it is produced.
// On error, lines already written to w are not a valid program.
func Generate(w io.Writer, source string) error {
	e := NewEmitter(w)
	e.Directive(".intel_syntax", "noprefix")
	e.Directive(".global", "main")
	e.Label("main")

	tokens, err := lexer.Lex(source)
	if err != nil {
		return fmt.Errorf("lex: %w", err)
	}

	if err := generate(e, tokens); err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if err := e.Err(); err != nil {
		return fmt.Errorf("emit: %w", err)
	}

	return nil
}

func generate(e *Emitter, tokens []token.Token) error {
	p := parser.NewParser(tokens)

	first, err := p.ExpectNumber()
	if err != nil {
		return err
	}
	e.Instr("mov", Accumulator, first)

	for !p.IsAtEnd() {
		op := "sub"
		if p.Consume('+') {
			op = "add"
		} else if err := p.Expect('-'); err != nil {
			return err
		}

		n, err := p.ExpectNumber()
		if err != nil {
			return err
		}
		e.Instr(op, Accumulator, n)
	}

	e.Instr("ret")

	return nil
}
