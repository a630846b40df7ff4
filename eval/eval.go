// Evaluator computing what a compiled expression returns, for the REPL and tests.
package eval

import (
	"fmt"

	"github.com/takoeight0821/addsub/lexer"
	"github.com/takoeight0821/addsub/parser"
)

// Value is the content of rax when main returns.
type Value int64

func (v Value) String() string {
	return fmt.Sprintf("%d", int64(v))
}

// ExitStatus is the process exit status observed by a shell (the low 8 bits of rax).
func (v Value) ExitStatus() int {
	return int(uint8(v))
}

// Eval evaluates source left to right, following the same grammar as the code generator.
func Eval(source string) (Value, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return 0, fmt.Errorf("lex: %w", err)
	}

	p := parser.NewParser(tokens)
	first, err := p.ExpectNumber()
	if err != nil {
		return 0, fmt.Errorf("parse: %w", err)
	}
	acc := Value(first)

	for !p.IsAtEnd() {
		sign := Value(-1)
		if p.Consume('+') {
			sign = 1
		} else if err := p.Expect('-'); err != nil {
			return 0, fmt.Errorf("parse: %w", err)
		}

		n, err := p.ExpectNumber()
		if err != nil {
			return 0, fmt.Errorf("parse: %w", err)
		}
		acc += sign * Value(n)
	}

	return acc, nil
}
