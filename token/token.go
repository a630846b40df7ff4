package token

import "fmt"

type Kind int

const (
	EOF Kind = iota

	// `+` and `-`.
	OPERATOR

	// Literals.
	INTEGER
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case OPERATOR:
		return "OPERATOR"
	case INTEGER:
		return "INTEGER"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a lexeme of an expression.
// Pos is the byte offset of the lexeme in the source.
// Literal holds the value of an INTEGER and is zero for other kinds.
type Token struct {
	Kind    Kind
	Lexeme  string
	Pos     int
	Literal int32
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %d, %v}", t.Kind, t.Lexeme, t.Pos, t.Literal)
}

// IsOperator reports whether t is the operator op.
func (t Token) IsOperator(op rune) bool {
	return t.Kind == OPERATOR && t.Lexeme == string(op)
}
