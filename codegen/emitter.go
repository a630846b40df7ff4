package codegen

import (
	"fmt"
	"io"
	"strings"
)

const indent = "    "

// Emitter writes assembly to an io.Writer one line at a time.
// After the first write error, further output is dropped and Err reports the error.
type Emitter struct {
	w   io.Writer
	err error
}

func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

func (e *Emitter) line(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s+"\n")
}

// Directive writes an assembler directive such as `.global main`.
func (e *Emitter) Directive(name string, args ...string) {
	if len(args) == 0 {
		e.line(name)
		return
	}
	e.line(name + " " + strings.Join(args, ", "))
}

func (e *Emitter) Label(name string) {
	e.line(name + ":")
}

// Instr writes an indented instruction. Operands are formatted with fmt.Sprint.
func (e *Emitter) Instr(op string, operands ...any) {
	ss := make([]string, len(operands))
	for i, o := range operands {
		ss[i] = fmt.Sprint(o)
	}
	if len(ss) == 0 {
		e.line(indent + op)
		return
	}
	e.line(indent + op + " " + strings.Join(ss, ", "))
}

func (e *Emitter) Err() error {
	return e.err
}
