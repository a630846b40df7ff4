package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/takoeight0821/addsub/token"
	"golang.org/x/text/width"
	"gopkg.in/yaml.v3"
)

type ErrorAt struct {
	Where token.Token
	Err   error
}

func (e ErrorAt) Error() string {
	if e.Where.Kind == token.EOF {
		return fmt.Sprintf("at end: %s", e.Err.Error())
	}
	return fmt.Sprintf("at %d: `%s`, %s", e.Where.Pos, e.Where.Lexeme, e.Err.Error())
}

func (e ErrorAt) Unwrap() error {
	return e.Err
}

func (e ErrorAt) Offset() int {
	return e.Where.Pos
}

// Offset returns the source offset carried by err, if any.
func Offset(err error) (int, bool) {
	var at interface{ Offset() int }
	if errors.As(err, &at) {
		return at.Offset(), true
	}
	return 0, false
}

// Caret returns the line of source containing pos followed by a line
// with a `^` under the rune at pos.
func Caret(source string, pos int) string {
	pos = max(0, min(pos, len(source)))

	start := strings.LastIndexByte(source[:pos], '\n') + 1
	end := strings.IndexByte(source[pos:], '\n')
	if end < 0 {
		end = len(source)
	} else {
		end += pos
	}

	var b strings.Builder
	b.WriteString(source[start:end])
	b.WriteByte('\n')
	for _, r := range source[start:pos] {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runeWidth(r)))
	}
	b.WriteByte('^')

	return b.String()
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

type TestData struct {
	Label    string
	Enable   bool
	Input    string
	Expected map[string]string
}

func ReadTestData(s []byte) []TestData {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		panic(err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data
}
