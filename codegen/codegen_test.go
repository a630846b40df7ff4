package codegen_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/addsub/codegen"
	"github.com/takoeight0821/addsub/utils"
)

func TestGenerateFromTestData(t *testing.T) {
	t.Parallel()
	s, err := os.ReadFile("../testdata/testcase.yaml")
	if err != nil {
		panic(err)
	}
	testcases := utils.ReadTestData(s)
	for _, testcase := range testcases {
		var b strings.Builder
		err := codegen.Generate(&b, testcase.Input)

		if expected, ok := testcase.Expected["error"]; ok {
			if err == nil {
				t.Errorf("Generate %s succeeded, expected error %q", testcase.Label, expected)
			} else if diff := cmp.Diff(expected, err.Error()); diff != "" {
				t.Errorf("Generate %s error mismatch (-want +got):\n%s", testcase.Label, diff)
			}
			continue
		}

		if err != nil {
			t.Errorf("Generate %s returned error: %v", testcase.Label, err)
			continue
		}
		if diff := cmp.Diff(testcase.Expected["codegen"], b.String()); diff != "" {
			t.Errorf("Generate %s mismatch (-want +got):\n%s", testcase.Label, diff)
		}
	}
}

func BenchmarkFromTestData(b *testing.B) {
	s, err := os.ReadFile("../testdata/testcase.yaml")
	if err != nil {
		panic(err)
	}
	testcases := utils.ReadTestData(s)

	for _, testcase := range testcases {
		b.Run(testcase.Label, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var sb strings.Builder
				_ = codegen.Generate(&sb, testcase.Input)
			}
		})
	}
}

func instructions(t *testing.T, source string) []string {
	t.Helper()

	var b strings.Builder
	if err := codegen.Generate(&b, source); err != nil {
		t.Fatalf("Generate(%q) returned error: %v", source, err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")

	return lines[3:]
}

func TestOperatorsInOrder(t *testing.T) {
	t.Parallel()

	actual := instructions(t, "1-2-3+4+5-6")
	expected := []string{
		"    mov rax, 1",
		"    sub rax, 2",
		"    sub rax, 3",
		"    add rax, 4",
		"    add rax, 5",
		"    sub rax, 6",
		"    ret",
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("instructions mismatch (-want +got):\n%s", diff)
	}
}

func TestLongExpression(t *testing.T) {
	t.Parallel()

	const n = 10000
	source := "0" + strings.Repeat("+1", n)
	actual := instructions(t, source)
	if len(actual) != n+2 {
		t.Fatalf("got %d instructions, expected %d", len(actual), n+2)
	}
	for _, line := range actual[1 : n+1] {
		if line != "    add rax, 1" {
			t.Fatalf("unexpected instruction %q", line)
		}
	}
}

func TestWhitespaceInsensitive(t *testing.T) {
	t.Parallel()

	expected := instructions(t, "1+2")
	for _, source := range []string{"1 + 2", " 1  +  2 ", "\t1\n+2\r\n"} {
		if diff := cmp.Diff(expected, instructions(t, source)); diff != "" {
			t.Errorf("Generate(%q) mismatch (-want +got):\n%s", source, diff)
		}
	}
}

func TestGenerateStreamsHeader(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	if err := codegen.Generate(&b, "5 * 2"); err == nil {
		t.Fatalf("Generate succeeded on `*`")
	}
	expected := ".intel_syntax noprefix\n.global main\nmain:\n"
	if diff := cmp.Diff(expected, b.String()); diff != "" {
		t.Errorf("partial output mismatch (-want +got):\n%s", diff)
	}
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestGenerateReportsWriteError(t *testing.T) {
	t.Parallel()

	err := codegen.Generate(failingWriter{}, "1+2")
	if !errors.Is(err, errWrite) {
		t.Errorf("Generate returned %v, expected %v", err, errWrite)
	}
}

func TestEmitter(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	e := codegen.NewEmitter(&b)
	e.Directive(".text")
	e.Directive(".section", ".note.GNU-stack", `""`)
	e.Label("f")
	e.Instr("mov", codegen.Accumulator, int32(-1))
	e.Instr("ret")

	expected := ".text\n.section .note.GNU-stack, \"\"\nf:\n    mov rax, -1\n    ret\n"
	if diff := cmp.Diff(expected, b.String()); diff != "" {
		t.Errorf("Emitter mismatch (-want +got):\n%s", diff)
	}
	if e.Err() != nil {
		t.Errorf("Err() = %v", e.Err())
	}
}
