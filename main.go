package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/peterh/liner"
	"github.com/takoeight0821/addsub/driver"
	"github.com/takoeight0821/addsub/eval"
	"github.com/takoeight0821/addsub/utils"
)

var errInvalidArgs = errors.New("invalid number of arguments")

func main() {
	const (
		outputUsage = "output file path"
		replUsage   = "start an interactive prompt"
	)
	var outputPath string
	var repl bool
	flag.StringVar(&outputPath, "output", "", outputUsage)
	flag.StringVar(&outputPath, "o", "", outputUsage+" (shorthand)")
	flag.BoolVar(&repl, "repl", false, replUsage)

	flag.Parse()

	if repl {
		if flag.NArg() != 0 {
			fail(errInvalidArgs)
		}
		if err := RunPrompt(); err != nil {
			fail(err)
		}
		return
	}

	if flag.NArg() != 1 {
		fail(errInvalidArgs)
	}
	if err := RunExpr(flag.Arg(0), outputPath); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// RunExpr compiles expr and writes the program to outputPath, or to stdout if outputPath is empty.
func RunExpr(expr, outputPath string) error {
	if outputPath == "" {
		return driver.Run(os.Stdout, expr)
	}

	asm, err := driver.Compile(expr)
	if err != nil {
		return err
	}

	return os.WriteFile(outputPath, []byte(asm), 0o644)
}

var history = filepath.Join(xdg.DataHome, "addsub", ".addsub_history")

func RunPrompt() error {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	for {
		input, err := line.Prompt("> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		line.AppendHistory(input)
		if err := driver.Run(os.Stdout, input); err != nil {
			report(os.Stderr, input, err)
			continue
		}
		if v, err := eval.Eval(input); err == nil {
			fmt.Printf("=> %v (exit status %d)\n", v, v.ExitStatus())
		}
	}
}

// report prints err and, for errors in the expression, points at the offending position.
func report(w io.Writer, source string, err error) {
	fmt.Fprintf(w, "Error: %v: %v\n", driver.Kind(err), err)
	if driver.Kind(err) == driver.UnknownError {
		return
	}
	if pos, ok := utils.Offset(err); ok {
		fmt.Fprintln(w, utils.Caret(source, pos))
	}
}
