package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nwidger/lox/internal/ast"
	"github.com/nwidger/lox/internal/interp"
	"github.com/nwidger/lox/internal/lexer"
	"github.com/nwidger/lox/internal/parser"
	"github.com/nwidger/lox/internal/semantic"
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run a Lox script, or start a REPL with no arguments",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoxArgs(args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runLoxArgs implements the zero-or-one-argument contract of spec.md §6:
// no args starts a REPL, one arg runs a file, more is a usage error.
func runLoxArgs(args []string) error {
	switch len(args) {
	case 0:
		return runREPL()
	case 1:
		return runFile(args[0])
	default:
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		return newExitError(64, fmt.Errorf("too many arguments"))
	}
}

func newInterpreterOptions() *interp.Options {
	opts := &interp.Options{}
	if cfg != nil {
		opts.MaxCallDepth = cfg.MaxCallDepth
		opts.Clock = cfg.Clock()
	}
	return opts
}

// compile runs the scan/parse/resolve phases shared by file and REPL mode.
// A non-nil error is already a fully formed *exitError with code 65.
func compile(source string) (*ast.Program, map[ast.ID]int, error) {
	l := lexer.New(source)
	toks := l.Tokens()
	if l.HadError() {
		for _, d := range l.Errors() {
			fmt.Fprintln(os.Stderr, d.Error())
		}
		return nil, nil, newExitError(65, fmt.Errorf("scan failed with %d error(s)", len(l.Errors())))
	}

	p := parser.New(toks)
	program := p.Parse()
	if p.HadError() {
		for _, d := range p.Errors() {
			fmt.Fprintln(os.Stderr, d.Error())
		}
		return nil, nil, newExitError(65, fmt.Errorf("parsing failed with %d error(s)", len(p.Errors())))
	}

	ctx := semantic.NewPassContext()
	if err := semantic.NewPassManager(semantic.NewResolver()).RunAll(program, ctx); err != nil {
		return nil, nil, newExitError(70, err)
	}
	if ctx.HasCriticalErrors() {
		for _, d := range ctx.Errors() {
			fmt.Fprintln(os.Stderr, d.Error())
		}
		return nil, nil, newExitError(65, fmt.Errorf("resolution failed with %d error(s)", len(ctx.Errors())))
	}

	return program, ctx.Locals, nil
}

func runFile(path string) error {
	source, err := readSource(path)
	if err != nil {
		return newExitError(74, err)
	}

	program, locals, err := compile(source)
	if err != nil {
		return err
	}

	i := interp.New(os.Stdout, newInterpreterOptions())
	i.Resolve(locals)
	if err := i.Interpret(program); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return newExitError(70, err)
	}
	return nil
}

// runREPL implements spec.md §6's interactive mode: one line per loop, a
// per-line error flag that never aborts the session, exit on EOF.
func runREPL() error {
	i := interp.New(os.Stdout, newInterpreterOptions())
	scanner := bufio.NewScanner(os.Stdin)

	// Side-table entries from every prior line must stay resolvable: a
	// function closed over on one line is still called on a later one.
	locals := make(map[ast.ID]int)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return nil
		}
		line := scanner.Text()

		program, lineLocals, err := compile(line)
		if err != nil {
			continue
		}
		for id, depth := range lineLocals {
			locals[id] = depth
		}

		i.Resolve(locals)
		if err := i.Interpret(program); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
		}
	}
}
