package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// Expr is an expression or the value it evaluates to: a float64, a bool,
// nil, a Symbol, a List form, or Unspecified.
type Expr interface{}

type Symbol string

// List is a form: an operator symbol followed by its operands.
type List []Expr

type unspecified struct{}

// Unspecified is what def and print return, and what if returns when it
// takes no branch.
var Unspecified Expr = unspecified{}

const usage = `usage: sexpeval [-k] [-echo] [file ...]

Runs programs written as YAML or JSON sequences of expressions, e.g.

  - ["def", "x", 10]
  - ["print", ["*", "x", 2]]

With no files the program is read from standard input.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("sexpeval", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}
	keepGoing := flags.Bool("k", false, "keep evaluating after an expression fails")
	echo := flags.Bool("echo", false, "print the value of every top-level expression")
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	in := NewInterpreter(stdout)
	if *echo {
		in.OnResult = func(_ int, val Expr) {
			if val != Unspecified {
				fmt.Fprintln(stdout, Print(val))
			}
		}
	}
	runProg := in.Run
	if *keepGoing {
		runProg = in.RunAll
	}

	if flags.NArg() == 0 {
		if stdin == os.Stdin && !isInputRedirected() {
			flags.Usage()
			return 2
		}
		return report(stderr, runReader(stdin, runProg))
	}

	status := 0
	for _, path := range flags.Args() {
		prog, err := ReadFile(path)
		if err == nil {
			err = runProg(prog, NewEnv())
		}
		if report(stderr, err) != 0 {
			status = 1
			if !*keepGoing {
				break
			}
		}
	}
	return status
}

func runReader(r io.Reader, runProg func([]Expr, *Env) error) error {
	prog, err := Read(r)
	if err != nil {
		return err
	}
	return runProg(prog, NewEnv())
}

func report(stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func isInputRedirected() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) == 0
}
