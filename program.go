package main

import (
	"errors"
	"fmt"
)

// RunProgram runs prog against env with print going to standard output.
func RunProgram(prog []Expr, env *Env) error {
	return stdoutInterpreter.Run(prog, env)
}

// Run evaluates each top-level expression in order against the same env
// and stops at the first failure. Results are discarded unless OnResult is
// set.
func (in *Interpreter) Run(prog []Expr, env *Env) error {
	for i, expr := range prog {
		if err := in.step(i, expr, env); err != nil {
			return err
		}
	}
	return nil
}

// RunAll is Run without the early exit: every expression is evaluated and
// all failures are joined into the returned error.
func (in *Interpreter) RunAll(prog []Expr, env *Env) error {
	var errs []error
	for i, expr := range prog {
		if err := in.step(i, expr, env); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (in *Interpreter) step(i int, expr Expr, env *Env) error {
	val, err := in.Eval(expr, env)
	if err != nil {
		return fmt.Errorf("expression %d: %w", i, err)
	}
	if in.OnResult != nil {
		in.OnResult(i, val)
	}
	return nil
}
