package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// primitives take pre-evaluated arguments
type primitive func(args []Expr) (Expr, error)

// special forms take unevaluated arguments and the env
type specialform func(args []Expr, env *Env) (Expr, error)

// Interpreter evaluates expressions against an Env. The only state it
// carries is where print writes, so one Interpreter may serve many programs
// as long as each program has its own Env.
type Interpreter struct {
	// OnResult, when set, observes the value of every top-level expression
	// that Run or RunAll evaluates successfully.
	OnResult func(i int, val Expr)

	out          io.Writer
	specialforms map[Symbol]specialform
	primitives   map[Symbol]primitive
}

func NewInterpreter(out io.Writer) *Interpreter {
	in := &Interpreter{out: out}
	in.specialforms = map[Symbol]specialform{
		Symbol("if"):  in.ifprim,
		Symbol("def"): in.def,
	}
	in.primitives = map[Symbol]primitive{
		Symbol("+"):     add,
		Symbol("-"):     sub,
		Symbol("*"):     mul,
		Symbol("/"):     div,
		Symbol("print"): in.print,
	}
	return in
}

var stdoutInterpreter = NewInterpreter(os.Stdout)

// Eval evaluates an expression with print going to standard output.
func Eval(val Expr, env *Env) (Expr, error) {
	return stdoutInterpreter.Eval(val, env)
}

// Eval evaluates an expression, recursing into operands as the form requires.
func (in *Interpreter) Eval(val Expr, env *Env) (Expr, error) {
	switch t := val.(type) {
	case Symbol:
		return env.Get(t)
	case List:
		if len(t) == 0 {
			return nil, invalidForm("empty form")
		}

		head, isSym := t[0].(Symbol)
		if isSym {
			spec, isSpec := in.specialforms[head]
			if isSpec {
				return spec(t[1:], env)
			}
		}

		// every operand is evaluated, in order, before the operator is
		// looked up; nested prints happen even if the operator is unknown
		args, err := in.evalSlice(t[1:], env)
		if err != nil {
			return nil, err
		}

		if isSym {
			prim, isPrim := in.primitives[head]
			if isPrim {
				return prim(args)
			}
		}

		return nil, &UnknownOperatorError{Op: t[0]}
	default:
		return t, nil
	}
}

// eval all elements in a slice
func (in *Interpreter) evalSlice(val []Expr, env *Env) ([]Expr, error) {
	arr := make([]Expr, len(val))
	for i, v := range val {
		res, err := in.Eval(v, env)
		if err != nil {
			return nil, err
		}
		arr[i] = res
	}
	return arr, nil
}

// Primitives

func add(args []Expr) (Expr, error) {
	return agg("+", args, func(r, x float64) float64 {
		return r + x
	})
}

func sub(args []Expr) (Expr, error) {
	return agg("-", args, func(r, x float64) float64 {
		return r - x
	})
}

func mul(args []Expr) (Expr, error) {
	return agg("*", args, func(r, x float64) float64 {
		return r * x
	})
}

func div(args []Expr) (Expr, error) {
	return agg("/", args, func(r, x float64) float64 {
		return r / x
	})
}

// agg left-folds args with accum. Division by zero is left to IEEE-754.
func agg(name string, args []Expr, accum func(float64, float64) float64) (Expr, error) {
	if len(args) < 1 {
		return nil, invalidForm("wrong number of args (%d) passed to %s", len(args), name)
	}

	ret, isNum := args[0].(float64)
	if !isNum {
		return nil, fmt.Errorf("%w: %s passed to %s", ErrInvalidOperand, Print(args[0]), name)
	}
	for i := 1; i < len(args); i++ {
		x, isNum := args[i].(float64)
		if !isNum {
			return nil, fmt.Errorf("%w: %s passed to %s", ErrInvalidOperand, Print(args[i]), name)
		}
		ret = accum(ret, x)
	}
	return ret, nil
}

func (in *Interpreter) print(args []Expr) (Expr, error) {
	arr := make([]string, len(args))
	for i, arg := range args {
		arr[i] = Print(arg)
	}

	// one Write per call so a print is never split across the sink
	_, err := fmt.Fprintln(in.out, strings.Join(arr, " "))
	if err != nil {
		return nil, fmt.Errorf("print: %w", err)
	}
	return Unspecified, nil
}

// Special Forms

func (in *Interpreter) def(args []Expr, env *Env) (Expr, error) {
	if len(args) > 2 {
		return nil, invalidForm("too many arguments to def")
	}
	if len(args) < 2 {
		return nil, invalidForm("too few arguments to def")
	}

	sym, isSym := args[0].(Symbol)
	if !isSym {
		return nil, invalidForm("first argument to def must be a symbol, got %s", Print(args[0]))
	}

	evaled, err := in.Eval(args[1], env)
	if err != nil {
		return nil, err
	}

	env.Define(sym, evaled)
	return Unspecified, nil
}

func (in *Interpreter) ifprim(args []Expr, env *Env) (Expr, error) {
	if len(args) < 2 {
		return nil, invalidForm("too few arguments to if")
	}
	if len(args) > 3 {
		return nil, invalidForm("too many arguments to if")
	}

	cond, err := in.Eval(args[0], env)
	if err != nil {
		return nil, err
	}

	if isTruthy(cond) {
		return in.Eval(args[1], env)
	}

	if len(args) == 3 {
		return in.Eval(args[2], env)
	}

	return Unspecified, nil
}

// only false and nil are falsy; 0 is true
func isTruthy(val Expr) bool {
	isTrue, isBoolean := val.(bool)
	if isBoolean {
		return isTrue
	}
	return val != nil
}
