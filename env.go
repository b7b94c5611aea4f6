package main

// Env is the single, flat set of variable bindings for one program run.
// It is not safe for concurrent use; give each running program its own Env.
type Env struct {
	symbols map[Symbol]Expr
}

func NewEnv() *Env {
	return &Env{symbols: make(map[Symbol]Expr)}
}

// Define binds sym to val, replacing any earlier binding.
func (e *Env) Define(sym Symbol, val Expr) {
	e.symbols[sym] = val
}

func (e *Env) Get(sym Symbol) (Expr, error) {
	val, found := e.symbols[sym]
	if !found {
		return nil, &UndefinedVariableError{Name: sym}
	}
	return val, nil
}
