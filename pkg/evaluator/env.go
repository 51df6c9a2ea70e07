package evaluator

import "github.com/parenlang/parens/pkg/ast"

// Scope is one ordered mapping of names to (unevaluated) bound expressions.
// Lookup scans bindings in declaration order, so the first occurrence of a
// duplicate name wins.
type Scope []ast.Binding

// Env is the lexical environment: a stack of scopes searched innermost
// first. A scope is pushed for each let or function call and popped on
// return; the stack never outlives the evaluation call that created it.
type Env struct {
	scopes []Scope
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{}
}

// Push adds a new innermost scope.
func (e *Env) Push(s Scope) {
	e.scopes = append(e.scopes, s)
}

// Pop removes the innermost scope. Push and Pop are strictly paired with
// entry and exit of let/call evaluation.
func (e *Env) Pop() {
	e.scopes = e.scopes[:len(e.scopes)-1]
}

// Lookup searches for a name from the innermost scope outward and returns
// the bound (possibly still unreduced) expression.
func (e *Env) Lookup(name string) (ast.Expr, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		for _, b := range e.scopes[i] {
			if b.Name == name {
				return b.Value, true
			}
		}
	}
	return nil, false
}

// Depth returns the number of scopes currently on the stack.
func (e *Env) Depth() int {
	return len(e.scopes)
}
