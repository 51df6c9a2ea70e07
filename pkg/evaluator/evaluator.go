// Package evaluator implements the parens tree-walking evaluator.
package evaluator

import (
	"github.com/parenlang/parens/pkg/ast"
	"github.com/parenlang/parens/pkg/diagnostics"
)

// EvalError wraps a diagnostic for evaluation errors. Propagation is an
// immediate unwind to the top level; nothing is recovered.
type EvalError struct {
	Diag diagnostics.Diagnostic
}

func (e *EvalError) Error() string {
	return e.Diag.Message
}

func evalError(msg, token string) error {
	return &EvalError{Diag: diagnostics.MakeDiag(diagnostics.EEval, msg, token, "")}
}

// Evaluate reduces an expression to a value: IntLiteral, BoolLiteral,
// StringLiteral, or ListLiteral of already-reduced elements. No other
// variant escapes evaluation as a result.
func Evaluate(expr ast.Expr, env *Env, fns FuncTable) (ast.Expr, error) {
	switch e := expr.(type) {
	case *ast.IntLiteral, *ast.BoolLiteral, *ast.StringLiteral:
		return expr, nil

	case *ast.Variable:
		// Stored expressions may themselves need reduction; a bound name
		// is reduced lazily at first reference.
		bound, ok := env.Lookup(e.Name)
		if !ok {
			return nil, evalError("unknown reference", e.Name)
		}
		return Evaluate(bound, env, fns)

	case *ast.ListLiteral:
		elems, err := EvaluateSequence(e.Elements, env, fns)
		if err != nil {
			return nil, err
		}
		return &ast.ListLiteral{Elements: elems}, nil

	case *ast.Car:
		list, err := evalListTarget(e.Target, env, fns, "car")
		if err != nil {
			return nil, err
		}
		return list.Elements[0], nil

	case *ast.Cdr:
		list, err := evalListTarget(e.Target, env, fns, "cdr")
		if err != nil {
			return nil, err
		}
		return &ast.ListLiteral{Elements: list.Elements[1:]}, nil

	case *ast.Equal:
		return evalEqual(e, env, fns)

	case *ast.Add:
		ints, err := evalIntOperands(e.Operands, env, fns)
		if err != nil {
			return nil, err
		}
		var sum int64
		for _, n := range ints {
			sum += n
		}
		return &ast.IntLiteral{Value: sum}, nil

	case *ast.Multiply:
		ints, err := evalIntOperands(e.Operands, env, fns)
		if err != nil {
			return nil, err
		}
		product := int64(1)
		for _, n := range ints {
			product *= n
		}
		return &ast.IntLiteral{Value: product}, nil

	case *ast.Subtract:
		ints, err := evalIntOperands(e.Operands, env, fns)
		if err != nil {
			return nil, err
		}
		if len(ints) == 0 {
			return nil, evalError("subtraction needs at least one operand", "")
		}
		acc := ints[0]
		for _, n := range ints[1:] {
			acc -= n
		}
		return &ast.IntLiteral{Value: acc}, nil

	case *ast.Divide:
		ints, err := evalIntOperands(e.Operands, env, fns)
		if err != nil {
			return nil, err
		}
		if len(ints) == 0 {
			return nil, evalError("division needs at least one operand", "")
		}
		acc := ints[0]
		for _, n := range ints[1:] {
			if n == 0 {
				return nil, evalError("division by zero", "")
			}
			acc /= n
		}
		return &ast.IntLiteral{Value: acc}, nil

	case *ast.If:
		cond, err := Evaluate(e.Cond, env, fns)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(*ast.BoolLiteral)
		if !ok {
			return nil, evalError("condition must be boolean", "")
		}
		// The untaken branch is never evaluated.
		if b.Value {
			return Evaluate(e.Then, env, fns)
		}
		return Evaluate(e.Else, env, fns)

	case *ast.Let:
		return evalLet(e, env, fns)

	case *ast.Call:
		return evalCall(e, env, fns)
	}

	// FunctionDef and Empty have no defined reduction; definitions are
	// partitioned out before evaluation begins.
	return nil, evalError("cannot evaluate "+expr.Kind(), "")
}

// EvaluateSequence evaluates an ordered sequence and returns every result.
// Bodies take the last result, but every element is evaluated.
func EvaluateSequence(exprs []ast.Expr, env *Env, fns FuncTable) ([]ast.Expr, error) {
	results := make([]ast.Expr, 0, len(exprs))
	for _, e := range exprs {
		v, err := Evaluate(e, env, fns)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}

func evalListTarget(target ast.Expr, env *Env, fns FuncTable, op string) (*ast.ListLiteral, error) {
	v, err := Evaluate(target, env, fns)
	if err != nil {
		return nil, err
	}
	list, ok := v.(*ast.ListLiteral)
	if !ok {
		return nil, evalError(op+" target must be a list", "")
	}
	if len(list.Elements) == 0 {
		return nil, evalError(op+" of empty list", "")
	}
	return list, nil
}

func evalEqual(e *ast.Equal, env *Env, fns FuncTable) (ast.Expr, error) {
	vals, err := EvaluateSequence(e.Operands, env, fns)
	if err != nil {
		return nil, err
	}
	// Every operand must structurally equal the first; an empty operand
	// list is vacuously true.
	for _, v := range vals {
		if !Equivalent(vals[0], v) {
			return &ast.BoolLiteral{Value: false}, nil
		}
	}
	return &ast.BoolLiteral{Value: true}, nil
}

func evalIntOperands(operands []ast.Expr, env *Env, fns FuncTable) ([]int64, error) {
	vals, err := EvaluateSequence(operands, env, fns)
	if err != nil {
		return nil, err
	}
	ints := make([]int64, len(vals))
	for i, v := range vals {
		n, ok := v.(*ast.IntLiteral)
		if !ok {
			return nil, evalError("arithmetic operand must be an integer", "")
		}
		ints[i] = n.Value
	}
	return ints, nil
}

func evalLet(e *ast.Let, env *Env, fns FuncTable) (ast.Expr, error) {
	// Binding expressions are pushed raw, not pre-reduced; each bound name
	// is evaluated lazily at first reference.
	env.Push(Scope(e.Bindings))
	defer env.Pop()

	results, err := EvaluateSequence(e.Body, env, fns)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, evalError("empty body", "")
	}
	return results[len(results)-1], nil
}

func evalCall(e *ast.Call, env *Env, fns FuncTable) (ast.Expr, error) {
	def, ok := fns[e.Name]
	if !ok {
		return nil, evalError("unknown function call", e.Name)
	}
	if len(def.Params) != len(e.Arguments) {
		return nil, evalError("arity mismatch", e.Name)
	}

	bindings := make([]ast.Binding, len(def.Params))
	for i, p := range def.Params {
		bindings[i] = ast.Binding{Name: p, Value: e.Arguments[i]}
	}

	// Function bodies never see the caller's locals: the zipped
	// parameter/argument scope is the only scope on a fresh stack. Only the
	// function table is shared.
	body := &ast.Let{Bindings: bindings, Body: def.Body}
	return Evaluate(body, NewEnv(), fns)
}

// Equivalent reports deep structural equality across the four reduced value
// variants. Values of different variants are never equivalent.
func Equivalent(a, b ast.Expr) bool {
	switch av := a.(type) {
	case *ast.IntLiteral:
		bv, ok := b.(*ast.IntLiteral)
		return ok && av.Value == bv.Value
	case *ast.BoolLiteral:
		bv, ok := b.(*ast.BoolLiteral)
		return ok && av.Value == bv.Value
	case *ast.StringLiteral:
		bv, ok := b.(*ast.StringLiteral)
		return ok && av.Value == bv.Value
	case *ast.ListLiteral:
		bv, ok := b.(*ast.ListLiteral)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equivalent(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	}
	return false
}
