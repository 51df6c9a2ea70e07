// Package ast defines the parens expression AST node types.
package ast

// Expr is the interface implemented by all expression nodes.
// An expression is immutable once built; ownership is a strict tree.
type Expr interface {
	Kind() string
	exprNode() // sealed marker
}

// --- Leaf Expressions ---

type Variable struct {
	Name string
}

func (n *Variable) Kind() string { return "Variable" }
func (n *Variable) exprNode()    {}

type IntLiteral struct {
	Value int64
}

func (n *IntLiteral) Kind() string { return "IntLiteral" }
func (n *IntLiteral) exprNode()    {}

type BoolLiteral struct {
	Value bool
}

func (n *BoolLiteral) Kind() string { return "BoolLiteral" }
func (n *BoolLiteral) exprNode()    {}

type StringLiteral struct {
	Value string
}

func (n *StringLiteral) Kind() string { return "StringLiteral" }
func (n *StringLiteral) exprNode()    {}

// Empty is the result of parsing zero remaining tokens.
type Empty struct{}

func (n *Empty) Kind() string { return "Empty" }
func (n *Empty) exprNode()    {}

// --- Collections ---

// ListLiteral is a literal list; it evaluates element-wise and is also the
// shape of every reduced list value.
type ListLiteral struct {
	Elements []Expr
}

func (n *ListLiteral) Kind() string { return "ListLiteral" }
func (n *ListLiteral) exprNode()    {}

type Car struct {
	Target Expr
}

func (n *Car) Kind() string { return "Car" }
func (n *Car) exprNode()    {}

type Cdr struct {
	Target Expr
}

func (n *Cdr) Kind() string { return "Cdr" }
func (n *Cdr) exprNode()    {}

// --- Variadic Operators ---

// Equal is the variadic structural equality test.
type Equal struct {
	Operands []Expr
}

func (n *Equal) Kind() string { return "Equal" }
func (n *Equal) exprNode()    {}

type Add struct {
	Operands []Expr
}

func (n *Add) Kind() string { return "Add" }
func (n *Add) exprNode()    {}

type Multiply struct {
	Operands []Expr
}

func (n *Multiply) Kind() string { return "Multiply" }
func (n *Multiply) exprNode()    {}

type Subtract struct {
	Operands []Expr
}

func (n *Subtract) Kind() string { return "Subtract" }
func (n *Subtract) exprNode()    {}

type Divide struct {
	Operands []Expr
}

func (n *Divide) Kind() string { return "Divide" }
func (n *Divide) exprNode()    {}

// --- Control Flow ---

type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (n *If) Kind() string { return "If" }
func (n *If) exprNode()    {}

// Binding pairs a name with its (unevaluated) bound expression.
type Binding struct {
	Name  string
	Value Expr
}

type Let struct {
	Bindings []Binding
	Body     []Expr
}

func (n *Let) Kind() string { return "Let" }
func (n *Let) exprNode()    {}

// --- Functions ---

type Call struct {
	Name      string
	Arguments []Expr
}

func (n *Call) Kind() string { return "Call" }
func (n *Call) exprNode()    {}

type FunctionDef struct {
	Name   string
	Params []string
	Body   []Expr
}

func (n *FunctionDef) Kind() string { return "FunctionDef" }
func (n *FunctionDef) exprNode()    {}
