// Package expr models integer arithmetic expressions over a single variable
// and evaluates them with overflow-checked arithmetic.
package expr

import (
	"fmt"
	"strings"
)

// Expr is a node of an expression tree. The set of node types is closed.
type Expr interface {
	fmt.Stringer
	isExpr()
}

// Const is an integer literal.
type Const int64

// Var is the single free variable, bound at evaluation time.
type Var struct{}

// Binary node kinds.
type (
	AddExpr struct{ L, R Expr }
	SubExpr struct{ L, R Expr }
	MulExpr struct{ L, R Expr }
	DivExpr struct{ L, R Expr }
)

// Summation adds up its children. An empty Summation is 0.
type Summation []Expr

// Sigma sums the integers From, From+1, ..., To.
type Sigma struct{ From, To Expr }

// SigmaOf sums Body evaluated with Var bound to each of From, ..., To.
type SigmaOf struct{ From, To, Body Expr }

func (Const) isExpr() {}
func (Var) isExpr() {}
func (*AddExpr) isExpr() {}
func (*SubExpr) isExpr() {}
func (*MulExpr) isExpr() {}
func (*DivExpr) isExpr() {}
func (Summation) isExpr() {}
func (*Sigma) isExpr() {}
func (*SigmaOf) isExpr() {}

// Add returns l + r.
func Add(l, r Expr) Expr { return &AddExpr{l, r} }

// Sub returns l - r.
func Sub(l, r Expr) Expr { return &SubExpr{l, r} }

// Mul returns l * r.
func Mul(l, r Expr) Expr { return &MulExpr{l, r} }

// Div returns l / r, truncated toward zero.
func Div(l, r Expr) Expr { return &DivExpr{l, r} }

// Sum returns the Summation of children.
func Sum(children ...Expr) Expr { return Summation(children) }

// SigmaRange returns the sum of the integers in [from, to].
func SigmaRange(from, to Expr) Expr { return &Sigma{from, to} }

// SigmaBody returns the sum of body over Var in [from, to].
func SigmaBody(from, to, body Expr) Expr { return &SigmaOf{from, to, body} }

func (c Const) String() string { return fmt.Sprintf("Const(%d)", int64(c)) }
func (Var) String() string { return "Var" }
func (e *AddExpr) String() string { return fmt.Sprintf("Add(%v, %v)", e.L, e.R) }
func (e *SubExpr) String() string { return fmt.Sprintf("Sub(%v, %v)", e.L, e.R) }
func (e *MulExpr) String() string { return fmt.Sprintf("Mul(%v, %v)", e.L, e.R) }
func (e *DivExpr) String() string { return fmt.Sprintf("Div(%v, %v)", e.L, e.R) }
func (e *Sigma) String() string { return fmt.Sprintf("Sigma(%v, %v)", e.From, e.To) }
func (e *SigmaOf) String() string { return fmt.Sprintf("SigmaOf(%v, %v, %v)", e.From, e.To, e.Body) }

func (s Summation) String() string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = e.String()
	}
	return "Summation([" + strings.Join(parts, ", ") + "])"
}
