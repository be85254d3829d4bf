package expr

import (
	"fmt"
	"math"
)

// Eval evaluates e with Var bound to v. The second result is false when any
// step overflows int64, divides by zero, or a Sigma counter runs past
// math.MaxInt64.
func Eval(e Expr, v int64) (int64, bool) {
	switch e := e.(type) {
	case Const:
		return int64(e), true
	case Var:
		return v, true
	case *AddExpr:
		return evalBinary(e.L, e.R, v, checkedAdd)
	case *SubExpr:
		return evalBinary(e.L, e.R, v, checkedSub)
	case *MulExpr:
		return evalBinary(e.L, e.R, v, checkedMul)
	case *DivExpr:
		return evalBinary(e.L, e.R, v, checkedDiv)
	case Summation:
		var acc int64
		for _, child := range e {
			x, ok := Eval(child, v)
			if !ok {
				return 0, false
			}
			if acc, ok = checkedAdd(acc, x); !ok {
				return 0, false
			}
		}
		return acc, true
	case *Sigma:
		return evalSigma(e.From, e.To, v, func(i int64) (int64, bool) { return i, true })
	case *SigmaOf:
		return evalSigma(e.From, e.To, v, func(i int64) (int64, bool) { return Eval(e.Body, i) })
	default:
		panic(fmt.Sprintf("expr: unknown node %T", e))
	}
}

func evalBinary(l, r Expr, v int64, op func(a, b int64) (int64, bool)) (int64, bool) {
	a, ok := Eval(l, v)
	if !ok {
		return 0, false
	}
	b, ok := Eval(r, v)
	if !ok {
		return 0, false
	}
	return op(a, b)
}

// evalSigma adds term(i) for every i in [from, to]. The range is empty when
// to < from.
func evalSigma(from, to Expr, v int64, term func(i int64) (int64, bool)) (int64, bool) {
	lo, ok := Eval(from, v)
	if !ok {
		return 0, false
	}
	hi, ok := Eval(to, v)
	if !ok {
		return 0, false
	}
	var acc int64
	for i := lo; i <= hi; i++ {
		x, ok := term(i)
		if !ok {
			return 0, false
		}
		if acc, ok = checkedAdd(acc, x); !ok {
			return 0, false
		}
		// the counter cannot step past MaxInt64
		if i == math.MaxInt64 {
			return 0, false
		}
	}
	return acc, true
}

func checkedAdd(a, b int64) (int64, bool) {
	c := a + b
	if (a > 0 && b > 0 && c < 0) || (a < 0 && b < 0 && c >= 0) {
		return 0, false
	}
	return c, true
}

func checkedSub(a, b int64) (int64, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, false
	}
	return c, true
}

func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (c < 0) != ((a < 0) != (b < 0)) || c/b != a {
		return 0, false
	}
	return c, true
}

func checkedDiv(a, b int64) (int64, bool) {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	return a / b, true
}
