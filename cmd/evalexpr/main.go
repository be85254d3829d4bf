// Command evalexpr evaluates a fixed set of sample expressions for one value
// of Var and prints the results.
package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nativemen/teach-rs-xw/internal/cli"
	"github.com/nativemen/teach-rs-xw/internal/expr"
	"github.com/nativemen/teach-rs-xw/internal/logging"
)

func main() {
	cli.Main(newRootCmd())
}

func samples() []expr.Expr {
	v := expr.Var{}
	return []expr.Expr{
		expr.Const(5),
		v,
		expr.Sub(v, expr.Const(5)),
		expr.Sub(v, v),
		expr.Add(expr.Sub(v, expr.Const(5)), expr.Const(5)),
		expr.Mul(v, expr.Const(12)),
		expr.Div(v, expr.Const(0)),
		expr.Div(v, expr.Const(10)),
		expr.Sum(v, expr.Const(1)),
		expr.SigmaRange(expr.Const(1), expr.Const(5)),
	}
}

func printAll(w io.Writer, value int64) error {
	log := logging.Get(logging.CategoryExpr)
	for _, e := range samples() {
		result := "none"
		if got, ok := expr.Eval(e, value); ok {
			result = fmt.Sprint(got)
		} else {
			log.Debug("evaluation failed", zap.Stringer("expr", e), zap.Int64("var", value))
		}
		if _, err := fmt.Fprintf(w, "%s with Var = %d ==> %s\n", e, value, result); err != nil {
			return err
		}
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root, _ := cli.NewRoot("evalexpr", "Evaluate sample expressions")

	var value int64
	root.Flags().Int64Var(&value, "var", 0, "Value of Var (random int8 when unset)")
	root.Args = cobra.NoArgs
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("var") {
			value = int64(int8(rand.Uint32()))
		}
		return printAll(cmd.OutOrStdout(), value)
	}
	return root
}
