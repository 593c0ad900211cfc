package factor

import (
	"fmt"
	"io"

	"exptwig/printer"
	"exptwig/token"
	"exptwig/treenode"
)

// Dump renders the final-state report from SPEC_FULL §6: the assembly
// token, the operator stack (top-down), the operand stack (each tree in
// infix form, blank-line separated), and the indexed expression list. By
// the time Simplify finishes normally the operator/operand stacks are
// always empty (parsing completed before factoring began), but Dump
// accepts them explicitly so it can also render the parser's live state
// for diagnostics, matching the original source's reusable print routine.
func Dump(w io.Writer, assembly token.Token, operatorStack []token.Token, operandStack []*treenode.Node, finished []*treenode.Node) {
	fmt.Fprintln(w, "---Assembly Token---")
	fmt.Fprintln(w, assembly.String())

	fmt.Fprintln(w, "---Operator Stack---")
	for _, op := range operatorStack {
		fmt.Fprintln(w, op.String())
	}

	fmt.Fprintln(w, "---Operand Stack---")
	for i, n := range operandStack {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, printer.Infix(n))
	}

	fmt.Fprintln(w, "---Expression List---")
	for i, tree := range finished {
		fmt.Fprintf(w, "---Expression %d---\n", i)
		fmt.Fprintln(w, printer.Infix(tree))
	}
}
