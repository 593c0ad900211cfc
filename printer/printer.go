/*
Printer Module - Infix Rendering
================================

Renders a TreeNode back into the infix notation a human would type. This is
deliberately lossy: no parentheses are ever emitted (see SPEC_FULL §9), so
printing favours compactness over exact round-trip text. The factoring
engine never needs to re-parse its own printed output, only display it.
*/

package printer

import (
	"io"
	"strings"

	"exptwig/treenode"
)

// Infix renders n as a single infix string.
func Infix(n *treenode.Node) string {
	var b strings.Builder
	Fprint(&b, n)
	return b.String()
}

// Fprint writes n's infix form to w.
//
// - 0 children: the token's name (operand) or lexeme.
// - 1 child: the lexeme, then the child (unary prefix).
// - 2+ children: the first child, then the lexeme, then every remaining
//   child in order ("first-child OP rest").
func Fprint(w io.Writer, n *treenode.Node) {
	switch len(n.Children) {
	case 0:
		io.WriteString(w, n.Token.String())
	case 1:
		io.WriteString(w, n.Token.String())
		Fprint(w, n.Children[0])
	default:
		Fprint(w, n.Children[0])
		io.WriteString(w, n.Token.String())
		for _, c := range n.Children[1:] {
			Fprint(w, c)
		}
	}
}
