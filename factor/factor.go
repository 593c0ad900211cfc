/*
Factor Module - Greedy Common-Subexpression Factoring
========================================================

The Factoring Engine owns the ordered list of finished expression trees
produced by the parser. Simplify repeatedly finds the first twig (in
pre-order, scanning the tree list in order), invents a fresh variable,
substitutes it for every associatively-equal occurrence across every tree,
and emits the substitution as "#N = pattern". The loop terminates once no
tree contains a twig, at which point every tree is a single leaf.
*/

package factor

import (
	"fmt"
	"io"
	"strconv"

	"exptwig/internal/alloc"
	"exptwig/printer"
	"exptwig/token"
	"exptwig/treenode"
)

// freshNamePrefix is reserved: it is not in the operator set, so an emitted
// substitution can always be fed back in as input (SPEC_FULL §9).
const freshNamePrefix = "#"

// Engine holds the trees under factoring and the fresh-variable counter.
type Engine struct {
	Trees   []*treenode.Node
	counter int
	budget  *alloc.Budget
}

// New wraps trees in a factoring Engine ready to Simplify. budget may be
// nil (unlimited allocations).
func New(trees []*treenode.Node, budget *alloc.Budget) *Engine {
	return &Engine{Trees: trees, budget: budget}
}

// Simplify runs the loop from SPEC_FULL §4.4, writing one "#N = pattern"
// line to w per substitution. If an allocation fails mid-loop, Simplify
// stops (rather than panicking) and returns the error — the caller is
// expected to still proceed to a final dump of whatever trees remain, per
// SPEC_FULL §7's factoring-phase error handling.
func (e *Engine) Simplify(w io.Writer) error {
	for {
		twig := e.firstTwig()
		if twig == nil {
			return nil
		}
		if err := e.budget.Charge(); err != nil {
			return err
		}
		pattern := treenode.Copy(twig)

		fresh := treenode.New(token.Token{
			Kind: token.Operand,
			Name: freshNamePrefix + strconv.Itoa(e.counter),
		})

		for i, tree := range e.Trees {
			e.Trees[i] = treenode.Replace(tree, pattern, fresh)
		}

		if _, err := fmt.Fprintf(w, "%s = %s\n", printer.Infix(fresh), printer.Infix(pattern)); err != nil {
			return err
		}
		e.counter++
	}
}

// firstTwig returns the first twig found scanning e.Trees in order,
// pre-order within each tree, or nil once every tree is a single leaf.
func (e *Engine) firstTwig() *treenode.Node {
	for _, tree := range e.Trees {
		if t := treenode.FirstTwig(tree); t != nil {
			return t
		}
	}
	return nil
}

// CountMatches is the dead "most common subtree" probe from
// SPEC_FULL §4.4: count how many nodes in root are associatively-equal to
// pattern. It is not part of Simplify's control flow — kept as a tested,
// documented utility the way the original source keeps
// ExpParser_howManySubTrees commented out but present, rather than deleted.
func CountMatches(pattern, root *treenode.Node) int {
	count := 0
	if treenode.EqualAssoc(pattern, root) {
		count++
	}
	for _, c := range root.Children {
		count += CountMatches(pattern, c)
	}
	return count
}

// CountMatchesAcross sums CountMatches(pattern, tree) over every tree in
// trees.
func CountMatchesAcross(pattern *treenode.Node, trees []*treenode.Node) int {
	total := 0
	for _, tree := range trees {
		total += CountMatches(pattern, tree)
	}
	return total
}
