/*
Testutil Module - Pipeline Helpers for Tests
==============================================

Small helpers shared by the parser/factor/printer test suites, in the shape
of quark-lang's internal/testutil package: a one-call pipeline helper per
stage, plus a structural-diff formatter for readable failure messages.
*/

package testutil

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"

	"exptwig/parser"
	"exptwig/treenode"
)

// ParseOne parses a single expression and returns its tree, returning an
// error if more or fewer than one tree results.
func ParseOne(src string) (*treenode.Node, error) {
	trees, err := parser.Parse(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	if len(trees) != 1 {
		return nil, fmt.Errorf("testutil: expected 1 expression, got %d", len(trees))
	}
	return trees[0], nil
}

// Parse parses a (possibly comma-separated) expression list.
func Parse(src string) ([]*treenode.Node, error) {
	return parser.Parse(strings.NewReader(src))
}

// DiffTrees renders a and b with go-spew and returns a unified line diff
// between them, for use in a test failure message when reflect.DeepEqual
// (or treenode.Equal) fails and a human needs to see exactly where.
func DiffTrees(name string, a, b *treenode.Node) string {
	da := spew.Sdump(a)
	db := spew.Sdump(b)
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(da),
		B:        difflib.SplitLines(db),
		FromFile: name + " (got)",
		ToFile:   name + " (want)",
		Context:  3,
	}
	text, _ := difflib.GetUnifiedDiffString(diff)
	return text
}
