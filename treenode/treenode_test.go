package treenode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"exptwig/token"
)

func operand(name string) *Node {
	return New(token.Token{Kind: token.Operand, Name: name})
}

func binary(k token.Kind, left, right *Node) *Node {
	n := New(token.Token{Kind: k})
	AddChild(n, left)
	AddChild(n, right)
	return n
}

func TestIsLeafAndTwigs(t *testing.T) {
	a, b, c := operand("a"), operand("b"), operand("c")
	assert.True(t, a.IsLeaf())

	ab := binary(token.Add, a, b)
	assert.False(t, ab.IsLeaf())

	tree := binary(token.Add, ab, c)
	twigs := Twigs(tree)
	assert.Len(t, twigs, 1)
	assert.Same(t, ab, twigs[0])

	assert.Same(t, ab, FirstTwig(tree))
	assert.Nil(t, FirstTwig(a))
}

func TestAddChildFrontRestoresOrder(t *testing.T) {
	parent := New(token.Token{Kind: token.Add})
	b := operand("b")
	a := operand("a")
	AddChildFront(parent, b)
	AddChildFront(parent, a)
	assert.Equal(t, []*Node{a, b}, parent.Children)
}

func TestCopyIsDeepAndEqual(t *testing.T) {
	orig := binary(token.Add, operand("a"), operand("b"))
	cp := Copy(orig)

	assert.True(t, Equal(orig, cp))
	assert.NotSame(t, orig, cp)
	assert.NotSame(t, orig.Children[0], cp.Children[0])

	cp.Children[0].Token.Name = "z"
	assert.False(t, Equal(orig, cp))
}

func TestEqualIsOrderSensitive(t *testing.T) {
	ab := binary(token.Add, operand("a"), operand("b"))
	ba := binary(token.Add, operand("b"), operand("a"))
	assert.False(t, Equal(ab, ba))
}

func TestEqualAssocCommutesForAddAndMultiply(t *testing.T) {
	ab := binary(token.Add, operand("a"), operand("b"))
	ba := binary(token.Add, operand("b"), operand("a"))
	assert.True(t, EqualAssoc(ab, ba))

	ab2 := binary(token.Multiply, operand("a"), operand("b"))
	ba2 := binary(token.Multiply, operand("b"), operand("a"))
	assert.True(t, EqualAssoc(ab2, ba2))
}

func TestEqualAssocDoesNotCommuteForSubtract(t *testing.T) {
	ab := binary(token.Subtract, operand("a"), operand("b"))
	ba := binary(token.Subtract, operand("b"), operand("a"))
	assert.False(t, EqualAssoc(ab, ba))
}

func TestEqualAssocPermutationIsNotAMultisetCheck(t *testing.T) {
	// x+x+y, built left-associatively as (x+x)+y, vs y+x+x as (y+x)+x.
	xxy := binary(token.Add, binary(token.Add, operand("x"), operand("x")), operand("y"))
	yxx := binary(token.Add, binary(token.Add, operand("y"), operand("x")), operand("x"))
	assert.True(t, EqualAssoc(xxy, yxx))
}

func TestReplaceSubstitutesBottomUp(t *testing.T) {
	// (a+b)+c with find=a+b, repl=#0 becomes #0+c.
	ab := binary(token.Add, operand("a"), operand("b"))
	tree := binary(token.Add, ab, operand("c"))

	find := binary(token.Add, operand("a"), operand("b"))
	repl := operand("#0")

	got := Replace(tree, find, repl)
	want := binary(token.Add, operand("#0"), operand("c"))
	assert.True(t, Equal(got, want))
}

func TestReplaceLeavesNonMatchingSubtreesAlone(t *testing.T) {
	ab := binary(token.Add, operand("a"), operand("b"))
	cd := binary(token.Multiply, operand("c"), operand("d"))
	tree := binary(token.Add, ab, cd)

	find := binary(token.Add, operand("x"), operand("y"))
	repl := operand("#0")

	got := Replace(tree, find, repl)
	assert.True(t, Equal(got, tree))
}
