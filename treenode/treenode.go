/*
TreeNode Module - Ordered Expression Trees
===========================================

TreeNode is an ordered n-ary tree where each node owns a Token and an ordered
slice of children. Operand nodes are always leaves; every other node has as
many children as its token's declared arity. No node is ever shared between
two parents, so there are no cycles and no aliasing to worry about — the Go
garbage collector reclaims a subtree the moment its last parent pointer is
overwritten (e.g. by Replace).
*/

package treenode

import "exptwig/token"

// Node is a single element of an expression tree.
type Node struct {
	Token    token.Token
	Children []*Node
}

// New wraps tok in a fresh, childless Node.
func New(tok token.Token) *Node {
	return &Node{Token: tok}
}

// AddChild appends child to the end of parent's child list.
func AddChild(parent, child *Node) {
	parent.Children = append(parent.Children, child)
}

// AddChildFront prepends child to the front of parent's child list. The
// parser's reduce step (§4.2.2) uses this to restore left-to-right input
// order when popping operands off a stack in reverse.
func AddChildFront(parent, child *Node) {
	parent.Children = append([]*Node{child}, parent.Children...)
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// childrenAreLeaves reports whether n has at least one child and every
// child is a leaf — i.e. whether n itself is a twig.
func (n *Node) childrenAreLeaves() bool {
	if len(n.Children) == 0 {
		return false
	}
	for _, c := range n.Children {
		if !c.IsLeaf() {
			return false
		}
	}
	return true
}

// Twigs returns every twig in n, in pre-order.
func Twigs(n *Node) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		if cur.childrenAreLeaves() {
			out = append(out, cur)
		}
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

// FirstTwig returns the first twig encountered in pre-order, or nil if n
// contains none (which only happens when n is itself a single leaf).
func FirstTwig(n *Node) *Node {
	if n.childrenAreLeaves() {
		return n
	}
	for _, c := range n.Children {
		if t := FirstTwig(c); t != nil {
			return t
		}
	}
	return nil
}

// Copy performs a deep structural copy of n.
func Copy(n *Node) *Node {
	cp := &Node{Token: n.Token}
	if len(n.Children) > 0 {
		cp.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cp.Children[i] = Copy(c)
		}
	}
	return cp
}

// Equal is plain structural equality: same token, same children in the
// same order, recursively. No associativity is considered — see EqualAssoc.
func Equal(a, b *Node) bool {
	if !token.Equal(a.Token, b.Token) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// EqualAssoc is §4.3's associative equality. Tokens must match. If the
// token's kind is not associative, children are compared pairwise in
// order, failing on a length mismatch. If it is associative (only Add and
// Multiply), every child of a must have some EqualAssoc-equal sibling in
// b's children and vice versa — a permutation check, not a multiset check,
// so an Add node with children x, x, y matches one with children y, x, x,
// but "two x's vs three x's" style multiplicity differences can slip
// through undetected (see SPEC_FULL §9). Only direct children are permuted:
// nested associative nodes are not flattened, so the parsed (x+x)+y does not
// match (y+x)+x.
func EqualAssoc(a, b *Node) bool {
	if !token.Equal(a.Token, b.Token) {
		return false
	}
	if !token.IsAssociative(a.Token.Kind) {
		if len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !EqualAssoc(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	}
	return everyChildHasPartner(a, b) && everyChildHasPartner(b, a)
}

// everyChildHasPartner reports whether every child of from has at least one
// EqualAssoc-equal child in to.
func everyChildHasPartner(from, to *Node) bool {
	for _, fc := range from.Children {
		found := false
		for _, tc := range to.Children {
			if EqualAssoc(fc, tc) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Replace returns a fresh tree identical to src except that every subtree
// associatively-equal to find has been replaced by a deep copy of repl.
// Children are reconstructed (and themselves already substituted) before
// the reconstructed parent is tested against find, which is what makes the
// substitution greedy and bottom-up: a parent that becomes equal to find
// only *after* its children were substituted still gets replaced.
func Replace(src, find, repl *Node) *Node {
	cp := &Node{Token: src.Token}
	if len(src.Children) > 0 {
		cp.Children = make([]*Node, len(src.Children))
		for i, c := range src.Children {
			cp.Children[i] = Replace(c, find, repl)
		}
	}
	if EqualAssoc(cp, find) {
		return Copy(repl)
	}
	return cp
}
