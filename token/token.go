/*
Token Module - Lexical Units
============================

This module defines the closed set of token kinds a math expression is built
from, and the static per-kind metadata (arity, lexeme, associativity,
precedence class) that the parser and the factoring engine both consult.

A Token is either an Operand (carrying a bounded identifier name) or one of
the nine operator/bracket kinds (carrying no name at all). Bracket kinds only
ever exist while a Parser is running; they are never stored in a TreeNode.
*/

package token

import "fmt"

// Kind is a closed tagged enumeration of everything a Token can be.
type Kind int

const (
	Operand Kind = iota
	Positive
	Negative
	Add
	Subtract
	Multiply
	Divide
	Power
	LeftBracket
	RightBracket
)

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

var kindNames = map[Kind]string{
	Operand:      "Operand",
	Positive:     "Positive",
	Negative:     "Negative",
	Add:          "Add",
	Subtract:     "Subtract",
	Multiply:     "Multiply",
	Divide:       "Divide",
	Power:        "Power",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
}

// maxNameLen bounds an Operand's name, matching the original C
// implementation's MAX_CHARS+1 fixed buffer.
const maxNameLen = 10

// precedenceClass groups kinds for the compare table in §4.1. Brackets have
// no class: the parser never asks for their precedence.
type precedenceClass int

const (
	classNone precedenceClass = iota
	classUnary
	classAdditive
	classMultiplicative
	classPower
)

// OperatorInfo is the static metadata the operator table carries for every
// Kind. Operand, LeftBracket and RightBracket have arity 0 and no
// precedence class.
type OperatorInfo struct {
	Arity       int
	Lexeme      string
	Associative bool
	class       precedenceClass
}

// OperatorTable is indexed by Kind and holds the fixed facts from §4.1.
var OperatorTable = map[Kind]OperatorInfo{
	Operand:      {Arity: 0, Lexeme: "", Associative: false, class: classNone},
	Positive:     {Arity: 1, Lexeme: "+", Associative: false, class: classUnary},
	Negative:     {Arity: 1, Lexeme: "-", Associative: false, class: classUnary},
	Add:          {Arity: 2, Lexeme: "+", Associative: true, class: classAdditive},
	Subtract:     {Arity: 2, Lexeme: "-", Associative: false, class: classAdditive},
	Multiply:     {Arity: 2, Lexeme: "*", Associative: true, class: classMultiplicative},
	Divide:       {Arity: 2, Lexeme: "/", Associative: false, class: classMultiplicative},
	Power:        {Arity: 2, Lexeme: "^", Associative: false, class: classPower},
	LeftBracket:  {Arity: 0, Lexeme: "(", Associative: false, class: classNone},
	RightBracket: {Arity: 0, Lexeme: ")", Associative: false, class: classNone},
}

// Arity reports how many operand children a Kind consumes.
func Arity(k Kind) int {
	return OperatorTable[k].Arity
}

// Lexeme reports the printable symbol for an operator/bracket Kind.
func Lexeme(k Kind) string {
	return OperatorTable[k].Lexeme
}

// IsAssociative reports whether two operands of this Kind may be matched in
// either order when checking structural equality (only Add and Multiply).
func IsAssociative(k Kind) bool {
	return OperatorTable[k].Associative
}

// Token is a distinct element in a mathematical expression: a kind, plus a
// name that is only meaningful when Kind is Operand.
type Token struct {
	Kind Kind
	Name string
}

// New returns a fresh Token with kind Operand and an empty name, mirroring
// ExpToken_new's zeroed-buffer default.
func New() Token {
	return Token{Kind: Operand}
}

// AppendChar appends c to the token's name. It reports an error instead of
// altering the name once maxNameLen characters have been accumulated.
func (t *Token) AppendChar(c byte) error {
	if len(t.Name) >= maxNameLen {
		return fmt.Errorf("token: name buffer full appending %q to %q", c, t.Name)
	}
	t.Name += string(c)
	return nil
}

// Equal reports structural equality: same kind and, for operands, same name.
func Equal(a, b Token) bool {
	return a.Kind == b.Kind && a.Name == b.Name
}

// String renders a Token the way the printer does: the name for an operand,
// the lexeme for everything else.
func (t Token) String() string {
	if t.Kind == Operand {
		return t.Name
	}
	return Lexeme(t.Kind)
}

// Compare implements §4.1's compare(a, b): -1/0/1 for lower/equal/higher
// precedence, with ok=false when the comparison is undefined (anything
// involving a bracket). Equal precedence between two binary operators is
// deliberately returned as 0 so the parser's push loop reduces on ties,
// producing left-associative evaluation for every binary operator,
// including Power (see SPEC_FULL §9).
func Compare(a, b Kind) (result int, ok bool) {
	ca, cb := OperatorTable[a].class, OperatorTable[b].class
	if ca == classNone || cb == classNone {
		return 0, false
	}
	if ca == cb {
		return 0, true
	}
	if compareRank(ca) < compareRank(cb) {
		return -1, true
	}
	return 1, true
}

// compareRank linearizes the four precedence classes per §4.1's table:
// additive < unary < multiplicative < power.
func compareRank(c precedenceClass) int {
	switch c {
	case classAdditive:
		return 0
	case classUnary:
		return 1
	case classMultiplicative:
		return 2
	case classPower:
		return 3
	default:
		return -1
	}
}
