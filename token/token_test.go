package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendChar_BoundsAtTenChars(t *testing.T) {
	tok := New()
	for i := 0; i < 10; i++ {
		assert.NoError(t, tok.AppendChar(byte('a'+i)))
	}
	assert.Equal(t, "abcdefghij", tok.Name)

	err := tok.AppendChar('k')
	assert.Error(t, err)
	assert.Equal(t, "abcdefghij", tok.Name, "name must not change on overflow")
}

func TestEqual(t *testing.T) {
	a := Token{Kind: Operand, Name: "x"}
	b := Token{Kind: Operand, Name: "x"}
	c := Token{Kind: Operand, Name: "y"}
	d := Token{Kind: Add}

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(a, d))
}

func TestString(t *testing.T) {
	assert.Equal(t, "x", Token{Kind: Operand, Name: "x"}.String())
	assert.Equal(t, "+", Token{Kind: Add}.String())
	assert.Equal(t, "-", Token{Kind: Negative}.String())
	assert.Equal(t, "^", Token{Kind: Power}.String())
}

func TestArityAndAssociativity(t *testing.T) {
	assert.Equal(t, 1, Arity(Positive))
	assert.Equal(t, 1, Arity(Negative))
	assert.Equal(t, 2, Arity(Add))
	assert.Equal(t, 2, Arity(Subtract))
	assert.Equal(t, 2, Arity(Multiply))
	assert.Equal(t, 2, Arity(Divide))
	assert.Equal(t, 2, Arity(Power))

	assert.True(t, IsAssociative(Add))
	assert.True(t, IsAssociative(Multiply))
	assert.False(t, IsAssociative(Subtract))
	assert.False(t, IsAssociative(Divide))
	assert.False(t, IsAssociative(Power))
	assert.False(t, IsAssociative(Positive))
	assert.False(t, IsAssociative(Negative))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Kind
		want     int
		wantOK   bool
		symmetry bool // if true, also assert Compare(b,a) == -want
	}{
		{"unary vs unary", Positive, Negative, 0, true, false},
		{"unary higher than additive", Positive, Add, 1, true, true},
		{"unary lower than multiplicative", Positive, Multiply, -1, true, true},
		{"unary lower than power", Negative, Power, -1, true, true},
		{"additive vs additive", Add, Subtract, 0, true, false},
		{"additive lower than multiplicative", Add, Multiply, -1, true, true},
		{"additive lower than power", Subtract, Power, -1, true, true},
		{"multiplicative vs multiplicative", Multiply, Divide, 0, true, false},
		{"multiplicative lower than power", Multiply, Power, -1, true, true},
		{"power vs power", Power, Power, 0, true, false},
		{"bracket incomparable", LeftBracket, Add, 0, false, false},
		{"operand incomparable", Operand, Add, 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compare(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
			if tt.symmetry {
				rev, ok := Compare(tt.b, tt.a)
				assert.True(t, ok)
				assert.Equal(t, -tt.want, rev)
			}
		})
	}
}
