package token

import (
	"testing"

	"github.com/specialistvlad/formulagraph/internal/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind_RoundTrip(t *testing.T) {
	for k, name := range kindNames {
		t.Run(name, func(t *testing.T) {
			parsed, err := ParseKind(name)
			require.NoError(t, err)
			assert.Equal(t, k, parsed)
			assert.Equal(t, name, k.String())
		})
	}
}

func TestParseKind_Normalises(t *testing.T) {
	k, err := ParseKind(" Unary-Minus ")
	require.NoError(t, err)
	assert.Equal(t, UnaryMinus, k)

	k, err = ParseKind("frobnicate")
	assert.ErrorContains(t, err, "unknown token kind")
	assert.Equal(t, Unknown, k)
}

func TestParseKind_LongSpellings(t *testing.T) {
	testCases := map[string]Kind{
		"ref-3d":                  Ref3D,
		"area-3d":                 Area3D,
		"deleted-area-3d":         DeletedArea3D,
		"deleted-3d":              DeletedRef3D,
		"function-fixed-arity":    Func,
		"function-variable-arity": FuncVar,
		"array-literal":           Array,
		"missing-argument":        MissingArg,
		"parenthesis":             Paren,
		"boolean":                 Bool,
		"integer":                 Int,
		"attribute":               Attr,
		"mem-error":               MemError,
	}
	for name, want := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseKind(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestBinaryOperator(t *testing.T) {
	op, ok := Concat.BinaryOperator()
	require.True(t, ok)
	assert.Equal(t, expr.OpConcat, op)

	op, ok = NotEqual.BinaryOperator()
	require.True(t, ok)
	assert.Equal(t, expr.OpNotEqual, op)

	_, ok = Ref.BinaryOperator()
	assert.False(t, ok)
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "ref A1", Token{Kind: Ref, Ref: "A1"}.String())
	assert.Equal(t, "area3d Data!A1:B2", Token{Kind: Area3D, Sheet: "Data", Ref: "A1:B2"}.String())
	assert.Equal(t, "funcvar SUM/3", Token{Kind: FuncVar, Function: "SUM", Args: 3}.String())
	assert.Equal(t, "kind(999)", Kind(999).String())
}
