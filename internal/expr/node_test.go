package expr

import (
	"testing"

	"github.com/specialistvlad/formulagraph/internal/cellref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode_String(t *testing.T) {
	testCases := []struct {
		code ErrorCode
		want string
	}{
		{ErrNull, "#NULL!"},
		{ErrDiv0, "#DIV/0!"},
		{ErrValue, "#VALUE!"},
		{ErrRef, "#REF!"},
		{ErrName, "#NAME?"},
		{ErrNum, "#NUM!"},
		{ErrNA, "#N/A"},
		{ErrorCode(0x99), "FIXME!"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.code.String())
		})
	}
}

func TestParseErrorCode(t *testing.T) {
	code, ok := ParseErrorCode("#div/0!")
	require.True(t, ok)
	assert.Equal(t, ErrDiv0, code)

	_, ok = ParseErrorCode("#BOGUS")
	assert.False(t, ok)
}

func TestNode_Classification(t *testing.T) {
	a1 := cellref.Address{Sheet: "Sheet1", Row: 0, Col: 0}
	area := cellref.NewArea(0, "Sheet1", a1, cellref.Address{Row: 2, Col: 0})

	testCases := []struct {
		name      string
		node      *Node
		terminal  bool
		reference bool
		area      bool
	}{
		{name: "literal", node: NewLiteral(NumberValue(1)), terminal: true},
		{name: "missing", node: NewMissing(), terminal: true},
		{name: "error", node: NewError(ErrRef), terminal: true},
		{name: "ref error", node: NewRefError(), terminal: true},
		{name: "array", node: NewArray([][]Literal{{IntegerValue(1)}}), terminal: true},
		{name: "cell", node: NewCell(a1, NumberValue(3)), reference: true},
		{name: "range", node: NewRange(area, nil), reference: true, area: true},
		{name: "named", node: NewNamed(cellref.Area{Name: "slist"}, nil), reference: true, area: true},
		{name: "prefixed cell", node: NewPrefixedCell(Prefix{Sheet: "Data"}, a1, Literal{}), reference: true},
		{name: "prefixed range", node: NewPrefixedRange(Prefix{Sheet: "Data"}, area, nil), reference: true, area: true},
		{name: "binary", node: NewBinary(OpAdd, NewMissing(), NewMissing())},
		{name: "function", node: NewFunction("SUM", []*Node{NewMissing()})},
		{name: "opaque", node: NewOpaque("=FOO()")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.terminal, tc.node.IsTerminal())
			assert.Equal(t, tc.reference, tc.node.IsReference())
			assert.Equal(t, tc.area, tc.node.IsArea())
			if tc.terminal {
				assert.Nil(t, tc.node.Identity())
			} else {
				assert.NotNil(t, tc.node.Identity())
			}
		})
	}
}

func TestNode_IdentityOfOperatorsIsFormulaCell(t *testing.T) {
	owner := cellref.Address{Sheet: "Sheet1", Row: 2, Col: 0}
	n := NewBinary(OpAdd, NewLiteral(IntegerValue(1)), NewLiteral(IntegerValue(2)))
	n.Addr = owner
	assert.True(t, cellref.Equal(owner.Identity(), n.Identity()))
	assert.Equal(t, "+", string(n.Op))
	assert.Equal(t, KindLiteral, n.Left().Kind)
	assert.Equal(t, KindLiteral, n.Right().Kind)
}

func TestPrefix_Qualifier(t *testing.T) {
	assert.Equal(t, "Data", Prefix{Sheet: "Data"}.Qualifier())
	assert.Equal(t, "[book.xlsx]Data", Prefix{Book: "book.xlsx", Sheet: "Data"}.Qualifier())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "binary", KindBinary.String())
	assert.Equal(t, "formula", KindFormula.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
