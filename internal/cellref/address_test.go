package cellref

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress_Qualified(t *testing.T) {
	testCases := []struct {
		name     string
		addr     Address
		expected string
	}{
		{name: "no sheet", addr: Address{Row: 0, Col: 0}, expected: "A1"},
		{name: "plain sheet", addr: Address{Sheet: "Sheet1", Row: 4, Col: 1}, expected: "Sheet1!B5"},
		{name: "sheet with space", addr: Address{Sheet: "My Sheet", Row: 0, Col: 2}, expected: "'My Sheet'!C1"},
		{name: "sheet with quote", addr: Address{Sheet: "Bob's", Row: 0, Col: 0}, expected: "'Bob''s'!A1"},
		{name: "sheet starting with digit", addr: Address{Sheet: "2024", Row: 0, Col: 0}, expected: "'2024'!A1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.addr.Qualified())
		})
	}
}

func TestIdentity_Equal(t *testing.T) {
	a1 := Address{SheetIndex: 0, Sheet: "Sheet1", Row: 0, Col: 0}
	a1Lower := Address{SheetIndex: 0, Sheet: "sheet1", Row: 0, Col: 0}
	b1 := Address{SheetIndex: 0, Sheet: "Sheet1", Row: 0, Col: 1}

	assert.True(t, Equal(a1.Identity(), a1Lower.Identity()), "cell identities compare case-insensitively")
	assert.False(t, Equal(a1.Identity(), b1.Identity()))

	area := NewArea(0, "Sheet1", a1, a1)
	assert.False(t, Equal(a1.Identity(), area.Identity()), "a cell never equals an area")
	assert.True(t, area.Identity().IsArea())
	assert.False(t, a1.Identity().IsArea())

	otherSheet := NewArea(1, "Sheet2", a1, a1)
	assert.False(t, Equal(area.Identity(), otherSheet.Identity()), "areas on different sheets differ")

	named := Area{Name: "slist"}
	namedUpper := Area{Name: "SLIST", SheetIndex: 3}
	assert.True(t, Equal(named.Identity(), namedUpper.Identity()))

	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(a1.Identity(), nil))
}

func TestArea_Qualified(t *testing.T) {
	area := NewArea(0, "Sheet1", Address{Row: 0, Col: 0}, Address{Row: 1, Col: 3})
	assert.Equal(t, "Sheet1!A1:D2", area.Qualified())

	named := Area{Name: "slist"}
	assert.Equal(t, "NamedRange!slist", named.Qualified())
}
