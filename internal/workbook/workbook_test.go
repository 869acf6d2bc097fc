package workbook

import (
	"errors"
	"testing"

	"github.com/specialistvlad/formulagraph/internal/cellref"
	"github.com/specialistvlad/formulagraph/internal/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSheet(t *testing.T) {
	wb := New("book.hcl")
	first := wb.AddSheet("Sheet1")
	second := wb.AddSheet("Data")
	again := wb.AddSheet("sheet1")

	assert.Same(t, first, again)
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, 1, second.Index)
	assert.Equal(t, 2, wb.SheetCount())
	assert.Equal(t, []*Sheet{first, second}, wb.Sheets())
}

func TestSheet_PutKeepsRowMajorOrder(t *testing.T) {
	s := New("").AddSheet("Sheet1")
	s.Put(&Cell{Row: 2, Col: 0})
	s.Put(&Cell{Row: 0, Col: 1})
	s.Put(&Cell{Row: 0, Col: 0})
	s.Put(&Cell{Row: 1, Col: 5})

	var got [][2]int
	for _, c := range s.Cells() {
		got = append(got, [2]int{c.Row, c.Col})
	}
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 5}, {2, 0}}, got)
}

func TestSheet_PutReplaces(t *testing.T) {
	s := New("").AddSheet("Sheet1")
	s.Put(&Cell{Row: 0, Col: 0, Value: expr.IntegerValue(1)})
	s.Put(&Cell{Row: 0, Col: 0, Value: expr.IntegerValue(2)})

	require.Len(t, s.Cells(), 1)
	assert.Equal(t, expr.IntegerValue(2), s.Cell(0, 0).Value)
}

func TestValue(t *testing.T) {
	wb := New("")
	s := wb.AddSheet("Sheet1")
	s.Put(&Cell{Row: 0, Col: 0, Value: expr.NumberValue(10)})

	testCases := []struct {
		name    string
		sheet   string
		row     int
		col     int
		want    expr.Literal
		wantErr error
	}{
		{name: "populated cell", sheet: "Sheet1", want: expr.NumberValue(10)},
		{name: "case-insensitive sheet", sheet: "SHEET1", want: expr.NumberValue(10)},
		{name: "empty position", sheet: "Sheet1", row: 4, col: 4, want: expr.Literal{}},
		{name: "unknown sheet", sheet: "Nope", wantErr: ErrSheetNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := wb.Value(tc.sheet, tc.row, tc.col)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNames(t *testing.T) {
	wb := New("")
	wb.AddSheet("Sheet1")
	data := wb.AddSheet("Data")

	area, err := cellref.ParseArea("A1:F1")
	require.NoError(t, err)
	area.Sheet = "data"
	require.NoError(t, wb.DefineName("slist", area))

	got, err := wb.ResolveName("SLIST")
	require.NoError(t, err)
	assert.Equal(t, "slist", got.Name)
	assert.Equal(t, data.Index, got.SheetIndex)
	assert.Equal(t, "Data", got.Sheet)
	assert.Equal(t, "Data", got.First.Sheet)
	assert.Equal(t, 6, got.Cols())

	_, err = wb.ResolveName("missing")
	assert.True(t, errors.Is(err, ErrNameNotFound))

	area.Sheet = "Nope"
	err = wb.DefineName("bad", area)
	assert.True(t, errors.Is(err, ErrSheetNotFound))
}

func TestFormulaCount(t *testing.T) {
	wb := New("")
	s := wb.AddSheet("Sheet1")
	s.Put(&Cell{Row: 0, Col: 0, Value: expr.IntegerValue(1)})
	s.Put(&Cell{Row: 1, Col: 0, Formula: "A1+1", Tokenized: true})
	s.Put(&Cell{Row: 2, Col: 0, Formula: "FOO()"})
	wb.AddSheet("Other").Put(&Cell{Row: 0, Col: 0, Formula: "Sheet1!A1"})

	assert.Equal(t, 3, wb.FormulaCount())
}

func TestProgressive(t *testing.T) {
	wb := New("")
	wb.AddSheet("First").Put(&Cell{Row: 0, Col: 0, Value: expr.IntegerValue(1)})
	wb.AddSheet("Second").Put(&Cell{Row: 0, Col: 0, Value: expr.IntegerValue(2)})

	view := Progressive{Book: wb, Through: 0}
	v, err := view.Value("First", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, expr.IntegerValue(1), v)

	_, err = view.Value("Second", 0, 0)
	assert.True(t, errors.Is(err, ErrSheetNotLoaded))

	view.Through = 1
	v, err = view.Value("Second", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, expr.IntegerValue(2), v)
}
