package workbook

import (
	"fmt"
	"sort"

	"github.com/specialistvlad/formulagraph/internal/cellref"
	"github.com/specialistvlad/formulagraph/internal/expr"
	"github.com/specialistvlad/formulagraph/internal/token"
	"golang.org/x/text/cases"
)

// Workbook is a loaded spreadsheet: its sheets in file order and the names
// defined at workbook level.
type Workbook struct {
	Path   string
	sheets []*Sheet
	byName map[string]*Sheet
	names  map[string]cellref.Area
}

// Sheet holds the non-empty cells of one worksheet in row-major order.
type Sheet struct {
	Index int
	Name  string
	cells []*Cell
	byPos map[[2]int]*Cell
}

// Cell is one populated grid position. For formula cells Value is the
// cached result, Formula the source text and Tokens the postfix stream.
// Tokenized is false when no token stream could be produced for the
// formula.
type Cell struct {
	Row       int
	Col       int
	Value     expr.Literal
	Formula   string
	Tokens    []token.Token
	Tokenized bool
	Comment   string
}

// IsFormula reports whether the cell carries a formula.
func (c *Cell) IsFormula() bool { return c.Formula != "" || c.Tokenized }

// Address returns the location of the cell on its sheet.
func (c *Cell) Address(s *Sheet) cellref.Address {
	return cellref.Address{SheetIndex: s.Index, Sheet: s.Name, Row: c.Row, Col: c.Col}
}

// New creates an empty workbook.
func New(path string) *Workbook {
	return &Workbook{
		Path:   path,
		byName: make(map[string]*Sheet),
		names:  make(map[string]cellref.Area),
	}
}

// AddSheet appends a sheet, or returns the existing sheet of that name.
func (w *Workbook) AddSheet(name string) *Sheet {
	if s, ok := w.byName[foldName(name)]; ok {
		return s
	}
	s := &Sheet{Index: len(w.sheets), Name: name, byPos: make(map[[2]int]*Cell)}
	w.sheets = append(w.sheets, s)
	w.byName[foldName(name)] = s
	return s
}

// Sheet looks a sheet up by name, ignoring case.
func (w *Workbook) Sheet(name string) (*Sheet, error) {
	s, ok := w.byName[foldName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return s, nil
}

// Sheets returns every sheet in file order.
func (w *Workbook) Sheets() []*Sheet { return w.sheets }

// SheetCount returns the number of sheets.
func (w *Workbook) SheetCount() int { return len(w.sheets) }

// DefineName binds a workbook-level name to an area. The area's sheet index
// is filled in from its sheet name.
func (w *Workbook) DefineName(name string, area cellref.Area) error {
	s, err := w.Sheet(area.Sheet)
	if err != nil {
		return fmt.Errorf("defining name %q: %w", name, err)
	}
	area.Sheet = s.Name
	area.SheetIndex = s.Index
	area.First.Sheet, area.First.SheetIndex = s.Name, s.Index
	area.Last.Sheet, area.Last.SheetIndex = s.Name, s.Index
	area.Name = name
	w.names[foldName(name)] = area
	return nil
}

// ResolveName returns the area bound to name.
func (w *Workbook) ResolveName(name string) (cellref.Area, error) {
	area, ok := w.names[foldName(name)]
	if !ok {
		return cellref.Area{}, fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	return area, nil
}

// Value returns the value of a cell. Positions without a cell are Empty.
func (w *Workbook) Value(sheet string, row, col int) (expr.Literal, error) {
	s, err := w.Sheet(sheet)
	if err != nil {
		return expr.Literal{}, err
	}
	if c := s.Cell(row, col); c != nil {
		return c.Value, nil
	}
	return expr.Literal{}, nil
}

// FormulaCount returns the number of formula cells across all sheets.
func (w *Workbook) FormulaCount() int {
	n := 0
	for _, s := range w.sheets {
		for _, c := range s.cells {
			if c.IsFormula() {
				n++
			}
		}
	}
	return n
}

// Put stores c, replacing any cell at the same position, and keeps the
// sheet in row-major order.
func (s *Sheet) Put(c *Cell) {
	pos := [2]int{c.Row, c.Col}
	if old, ok := s.byPos[pos]; ok {
		*old = *c
		return
	}
	s.byPos[pos] = c
	i := sort.Search(len(s.cells), func(i int) bool {
		o := s.cells[i]
		return o.Row > c.Row || (o.Row == c.Row && o.Col > c.Col)
	})
	s.cells = append(s.cells, nil)
	copy(s.cells[i+1:], s.cells[i:])
	s.cells[i] = c
}

// Cell returns the cell at a position, or nil.
func (s *Sheet) Cell(row, col int) *Cell { return s.byPos[[2]int{row, col}] }

// Cells returns the populated cells in row-major order.
func (s *Sheet) Cells() []*Cell { return s.cells }

func foldName(s string) string {
	return cases.Fold().String(s)
}

// Locate returns the index and canonical name of a sheet.
func (w *Workbook) Locate(sheet string) (int, string, error) {
	s, err := w.Sheet(sheet)
	if err != nil {
		return -1, "", err
	}
	return s.Index, s.Name, nil
}
