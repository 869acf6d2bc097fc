package cellref

// Address identifies a single cell. Row and Col are zero-based.
type Address struct {
	SheetIndex int
	Sheet      string
	Row        int
	Col        int
}

// Shape classifies the bounding box of an Area.
type Shape int

const (
	Single Shape = iota
	Horizontal
	Vertical
	Rectangular
)

func (s Shape) String() string {
	switch s {
	case Single:
		return "single"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Rectangular:
		return "rectangular"
	default:
		return "unknown"
	}
}

// Area is a rectangular region on one sheet. Name is set for named areas and
// takes over the rendered form.
type Area struct {
	SheetIndex int
	Sheet      string
	First      Address
	Last       Address
	Name       string
}

// NewArea builds an area from two corners, normalising them so First is the
// top-left cell and Last the bottom-right one.
func NewArea(sheetIndex int, sheet string, a, b Address) Area {
	first := Address{SheetIndex: sheetIndex, Sheet: sheet, Row: min(a.Row, b.Row), Col: min(a.Col, b.Col)}
	last := Address{SheetIndex: sheetIndex, Sheet: sheet, Row: max(a.Row, b.Row), Col: max(a.Col, b.Col)}
	return Area{SheetIndex: sheetIndex, Sheet: sheet, First: first, Last: last}
}

// Rows returns the number of rows covered by the area.
func (a Area) Rows() int { return a.Last.Row - a.First.Row + 1 }

// Cols returns the number of columns covered by the area.
func (a Area) Cols() int { return a.Last.Col - a.First.Col + 1 }

// Shape reports whether the area is a row, a column or a full rectangle.
func (a Area) Shape() Shape {
	switch {
	case a.Rows() == 1 && a.Cols() == 1:
		return Single
	case a.Rows() == 1:
		return Horizontal
	case a.Cols() == 1:
		return Vertical
	default:
		return Rectangular
	}
}

// Contains reports whether c lies inside the area. Sheets compare by name,
// case-insensitively.
func (a Area) Contains(c Address) bool {
	return c.Row >= a.First.Row && c.Row <= a.Last.Row &&
		c.Col >= a.First.Col && c.Col <= a.Last.Col &&
		fold(a.Sheet) == fold(c.Sheet)
}

// Cells returns every address in the area in row-major order.
func (a Area) Cells() []Address {
	out := make([]Address, 0, a.Rows()*a.Cols())
	for r := a.First.Row; r <= a.Last.Row; r++ {
		for c := a.First.Col; c <= a.Last.Col; c++ {
			out = append(out, Address{SheetIndex: a.SheetIndex, Sheet: a.Sheet, Row: r, Col: c})
		}
	}
	return out
}

// Identity is the canonical graph key of a location. It is implemented only
// by CellIdentity and AreaIdentity.
type Identity interface {
	Key() string
	IsArea() bool
	identity()
}

// CellIdentity identifies a single cell. Two cell identities are equal when
// their qualified addresses match case-insensitively.
type CellIdentity struct {
	Addr Address
}

// AreaIdentity identifies a region by its bounds or its name. Named areas
// are workbook-global and ignore SheetIndex.
type AreaIdentity struct {
	SheetIndex int
	Bounds     string
	Named      bool
}
