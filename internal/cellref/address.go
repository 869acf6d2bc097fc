package cellref

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// NamedRangeSheet is the pseudo sheet that qualifies named areas in reports.
const NamedRangeSheet = "NamedRange"

// String renders the bare A1 form of the address.
func (a Address) String() string {
	return ColumnName(a.Col) + strconv.Itoa(a.Row+1)
}

// Qualified renders the address with its sheet, e.g. `Sheet1!A1` or
// `'My Sheet'!A1`. An address without a sheet renders bare.
func (a Address) Qualified() string {
	if a.Sheet == "" {
		return a.String()
	}
	return QuoteSheet(a.Sheet) + "!" + a.String()
}

// Identity returns the canonical graph key of the cell.
func (a Address) Identity() Identity {
	return CellIdentity{Addr: a}
}

// String renders `A1:C3`, or the name for named areas.
func (a Area) String() string {
	if a.Name != "" {
		return a.Name
	}
	return a.First.String() + ":" + a.Last.String()
}

// Qualified renders the area with its sheet. Named areas are qualified with
// NamedRangeSheet since they belong to the workbook rather than a sheet.
func (a Area) Qualified() string {
	if a.Name != "" {
		return NamedRangeSheet + "!" + a.Name
	}
	if a.Sheet == "" {
		return a.String()
	}
	return QuoteSheet(a.Sheet) + "!" + a.String()
}

// Identity returns the canonical graph key of the area.
func (a Area) Identity() Identity {
	if a.Name != "" {
		return AreaIdentity{SheetIndex: -1, Bounds: a.Name, Named: true}
	}
	return AreaIdentity{SheetIndex: a.SheetIndex, Bounds: a.String()}
}

func (CellIdentity) identity() {}
func (AreaIdentity) identity() {}

// IsArea is always false for cells.
func (CellIdentity) IsArea() bool { return false }

// IsArea is always true for areas.
func (AreaIdentity) IsArea() bool { return true }

// Key folds the qualified address so `sheet1!a1` and `Sheet1!A1` collide.
func (c CellIdentity) Key() string {
	return "cell:" + fold(c.Addr.Qualified())
}

// Key combines the sheet index with the bounds. Names are folded like cell
// addresses since spreadsheet names are case-insensitive.
func (a AreaIdentity) Key() string {
	if a.Named {
		return "name:" + fold(a.Bounds)
	}
	return "area:" + strconv.Itoa(a.SheetIndex) + ":" + strings.ToUpper(a.Bounds)
}

// Equal reports whether two identities denote the same location.
func Equal(a, b Identity) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Key() == b.Key()
}

// QuoteSheet wraps a sheet name in single quotes when it is not a plain
// identifier, doubling embedded quotes.
func QuoteSheet(name string) string {
	if isPlainSheetName(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func isPlainSheetName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'):
		case i > 0 && (r == '.' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}
	return true
}

func fold(s string) string {
	return cases.Fold().String(s)
}
