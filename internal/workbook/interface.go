package workbook

import (
	"context"
	"errors"

	"github.com/specialistvlad/formulagraph/internal/cellref"
	"github.com/specialistvlad/formulagraph/internal/expr"
)

var (
	ErrSheetNotFound  = errors.New("sheet not found")
	ErrSheetNotLoaded = errors.New("sheet not loaded yet")
	ErrNameNotFound   = errors.New("name not defined")
)

// Loader reads a workbook from a format-specific source.
type Loader interface {
	Load(ctx context.Context, path string) (*Workbook, error)
}

// ValueAccessor returns the value stored in a cell. Cells that exist in the
// sheet but hold nothing yield an Empty literal and no error.
type ValueAccessor interface {
	Value(sheet string, row, col int) (expr.Literal, error)
}

// NameResolver maps a defined name to the area it is bound to.
type NameResolver interface {
	ResolveName(name string) (cellref.Area, error)
}

// Enumerator yields sheets in file order.
type Enumerator interface {
	Sheets() []*Sheet
	SheetCount() int
}
