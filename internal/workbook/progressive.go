package workbook

import (
	"fmt"

	"github.com/specialistvlad/formulagraph/internal/expr"
)

// Progressive is a read view of a workbook that only exposes sheets up to
// and including Through. It models a traversal that has not reached later
// sheets yet: their values report ErrSheetNotLoaded.
type Progressive struct {
	Book    *Workbook
	Through int
}

// Value implements ValueAccessor.
func (p Progressive) Value(sheet string, row, col int) (expr.Literal, error) {
	s, err := p.Book.Sheet(sheet)
	if err != nil {
		return expr.Literal{}, err
	}
	if s.Index > p.Through {
		return expr.Literal{}, fmt.Errorf("%w: %q", ErrSheetNotLoaded, s.Name)
	}
	return p.Book.Value(sheet, row, col)
}

// Locate reports sheets regardless of how far the traversal has got; only
// their values are held back.
func (p Progressive) Locate(sheet string) (int, string, error) {
	return p.Book.Locate(sheet)
}
