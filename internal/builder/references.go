package builder

import (
	"github.com/specialistvlad/formulagraph/internal/cellref"
	"github.com/specialistvlad/formulagraph/internal/diag"
	"github.com/specialistvlad/formulagraph/internal/expr"
	"github.com/specialistvlad/formulagraph/internal/token"
)

// MaxCapturedCells bounds how many values an area reference snapshots.
// Larger areas are kept as references with no captured values.
const MaxCapturedCells = 1 << 16

// cellRef builds a same-sheet single cell reference.
func (s *state) cellRef(tok token.Token) *expr.Node {
	if sheet, _ := cellref.SplitSheet(tok.Ref); sheet != "" {
		return s.prefixedRef(tok)
	}
	addr, err := cellref.ParseCell(tok.Ref)
	if err != nil {
		return s.malformed(tok, err)
	}
	addr.Sheet, addr.SheetIndex = s.c.Sheet, s.c.SheetIndex

	v, err := s.b.values.Value(addr.Sheet, addr.Row, addr.Col)
	if err != nil {
		return s.lookupFailed(addr.Qualified(), err)
	}
	return expr.NewCell(addr, v)
}

// areaRef builds a same-sheet area reference.
func (s *state) areaRef(tok token.Token) *expr.Node {
	if sheet, _ := cellref.SplitSheet(tok.Ref); sheet != "" {
		return s.prefixedRef(tok)
	}
	area, err := cellref.ParseArea(tok.Ref)
	if err != nil {
		return s.malformed(tok, err)
	}
	area = onSheet(area, s.c.SheetIndex, s.c.Sheet)

	values, err := s.capture(area)
	if err != nil {
		return s.lookupFailed(area.Qualified(), err)
	}
	return expr.NewRange(area, values)
}

// prefixedRef builds a sheet-qualified or external reference. External
// workbooks are not readable, so their references capture Empty values.
func (s *state) prefixedRef(tok token.Token) *expr.Node {
	sheet, ref := cellref.SplitSheet(tok.Ref)
	if tok.Sheet != "" {
		sheet = tok.Sheet
	}
	prefix := expr.Prefix{Book: tok.Book, Sheet: sheet}

	index, name := -1, prefix.Qualifier()
	external := tok.Book != ""
	if !external {
		var err error
		index, name, err = s.locate(sheet)
		if err != nil {
			return s.lookupFailed(cellref.QuoteSheet(sheet)+"!"+ref, err)
		}
		prefix.Sheet = name
	}

	if tok.Kind == token.Area3D || tok.Kind == token.Area {
		area, err := cellref.ParseArea(ref)
		if err != nil {
			return s.malformed(tok, err)
		}
		area = onSheet(area, index, name)
		values := make([]expr.Literal, capturedLen(area))
		if !external {
			if values, err = s.capture(area); err != nil {
				return s.lookupFailed(area.Qualified(), err)
			}
		}
		return expr.NewPrefixedRange(prefix, area, values)
	}

	addr, err := cellref.ParseCell(ref)
	if err != nil {
		return s.malformed(tok, err)
	}
	addr.Sheet, addr.SheetIndex = name, index

	var v expr.Literal
	if !external {
		if v, err = s.b.values.Value(addr.Sheet, addr.Row, addr.Col); err != nil {
			return s.lookupFailed(addr.Qualified(), err)
		}
	}
	return expr.NewPrefixedCell(prefix, addr, v)
}

// namedRef resolves a defined name and captures the area it is bound to.
func (s *state) namedRef(tok token.Token) *expr.Node {
	if s.b.names == nil {
		s.report(diag.ErrUnknownOrDeletedToken, "name %q: no resolver", tok.Name)
		return expr.NewError(expr.ErrName)
	}
	area, err := s.b.names.ResolveName(tok.Name)
	if err != nil {
		s.report(diag.ErrUnknownOrDeletedToken, "%v", err)
		return expr.NewError(expr.ErrName)
	}
	values, err := s.capture(area)
	if err != nil {
		return s.lookupFailed(area.Qualified(), err)
	}
	return expr.NewNamed(area, values)
}

// capture reads the values an area covers in row-major order.
func (s *state) capture(area cellref.Area) ([]expr.Literal, error) {
	if area.Rows()*area.Cols() > MaxCapturedCells {
		s.logger.Warn("Build: area too large, values not captured.",
			"area", area.Qualified(), "cells", area.Rows()*area.Cols())
		return nil, nil
	}
	cells := area.Cells()
	values := make([]expr.Literal, 0, len(cells))
	for _, c := range cells {
		v, err := s.b.values.Value(area.Sheet, c.Row, c.Col)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (s *state) locate(sheet string) (int, string, error) {
	if loc, ok := s.b.values.(SheetLocator); ok {
		return loc.Locate(sheet)
	}
	return -1, sheet, nil
}

func (s *state) malformed(tok token.Token, err error) *expr.Node {
	s.report(diag.ErrUnknownOrDeletedToken, "%s: %v", tok.String(), err)
	return expr.NewError(expr.ErrRef)
}

func onSheet(area cellref.Area, index int, sheet string) cellref.Area {
	area.SheetIndex, area.Sheet = index, sheet
	area.First.SheetIndex, area.First.Sheet = index, sheet
	area.Last.SheetIndex, area.Last.Sheet = index, sheet
	return area
}

func capturedLen(area cellref.Area) int {
	if n := area.Rows() * area.Cols(); n <= MaxCapturedCells {
		return n
	}
	return 0
}
