package hclbook

import (
	"context"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/formulagraph/internal/ctxlog"
	"github.com/specialistvlad/formulagraph/internal/expr"
	"github.com/zclconf/go-cty/cty"
)

// serialEpoch is day zero of spreadsheet serial dates.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// isExprDefined checks if an HCL expression was actually present in the
// source. Omitted optional attributes decode to zero-width placeholder
// expressions, so a nil check is not enough.
func isExprDefined(ctx context.Context, e hcl.Expression, attrName string) bool {
	if e == nil {
		return false
	}
	r := e.Range()
	isDefined := r.End.Byte > r.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName, "hcl_range", r.String(), "is_defined", isDefined)
	return isDefined
}

// literalFromExpr evaluates a constant expression. Numbers become Integer
// literals when integer is set and Number literals otherwise.
func literalFromExpr(e hcl.Expression, integer bool) (expr.Literal, error) {
	v, diags := e.Value(nil)
	if diags.HasErrors() {
		return expr.Literal{}, diags
	}
	return literalFromCty(v, integer)
}

func literalFromCty(v cty.Value, integer bool) (expr.Literal, error) {
	return expr.FromCty(v, integer)
}

// gridFromExpr evaluates a list of lists into the rows of an array constant.
func gridFromExpr(e hcl.Expression) ([][]expr.Literal, error) {
	v, diags := e.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if !v.CanIterateElements() || v.Type().IsMapType() || v.Type().IsObjectType() {
		return nil, fmt.Errorf("rows must be a list of lists")
	}

	var rows [][]expr.Literal
	for it := v.ElementIterator(); it.Next(); {
		_, rowVal := it.Element()
		if !rowVal.CanIterateElements() || rowVal.Type().IsMapType() || rowVal.Type().IsObjectType() {
			return nil, fmt.Errorf("row %d must be a list", len(rows))
		}
		var row []expr.Literal
		for cit := rowVal.ElementIterator(); cit.Next(); {
			_, cellVal := cit.Element()
			lit, err := literalFromCty(cellVal, false)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", len(rows), err)
			}
			row = append(row, lit)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// dateValue parses a date in any common layout into a serial date number.
func dateValue(text string) (expr.Literal, error) {
	t, err := dateparse.ParseIn(text, time.UTC)
	if err != nil {
		return expr.Literal{}, fmt.Errorf("date: %w", err)
	}
	days := t.Sub(serialEpoch).Hours() / 24
	return expr.NumberValue(days), nil
}
