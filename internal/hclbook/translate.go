package hclbook

import (
	"context"
	"fmt"

	"github.com/specialistvlad/formulagraph/internal/cellref"
	"github.com/specialistvlad/formulagraph/internal/ctxlog"
	"github.com/specialistvlad/formulagraph/internal/expr"
	"github.com/specialistvlad/formulagraph/internal/token"
	"github.com/specialistvlad/formulagraph/internal/workbook"
)

func (l *Loader) translateSheet(ctx context.Context, wb *workbook.Workbook, sb *sheetBlock) error {
	ctx, logger := ctxlog.With(ctx, "sheet", sb.Name)
	sheet := wb.AddSheet(sb.Name)

	for _, cb := range sb.Cells {
		cell, err := l.translateCell(ctx, cb)
		if err != nil {
			return fmt.Errorf("sheet %q, cell %s: %w", sb.Name, cb.Ref, err)
		}
		if sheet.Cell(cell.Row, cell.Col) != nil {
			logger.Warn("Duplicate cell definition found, it will be overwritten.", "cell", cb.Ref)
		}
		sheet.Put(cell)
	}
	logger.Debug("Translated sheet.", "cells", len(sb.Cells))
	return nil
}

func (l *Loader) translateCell(ctx context.Context, cb *cellBlock) (*workbook.Cell, error) {
	addr, err := cellref.ParseCell(cb.Ref)
	if err != nil {
		return nil, err
	}
	cell := &workbook.Cell{Row: addr.Row, Col: addr.Col}

	set := 0
	if isExprDefined(ctx, cb.Value, "value") {
		set++
		if cell.Value, err = literalFromExpr(cb.Value, false); err != nil {
			return nil, fmt.Errorf("value: %w", err)
		}
	}
	if cb.Date != nil {
		set++
		if cell.Value, err = dateValue(*cb.Date); err != nil {
			return nil, err
		}
	}
	if cb.Error != nil {
		set++
		code, ok := expr.ParseErrorCode(*cb.Error)
		if !ok {
			return nil, fmt.Errorf("unknown error code %q", *cb.Error)
		}
		cell.Value = expr.ErrorValue(code)
	}
	if set > 1 {
		return nil, fmt.Errorf("only one of value, date and error may be set")
	}

	if cb.Comment != nil {
		cell.Comment = *cb.Comment
	}
	if cb.Formula != nil {
		cell.Formula = *cb.Formula
	}
	for i, tb := range cb.Tokens {
		tok, err := l.translateToken(ctx, tb)
		if err != nil {
			return nil, fmt.Errorf("token %d (%s): %w", i, tb.Kind, err)
		}
		cell.Tokens = append(cell.Tokens, tok)
	}
	cell.Tokenized = len(cell.Tokens) > 0
	if cell.Tokenized && cell.Formula == "" {
		return nil, fmt.Errorf("tokens given without a formula")
	}
	return cell, nil
}

func (l *Loader) translateToken(ctx context.Context, tb *tokenBlock) (token.Token, error) {
	kind, err := token.ParseKind(tb.Kind)
	if err != nil {
		// the builder turns unknown tokens into #REF! placeholders
		ctxlog.FromContext(ctx).Warn("Unrecognized token kind, loading it as unknown.", "kind", tb.Kind)
	}
	tok := token.Token{
		Kind:     kind,
		Ref:      deref(tb.Ref),
		Sheet:    deref(tb.Sheet),
		Book:     deref(tb.Book),
		Name:     deref(tb.Name),
		Function: deref(tb.Function),
		Attr:     deref(tb.Attr),
	}
	if tb.Args != nil {
		tok.Args = *tb.Args
	}

	switch kind {
	case token.Number, token.Int, token.Bool, token.String:
		if !isExprDefined(ctx, tb.Value, "value") {
			return token.Token{}, fmt.Errorf("a value is required")
		}
		if tok.Value, err = literalFromExpr(tb.Value, kind == token.Int); err != nil {
			return token.Token{}, err
		}
		if want := literalKindOf(kind); tok.Value.Kind != want {
			return token.Token{}, fmt.Errorf("value is %s, want %s", tok.Value.Kind, want)
		}
	case token.Array:
		if !isExprDefined(ctx, tb.Rows, "rows") {
			return token.Token{}, fmt.Errorf("rows are required")
		}
		if tok.Rows, err = gridFromExpr(tb.Rows); err != nil {
			return token.Token{}, err
		}
	case token.Ref, token.Area, token.Ref3D, token.Area3D:
		if tok.Ref == "" {
			return token.Token{}, fmt.Errorf("ref is required")
		}
	case token.Name:
		if tok.Name == "" {
			return token.Token{}, fmt.Errorf("name is required")
		}
	case token.Func, token.FuncVar:
		if tok.Function == "" {
			return token.Token{}, fmt.Errorf("function is required")
		}
		if kind == token.FuncVar && tb.Args == nil {
			return token.Token{}, fmt.Errorf("args is required")
		}
	}
	return tok, nil
}

func literalKindOf(k token.Kind) expr.LiteralKind {
	switch k {
	case token.Int:
		return expr.Integer
	case token.Bool:
		return expr.Boolean
	case token.String:
		return expr.Text
	default:
		return expr.Number
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
