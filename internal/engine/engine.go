package engine

import (
	"context"
	"errors"
	"time"

	"github.com/specialistvlad/formulagraph/internal/builder"
	"github.com/specialistvlad/formulagraph/internal/ctxlog"
	"github.com/specialistvlad/formulagraph/internal/depgraph"
	"github.com/specialistvlad/formulagraph/internal/diag"
	"github.com/specialistvlad/formulagraph/internal/expr"
	"github.com/specialistvlad/formulagraph/internal/render"
	"github.com/specialistvlad/formulagraph/internal/workbook"
)

// Options configures a run.
type Options struct {
	// KeepUnparsed keeps formulas that use an unsupported function as opaque
	// raw text. When false such formulas are left out of the result.
	KeepUnparsed bool
	// CommentMarker starts comment lines in the rendered output.
	CommentMarker string
}

// Result is the outcome of one run.
type Result struct {
	// Ordered holds the emitted nodes, every operand before its consumers.
	Ordered     []*expr.Node
	Lines       []string
	Formulas    int
	Diagnostics []diag.Diagnostic
	Elapsed     time.Duration
}

// Engine turns workbooks into ordered formula listings.
type Engine struct {
	opts Options
}

// New creates an Engine.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// formulaCell is one unit of work of a pass.
type formulaCell struct {
	sheet *workbook.Sheet
	cell  *workbook.Cell
}

func (f formulaCell) context(final bool) builder.Context {
	return builder.Context{
		Sheet:      f.sheet.Name,
		SheetIndex: f.sheet.Index,
		Row:        f.cell.Row,
		Col:        f.cell.Col,
		Formula:    f.cell.Formula,
		Comment:    f.cell.Comment,
		Final:      final,
	}
}

// Run processes every formula of wb.
//
// Per-formula problems never stop a run; they are collected in
// Result.Diagnostics. The only error returned is a *depgraph.CycleError,
// which comes with the partial order in Result.
func (e *Engine) Run(ctx context.Context, wb *workbook.Workbook) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()

	cells := collect(wb)
	res := &Result{Formulas: len(cells)}
	ropts := render.Options{QualifySheets: wb.SheetCount() > 1, CommentMarker: e.opts.CommentMarker}
	logger.Debug("Engine: starting run.", "sheets", wb.SheetCount(), "formulas", len(cells))

	var runErr error
	if len(cells) == 1 {
		logger.Debug("Engine: single formula, skipping graph construction.")
		b := builder.New(wb, wb, nil)
		if root := e.build(ctx, b, cells[0], true, res, nil); root != nil {
			res.Ordered = []*expr.Node{root}
		}
	} else {
		res.Ordered, runErr = e.runGraph(ctx, wb, cells, res)
	}

	res.Lines = render.Lines(res.Ordered, ropts)
	res.Elapsed = time.Since(start)
	logger.Info("Engine: run complete.",
		"formulas", res.Formulas, "emitted", len(res.Ordered),
		"diagnostics", len(res.Diagnostics), "elapsed", res.Elapsed)
	return res, runErr
}

func (e *Engine) runGraph(ctx context.Context, wb *workbook.Workbook, cells []formulaCell, res *Result) ([]*expr.Node, error) {
	logger := ctxlog.FromContext(ctx)
	g := depgraph.New()
	b := builder.New(wb, wb, g)

	var deferred []formulaCell
	for _, fc := range cells {
		view := b.WithValues(workbook.Progressive{Book: wb, Through: fc.sheet.Index})
		e.build(ctx, view, fc, false, res, func() { deferred = append(deferred, fc) })
	}
	logger.Debug("Engine: primary pass complete.", "nodes", g.Len(), "edges", g.EdgeCount(), "deferred", len(deferred))

	for _, fc := range deferred {
		e.build(ctx, b, fc, true, res, nil)
	}
	if len(deferred) > 0 {
		logger.Debug("Engine: recovery pass complete.", "cells", len(deferred))
	}

	if n := g.LinkCoveredCells(); n > 0 {
		logger.Debug("Engine: linked formula cells to covering ranges.", "edges", n)
	}

	order, err := g.Sort(ctx)
	var cycleErr *depgraph.CycleError
	if errors.As(err, &cycleErr) {
		res.Diagnostics = append(res.Diagnostics,
			diag.New(diag.ErrCyclicDependency, "", "", "%d unresolved edges", cycleErr.Residual))
	}
	return order, err
}

// build runs the builder for one formula cell and applies the recovery
// policy. onDefer is called when the formula reads a sheet that is not
// readable yet. The returned root is nil when the formula was deferred or
// dropped.
func (e *Engine) build(ctx context.Context, b *builder.Builder, fc formulaCell, final bool, res *Result, onDefer func()) *expr.Node {
	c := fc.context(final)
	tokens := fc.cell.Tokens
	if !fc.cell.Tokenized {
		tokens = nil
	}

	out, err := b.Build(ctx, c, tokens)
	res.Diagnostics = append(res.Diagnostics, out.Diagnostics...)
	switch {
	case err == nil:
		return out.Root
	case errors.Is(err, diag.ErrCrossSheetValueUnresolved) && onDefer != nil:
		onDefer()
		return nil
	case errors.Is(err, diag.ErrUnsupportedBuiltinFunction) && e.opts.KeepUnparsed:
		return e.opaque(ctx, b, c)
	default:
		ctxlog.FromContext(ctx).Warn("Engine: formula dropped.",
			"sheet", c.Sheet, "cell", c.Address().String(), "error", err)
		return nil
	}
}

// opaque keeps a formula the builder rejected as its raw text.
func (e *Engine) opaque(ctx context.Context, b *builder.Builder, c builder.Context) *expr.Node {
	// an empty stream always yields an Opaque root; its diagnostic is dropped
	// in favour of the rejection already recorded
	out, _ := b.Build(ctx, c, nil)
	return out.Root
}

// collect lists the formula cells of wb in traversal order.
func collect(wb *workbook.Workbook) []formulaCell {
	var out []formulaCell
	for _, s := range wb.Sheets() {
		for _, c := range s.Cells() {
			if c.IsFormula() {
				out = append(out, formulaCell{sheet: s, cell: c})
			}
		}
	}
	return out
}
