package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/specialistvlad/formulagraph/internal/ctxlog"
	"github.com/specialistvlad/formulagraph/internal/depgraph"
	"github.com/specialistvlad/formulagraph/internal/diag"
	"github.com/specialistvlad/formulagraph/internal/report"
)

// summarized lists the diagnostic kinds counted in the run summary.
var summarized = []error{
	diag.ErrTokenUnavailable,
	diag.ErrUnsupportedBuiltinFunction,
	diag.ErrNonReferenceAggregateArgument,
	diag.ErrUnknownOrDeletedToken,
	diag.ErrStackUnderflow,
	diag.ErrUnbalancedStack,
	diag.ErrArityOutOfBounds,
	diag.ErrCrossSheetValueUnresolved,
	diag.ErrCyclicDependency,
}

// Run loads the workbook, orders its formulas and writes the report.
// A dependency cycle degrades the report but is not an error.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "workbook", a.config.WorkbookPath)

	wb, err := a.loader.Load(ctx, a.config.WorkbookPath)
	if err != nil {
		return fmt.Errorf("failed to load workbook: %w", err)
	}
	a.logger.Debug("Workbook loaded.", "sheets", wb.SheetCount())

	res, err := a.engine.Run(ctx, wb)
	var cycleErr *depgraph.CycleError
	switch {
	case errors.As(err, &cycleErr):
		a.logger.Warn("Report is incomplete: dependency cycle.",
			"unresolved_edges", cycleErr.Residual, "emitted", len(res.Ordered))
	case err != nil:
		return fmt.Errorf("failed to order formulas: %w", err)
	}
	a.result = res

	var header []string
	if a.config.Header {
		header = report.Header(a.config.WorkbookPath, res.Formulas, res.Elapsed, a.config.CommentMarker)
	}
	if err := a.writeReport(ctx, header, res.Lines); err != nil {
		return err
	}

	summary := []any{"formulas", res.Formulas, "lines", len(res.Lines), "elapsed", res.Elapsed}
	for _, kind := range summarized {
		if n := diag.Count(res.Diagnostics, kind); n > 0 {
			summary = append(summary, kind.Error(), n)
		}
	}
	a.logger.Info("🏁 Report finished.", summary...)
	return nil
}

func (a *App) writeReport(ctx context.Context, header, lines []string) error {
	if a.config.OutputPath == "" {
		return report.Write(ctx, a.outW, header, lines)
	}

	f, err := os.Create(a.config.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := report.Write(ctx, f, header, lines); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
