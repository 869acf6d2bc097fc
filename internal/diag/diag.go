// Package diag defines the recoverable problems reported while turning a
// workbook's formulas into an ordered program. None of them stop a run;
// they are logged and collected next to a degraded result.
package diag

import (
	"errors"
	"fmt"
)

var (
	ErrTokenUnavailable              = errors.New("token stream unavailable")
	ErrUnsupportedBuiltinFunction    = errors.New("unsupported builtin function")
	ErrNonReferenceAggregateArgument = errors.New("argument is not a reference")
	ErrUnknownOrDeletedToken         = errors.New("unknown or deleted token")
	ErrStackUnderflow                = errors.New("operand stack underflow")
	ErrUnbalancedStack               = errors.New("operands left on stack")
	ErrArityOutOfBounds              = errors.New("argument count outside arity bounds")
	ErrCyclicDependency              = errors.New("cyclic or unsatisfiable dependency")
	ErrCrossSheetValueUnresolved     = errors.New("cross-sheet value unresolved")
)

// Diagnostic is one recorded problem, located at a formula cell when known.
type Diagnostic struct {
	Kind   error
	Sheet  string
	Cell   string
	Detail string
}

// New builds a diagnostic of the given kind.
func New(kind error, sheet, cell, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Sheet: sheet, Cell: cell, Detail: fmt.Sprintf(format, args...)}
}

func (d Diagnostic) Error() string {
	loc := d.Cell
	if d.Sheet != "" {
		loc = d.Sheet + "!" + d.Cell
	}
	switch {
	case loc == "" && d.Detail == "":
		return d.Kind.Error()
	case loc == "":
		return fmt.Sprintf("%v: %s", d.Kind, d.Detail)
	case d.Detail == "":
		return fmt.Sprintf("%s: %v", loc, d.Kind)
	default:
		return fmt.Sprintf("%s: %v: %s", loc, d.Kind, d.Detail)
	}
}

// Unwrap exposes the kind so errors.Is works against the sentinels.
func (d Diagnostic) Unwrap() error { return d.Kind }

// LogArgs returns the diagnostic as slog key/value pairs.
func (d Diagnostic) LogArgs() []any {
	return []any{"kind", d.Kind.Error(), "sheet", d.Sheet, "cell", d.Cell, "detail", d.Detail}
}

// Count returns how many diagnostics in ds are of the given kind.
func Count(ds []Diagnostic, kind error) int {
	n := 0
	for _, d := range ds {
		if errors.Is(d, kind) {
			n++
		}
	}
	return n
}
