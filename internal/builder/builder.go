package builder

import (
	"context"

	"github.com/specialistvlad/formulagraph/internal/cellref"
	"github.com/specialistvlad/formulagraph/internal/ctxlog"
	"github.com/specialistvlad/formulagraph/internal/diag"
	"github.com/specialistvlad/formulagraph/internal/expr"
	"github.com/specialistvlad/formulagraph/internal/token"
	"github.com/specialistvlad/formulagraph/internal/workbook"
)

// Registrar receives every composite node of a successfully built formula,
// in the order the nodes were produced. *depgraph.Graph implements it.
type Registrar interface {
	Register(n *expr.Node)
}

// SheetLocator resolves a sheet name to its position and canonical
// spelling. Value accessors that implement it let 3D references carry the
// right sheet index.
type SheetLocator interface {
	Locate(sheet string) (index int, name string, err error)
}

// Context identifies the formula being built.
type Context struct {
	Sheet      string
	SheetIndex int
	Row        int
	Col        int
	// Formula is the raw text, used when no tree can be built.
	Formula string
	Comment string
	// Final marks a recovery build: references that still cannot be located
	// become #REF! placeholders instead of deferring the formula.
	Final bool
}

// Address returns the location of the formula cell.
func (c Context) Address() cellref.Address {
	return cellref.Address{SheetIndex: c.SheetIndex, Sheet: c.Sheet, Row: c.Row, Col: c.Col}
}

// Result is the outcome of one build.
type Result struct {
	Root        *expr.Node
	Diagnostics []diag.Diagnostic
}

// Builder builds expression trees against one workbook.
type Builder struct {
	values    workbook.ValueAccessor
	names     workbook.NameResolver
	registrar Registrar
}

// New creates a Builder. names and registrar may be nil.
func New(values workbook.ValueAccessor, names workbook.NameResolver, registrar Registrar) *Builder {
	return &Builder{values: values, names: names, registrar: registrar}
}

// WithValues returns a copy of the builder reading cell values from values.
func (b *Builder) WithValues(values workbook.ValueAccessor) *Builder {
	cp := *b
	cp.values = values
	return &cp
}

// Build consumes the postfix tokens of one formula and returns its root.
//
// The returned error is a diag.Diagnostic of kind
// diag.ErrUnsupportedBuiltinFunction or diag.ErrCrossSheetValueUnresolved.
// In both cases nothing is registered. The error is also the last entry of
// Result.Diagnostics, which carries everything collected up to that point.
func (b *Builder) Build(ctx context.Context, c Context, tokens []token.Token) (*Result, error) {
	s := &state{
		b:      b,
		c:      c,
		logger: ctxlog.FromContext(ctx).With("sheet", c.Sheet, "cell", c.Address().String()),
	}
	s.logger.Debug("Build: starting formula.", "tokens", len(tokens))

	for i, tok := range tokens {
		if err := s.apply(tok); err != nil {
			s.logger.Debug("Build: aborted.", "token_index", i, "token", tok.String(), "error", err)
			return &Result{Diagnostics: s.diags}, err
		}
	}
	if s.unresolved != nil {
		s.logger.Debug("Build: deferred.", "error", s.unresolved)
		return &Result{Diagnostics: s.diags}, s.unresolved
	}

	root := s.finish()
	root.Comment = c.Comment
	if b.registrar != nil {
		for _, n := range s.produced {
			b.registrar.Register(n)
		}
	}
	s.logger.Debug("Build: complete.", "kind", root.Kind.String(), "nodes", len(s.produced))
	return &Result{Root: root, Diagnostics: s.diags}, nil
}

// finish resolves the end-of-stream stack into a root.
func (s *state) finish() *expr.Node {
	switch len(s.stack) {
	case 0:
		s.report(diag.ErrTokenUnavailable, "no tree built, keeping raw formula %q", s.c.Formula)
		return s.composite(expr.NewOpaque(s.c.Formula))
	case 1:
	default:
		s.report(diag.ErrUnbalancedStack, "%d operands discarded", len(s.stack)-1)
	}
	root := s.stack[len(s.stack)-1]
	s.stack = nil
	if root.IsTerminal() || root.IsReference() {
		return s.composite(expr.NewFormula(root))
	}
	return root
}
