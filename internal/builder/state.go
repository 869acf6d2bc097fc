package builder

import (
	"log/slog"

	"github.com/specialistvlad/formulagraph/internal/diag"
	"github.com/specialistvlad/formulagraph/internal/expr"
	"github.com/specialistvlad/formulagraph/internal/functions"
	"github.com/specialistvlad/formulagraph/internal/token"
)

// state is the working set of one Build call.
type state struct {
	b      *Builder
	c      Context
	logger *slog.Logger

	stack    []*expr.Node
	produced []*expr.Node
	diags    []diag.Diagnostic
	// unresolved is set once a reference points at a sheet that cannot be
	// read yet; the build finishes its tokens but is not committed.
	unresolved error
}

func (s *state) push(n *expr.Node) { s.stack = append(s.stack, n) }

// pop removes the top n operands and returns them in source order.
func (s *state) pop(n int) ([]*expr.Node, bool) {
	if len(s.stack) < n {
		return nil, false
	}
	out := make([]*expr.Node, n)
	copy(out, s.stack[len(s.stack)-n:])
	s.stack = s.stack[:len(s.stack)-n]
	return out, true
}

// composite addresses n at the formula cell and records it for registration.
func (s *state) composite(n *expr.Node) *expr.Node {
	n.Addr = s.c.Address()
	s.produced = append(s.produced, n)
	return n
}

func (s *state) report(kind error, format string, args ...any) diag.Diagnostic {
	d := diag.New(kind, s.c.Sheet, s.c.Address().String(), format, args...)
	s.diags = append(s.diags, d)
	s.logger.Warn("Build: "+kind.Error()+".", "kind", kind.Error(), "detail", d.Detail)
	return d
}

// apply dispatches one token to its production.
func (s *state) apply(tok token.Token) error {
	switch tok.Kind {
	case token.Number, token.Int, token.Bool, token.String:
		s.push(expr.NewLiteral(tok.Value))
	case token.Array:
		s.push(expr.NewArray(tok.Rows))
	case token.MissingArg:
		s.push(expr.NewMissing())

	case token.Ref:
		s.push(s.cellRef(tok))
	case token.Area:
		s.push(s.areaRef(tok))
	case token.Ref3D, token.Area3D:
		s.push(s.prefixedRef(tok))
	case token.Name:
		s.push(s.namedRef(tok))

	case token.Add, token.Subtract, token.Multiply, token.Divide, token.Power, token.Concat,
		token.Equal, token.LessThan, token.GreaterThan, token.LessEqual, token.GreaterEqual, token.NotEqual:
		op, _ := tok.Kind.BinaryOperator()
		s.binary(tok, func(l, r *expr.Node) *expr.Node { return expr.NewBinary(op, l, r) })
	case token.Intersection:
		s.binary(tok, expr.NewIntersection)
	case token.Union:
		s.binary(tok, expr.NewUnion)

	case token.UnaryMinus:
		s.unary(tok, func(x *expr.Node) *expr.Node { return expr.NewUnary(expr.OpSubtract, x) })
	case token.UnaryPlus:
		s.unary(tok, func(x *expr.Node) *expr.Node { return expr.NewUnary(expr.OpAdd, x) })
	case token.Percent:
		s.unary(tok, func(x *expr.Node) *expr.Node { return expr.NewUnary(expr.OpPercent, x) })
	case token.Paren:
		s.unary(tok, expr.NewParen)

	case token.Attr:
		s.attr(tok)
	case token.Func, token.FuncVar:
		return s.call(tok)

	case token.RefError, token.AreaError:
		s.push(expr.NewRefError())
	case token.DeletedRef, token.DeletedArea, token.DeletedRef3D, token.DeletedArea3D,
		token.MemError, token.Unknown:
		s.placeholder(tok)
	default:
		s.placeholder(tok)
	}
	return nil
}

func (s *state) binary(tok token.Token, build func(l, r *expr.Node) *expr.Node) {
	operands, ok := s.pop(2)
	if !ok {
		s.report(diag.ErrStackUnderflow, "%s needs 2 operands, have %d; token skipped", tok.Kind, len(s.stack))
		return
	}
	s.push(s.composite(build(operands[0], operands[1])))
}

func (s *state) unary(tok token.Token, build func(x *expr.Node) *expr.Node) {
	operands, ok := s.pop(1)
	if !ok {
		s.report(diag.ErrStackUnderflow, "%s needs an operand; token skipped", tok.Kind)
		return
	}
	s.push(s.composite(build(operands[0])))
}

// attr handles attribute markers. Only the sum marker builds anything: it
// wraps the top operand in a SUM call.
func (s *state) attr(tok token.Token) {
	if tok.Attr != token.AttrSum {
		return
	}
	operands, ok := s.pop(1)
	if !ok {
		s.report(diag.ErrStackUnderflow, "sum attribute needs an operand; token skipped")
		return
	}
	arg := operands[0]
	if !arg.IsReference() {
		s.report(diag.ErrNonReferenceAggregateArgument, "SUM over %s", arg.Kind)
	}
	s.push(s.composite(expr.NewFunction("SUM", []*expr.Node{arg})))
}

// call builds a function node. A Func token takes the fixed arity of its
// function; a FuncVar token carries its own operand count, capped at the
// function's maximum.
func (s *state) call(tok token.Token) error {
	def, ok := functions.Lookup(tok.Function)
	if !ok {
		d := s.report(diag.ErrUnsupportedBuiltinFunction, "%q", tok.Function)
		return d
	}
	if def.Volatile {
		s.logger.Debug("Build: volatile function.", "function", def.Name)
	}

	arity := def.Min
	switch {
	case tok.Kind == token.FuncVar:
		arity = max(tok.Args, 0)
		if arity > def.Max {
			s.report(diag.ErrArityOutOfBounds, "%s takes at most %d operands, token claims %d",
				def.Name, def.Max, tok.Args)
			arity = def.Max
		} else if !def.Accepts(arity) {
			s.logger.Warn("Build: argument count below arity bounds.",
				"function", def.Name, "args", arity, "min", def.Min)
		}
	case !def.Fixed():
		s.logger.Debug("Build: variable-arity function in a fixed-arity token.",
			"function", def.Name, "args", arity)
	}

	take := arity
	if len(s.stack) < take {
		s.report(diag.ErrStackUnderflow, "%s needs %d operands, have %d; padding with Missing",
			def.Name, arity, len(s.stack))
		take = len(s.stack)
	}
	args, _ := s.pop(take)
	for len(args) < arity {
		args = append(args, expr.NewMissing())
	}
	s.push(s.composite(expr.NewFunction(def.Name, args)))
	return nil
}

// placeholder stands in for tokens that reference nothing usable.
func (s *state) placeholder(tok token.Token) {
	s.report(diag.ErrUnknownOrDeletedToken, "%s", tok.String())
	s.push(expr.NewError(expr.ErrRef))
}

// lookupFailed records a reference whose backing cells could not be read.
// Outside a recovery build the formula is deferred; in a recovery build the
// failure is final. Either way the caller pushes a placeholder.
func (s *state) lookupFailed(what string, err error) *expr.Node {
	switch {
	case s.c.Final:
		s.report(diag.ErrUnknownOrDeletedToken, "%s: %v", what, err)
	case s.unresolved == nil:
		s.unresolved = s.report(diag.ErrCrossSheetValueUnresolved, "%s: %v", what, err)
	}
	return expr.NewError(expr.ErrRef)
}
