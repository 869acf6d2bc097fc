// Package token defines the postfix token vocabulary a formula arrives in.
// Tokens are produced by an external tokenizer; this package only names
// their discriminants and carries their payload.
package token

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/formulagraph/internal/expr"
)

// Kind is the discriminant of a Token.
type Kind int

const (
	Unknown Kind = iota
	Array
	Add
	Area3D
	AreaError
	Area
	Attr
	Bool
	Concat
	DeletedRef3D
	DeletedArea3D
	DeletedArea
	DeletedRef
	Divide
	Equal
	Func
	FuncVar
	GreaterEqual
	GreaterThan
	Intersection
	Int
	LessEqual
	LessThan
	MemError
	MissingArg
	Multiply
	Name
	NotEqual
	Number
	Paren
	Percent
	Power
	Ref3D
	RefError
	Ref
	String
	Subtract
	UnaryMinus
	UnaryPlus
	Union
)

var kindNames = map[Kind]string{
	Unknown:       "unknown",
	Array:         "array",
	Add:           "add",
	Area3D:        "area3d",
	AreaError:     "area_error",
	Area:          "area",
	Attr:          "attr",
	Bool:          "bool",
	Concat:        "concat",
	DeletedRef3D:  "deleted_ref3d",
	DeletedArea3D: "deleted_area3d",
	DeletedArea:   "deleted_area",
	DeletedRef:    "deleted_ref",
	Divide:        "divide",
	Equal:         "equal",
	Func:          "func",
	FuncVar:       "funcvar",
	GreaterEqual:  "greater_equal",
	GreaterThan:   "greater_than",
	Intersection:  "intersection",
	Int:           "int",
	LessEqual:     "less_equal",
	LessThan:      "less_than",
	MemError:      "mem_error",
	MissingArg:    "missing_arg",
	Multiply:      "multiply",
	Name:          "name",
	NotEqual:      "not_equal",
	Number:        "number",
	Paren:         "paren",
	Percent:       "percent",
	Power:         "power",
	Ref3D:         "ref3d",
	RefError:      "ref_error",
	Ref:           "ref",
	String:        "string",
	Subtract:      "subtract",
	UnaryMinus:    "unary_minus",
	UnaryPlus:     "unary_plus",
	Union:         "union",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// kindAliases are the long discriminant spellings accepted next to the
// short names in kindNames.
var kindAliases = map[string]Kind{
	"array_literal":           Array,
	"attribute":               Attr,
	"sum_marker":              Attr,
	"boolean":                 Bool,
	"deleted_3d":              DeletedRef3D,
	"function_fixed_arity":    Func,
	"function_variable_arity": FuncVar,
	"integer":                 Int,
	"missing_argument":        MissingArg,
	"parenthesis":             Paren,
}

// ParseKind maps a discriminant name (as used in workbook fixtures) to a Kind.
// Hyphens and case are ignored, and `ref-3d` style names match `ref3d`.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if k, ok := kindsByName[normalized]; ok {
		return k, nil
	}
	if k, ok := kindsByName[strings.ReplaceAll(normalized, "_3d", "3d")]; ok {
		return k, nil
	}
	if k, ok := kindAliases[normalized]; ok {
		return k, nil
	}
	return Unknown, fmt.Errorf("unknown token kind %q", name)
}

// Attribute markers carried by Attr tokens. Only AttrSum changes the tree;
// the rest are evaluation hints and are skipped.
const (
	AttrSum      = "sum"
	AttrVolatile = "volatile"
	AttrIf       = "if"
	AttrChoose   = "choose"
	AttrSkip     = "skip"
	AttrSpace    = "space"
)

// Token is one element of a formula in postfix order.
type Token struct {
	Kind Kind

	// Value is the constant of Number, Int, Bool and String tokens.
	Value expr.Literal
	// Ref is the A1 text of Ref, Area and their 3D forms.
	Ref string
	// Sheet and Book qualify 3D references; Book is set for external workbooks.
	Sheet string
	Book  string
	// Name is the defined name of Name tokens.
	Name string
	// Function is the builtin name of Func and FuncVar tokens; Args is the
	// operand count of FuncVar tokens.
	Function string
	Args     int
	// Attr is the marker of Attr tokens.
	Attr string
	// Rows holds the grid of Array tokens.
	Rows [][]expr.Literal
}

// BinaryOperator returns the operator symbol of binary token kinds.
func (k Kind) BinaryOperator() (expr.Operator, bool) {
	switch k {
	case Add:
		return expr.OpAdd, true
	case Subtract:
		return expr.OpSubtract, true
	case Multiply:
		return expr.OpMultiply, true
	case Divide:
		return expr.OpDivide, true
	case Power:
		return expr.OpPower, true
	case Concat:
		return expr.OpConcat, true
	case Equal:
		return expr.OpEqual, true
	case LessThan:
		return expr.OpLess, true
	case GreaterThan:
		return expr.OpGreater, true
	case LessEqual:
		return expr.OpLessEqual, true
	case GreaterEqual:
		return expr.OpGreaterEqual, true
	case NotEqual:
		return expr.OpNotEqual, true
	default:
		return "", false
	}
}

func (t Token) String() string {
	switch t.Kind {
	case Ref, Area:
		return t.Kind.String() + " " + t.Ref
	case Ref3D, Area3D:
		return t.Kind.String() + " " + t.Sheet + "!" + t.Ref
	case Name:
		return t.Kind.String() + " " + t.Name
	case Func:
		return t.Kind.String() + " " + t.Function
	case FuncVar:
		return fmt.Sprintf("%s %s/%d", t.Kind, t.Function, t.Args)
	case Attr:
		return t.Kind.String() + " " + t.Attr
	default:
		return t.Kind.String()
	}
}
