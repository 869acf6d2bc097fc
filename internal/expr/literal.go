package expr

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// LiteralKind discriminates the value held by a Literal.
type LiteralKind int

const (
	Empty LiteralKind = iota
	Number
	Integer
	Boolean
	Text
	Error
	ErrorRef
	Missing
)

func (k LiteralKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Number:
		return "number"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case Text:
		return "text"
	case Error:
		return "error"
	case ErrorRef:
		return "error_ref"
	case Missing:
		return "missing"
	default:
		return "unknown"
	}
}

// ErrorCode is a cell error value, numbered as in the binary file format.
type ErrorCode int

const (
	ErrNull  ErrorCode = 0x00
	ErrDiv0  ErrorCode = 0x07
	ErrValue ErrorCode = 0x0F
	ErrRef   ErrorCode = 0x17
	ErrName  ErrorCode = 0x1D
	ErrNum   ErrorCode = 0x24
	ErrNA    ErrorCode = 0x2A
)

// UnknownErrorText is rendered for error codes outside the known set.
const UnknownErrorText = "FIXME!"

var errorText = map[ErrorCode]string{
	ErrNull:  "#NULL!",
	ErrDiv0:  "#DIV/0!",
	ErrValue: "#VALUE!",
	ErrRef:   "#REF!",
	ErrName:  "#NAME?",
	ErrNum:   "#NUM!",
	ErrNA:    "#N/A",
}

func (c ErrorCode) String() string {
	if s, ok := errorText[c]; ok {
		return s
	}
	return UnknownErrorText
}

// ParseErrorCode maps `#DIV/0!` style text back to its code.
func ParseErrorCode(text string) (ErrorCode, bool) {
	text = strings.ToUpper(strings.TrimSpace(text))
	for code, s := range errorText {
		if s == text {
			return code, true
		}
	}
	return 0, false
}

// ErrorType is the cty capsule type that carries an ErrorCode.
var ErrorType = cty.Capsule("error", reflect.TypeOf(ErrorCode(0)))

// Literal is a typed constant: a token payload or a captured cell value.
// Value holds the payload as a cty value; it is cty.NilVal for Empty and
// Missing. Kind separates integers from floats, which cty does not.
type Literal struct {
	Kind  LiteralKind
	Value cty.Value
}

// NumberValue returns a floating point literal.
func NumberValue(v float64) Literal { return Literal{Kind: Number, Value: cty.NumberFloatVal(v)} }

// IntegerValue returns an integer literal.
func IntegerValue(v int64) Literal { return Literal{Kind: Integer, Value: cty.NumberIntVal(v)} }

// BoolValue returns a boolean literal.
func BoolValue(v bool) Literal { return Literal{Kind: Boolean, Value: cty.BoolVal(v)} }

// TextValue returns a string literal.
func TextValue(v string) Literal { return Literal{Kind: Text, Value: cty.StringVal(v)} }

// ErrorValue returns an error-code literal.
func ErrorValue(code ErrorCode) Literal {
	return Literal{Kind: Error, Value: cty.CapsuleVal(ErrorType, &code)}
}

// RefErrorValue returns the literal of an invalid reference.
func RefErrorValue() Literal {
	code := ErrRef
	return Literal{Kind: ErrorRef, Value: cty.CapsuleVal(ErrorType, &code)}
}

// MissingValue returns the literal of an absent function argument.
func MissingValue() Literal { return Literal{Kind: Missing} }

// FromCty converts a known cty value into a literal. Numbers become Integer
// literals when integer is set. A null value is an empty cell.
func FromCty(v cty.Value, integer bool) (Literal, error) {
	if v.IsNull() {
		return Literal{}, nil
	}
	if !v.IsKnown() {
		return Literal{}, fmt.Errorf("value must be a constant")
	}

	switch v.Type() {
	case cty.Number:
		if integer {
			var i int64
			if err := gocty.FromCtyValue(v, &i); err != nil {
				return Literal{}, err
			}
			return IntegerValue(i), nil
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return Literal{}, err
		}
		return NumberValue(f), nil
	case cty.Bool:
		return BoolValue(v.True()), nil
	case cty.String:
		return TextValue(v.AsString()), nil
	case ErrorType:
		return ErrorValue(*v.EncapsulatedValue().(*ErrorCode)), nil
	default:
		return Literal{}, fmt.Errorf("unsupported value type %s", v.Type().FriendlyName())
	}
}

// AsFloat returns the payload of a Number or Integer literal.
func (l Literal) AsFloat() float64 {
	var f float64
	if l.Kind != Number && l.Kind != Integer {
		return 0
	}
	_ = gocty.FromCtyValue(l.Value, &f)
	return f
}

// AsInt returns the payload of an Integer literal.
func (l Literal) AsInt() int64 {
	var i int64
	if l.Kind != Integer {
		return 0
	}
	_ = gocty.FromCtyValue(l.Value, &i)
	return i
}

// AsBool returns the payload of a Boolean literal.
func (l Literal) AsBool() bool {
	return l.Kind == Boolean && l.Value.True()
}

// AsText returns the payload of a Text literal.
func (l Literal) AsText() string {
	if l.Kind != Text {
		return ""
	}
	return l.Value.AsString()
}

// AsError returns the code of an Error or ErrorRef literal.
func (l Literal) AsError() ErrorCode {
	if l.Kind != Error && l.Kind != ErrorRef {
		return ErrRef
	}
	return *l.Value.EncapsulatedValue().(*ErrorCode)
}
