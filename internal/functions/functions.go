// Package functions is the builtin function registry consulted by the tree
// builder. Functions are opaque call sites here: only their name and the
// number of operands they take off the stack matter.
package functions

import "strings"

// MaxArgs is the operand limit of a variable-arity call.
const MaxArgs = 255

// Def is the arity of one builtin. Fixed-arity calls take exactly Min
// operands; variable-arity calls take an explicit count within [Min, Max].
type Def struct {
	Name     string
	Min      int
	Max      int
	Volatile bool
}

// Fixed reports whether the function always takes the same number of operands.
func (s Def) Fixed() bool { return s.Min == s.Max }

// Accepts reports whether n operands are a valid call.
func (s Def) Accepts(n int) bool { return n >= s.Min && n <= s.Max }

var builtins = map[string]Def{}

func register(name string, minArgs, maxArgs int) {
	builtins[name] = Def{Name: name, Min: minArgs, Max: maxArgs}
}

func registerVolatile(name string, minArgs, maxArgs int) {
	builtins[name] = Def{Name: name, Min: minArgs, Max: maxArgs, Volatile: true}
}

func init() {
	// aggregates
	register("SUM", 0, MaxArgs)
	register("AVERAGE", 1, MaxArgs)
	register("AVERAGEA", 1, MaxArgs)
	register("COUNT", 0, MaxArgs)
	register("COUNTA", 0, MaxArgs)
	register("COUNTBLANK", 1, 1)
	register("COUNTIF", 2, 2)
	register("SUMIF", 2, 3)
	register("SUMPRODUCT", 1, MaxArgs)
	register("MAX", 1, MaxArgs)
	register("MIN", 1, MaxArgs)
	register("MEDIAN", 1, MaxArgs)
	register("MODE", 1, MaxArgs)
	register("PRODUCT", 0, MaxArgs)
	register("STDEV", 1, MaxArgs)
	register("VAR", 1, MaxArgs)

	// logic
	register("IF", 2, 3)
	register("AND", 1, MaxArgs)
	register("OR", 1, MaxArgs)
	register("NOT", 1, 1)
	register("TRUE", 0, 0)
	register("FALSE", 0, 0)
	register("ISNA", 1, 1)
	register("ISERROR", 1, 1)
	register("ISBLANK", 1, 1)
	register("ISNUMBER", 1, 1)
	register("ISTEXT", 1, 1)
	register("NA", 0, 0)
	register("CHOOSE", 2, MaxArgs)

	// math
	register("ABS", 1, 1)
	register("ROUND", 2, 2)
	register("ROUNDUP", 2, 2)
	register("ROUNDDOWN", 2, 2)
	register("INT", 1, 1)
	register("TRUNC", 1, 2)
	register("FLOOR", 2, 2)
	register("CEILING", 2, 2)
	register("SQRT", 1, 1)
	register("POWER", 2, 2)
	register("MOD", 2, 2)
	register("EXP", 1, 1)
	register("LN", 1, 1)
	register("LOG", 1, 2)
	register("LOG10", 1, 1)
	register("SIGN", 1, 1)
	register("PI", 0, 0)
	register("SIN", 1, 1)
	register("COS", 1, 1)
	register("TAN", 1, 1)

	// text
	register("CONCATENATE", 1, MaxArgs)
	register("LEN", 1, 1)
	register("UPPER", 1, 1)
	register("LOWER", 1, 1)
	register("TRIM", 1, 1)
	register("LEFT", 1, 2)
	register("RIGHT", 1, 2)
	register("MID", 3, 3)
	register("FIND", 2, 3)
	register("SEARCH", 2, 3)
	register("SUBSTITUTE", 3, 4)
	register("REPLACE", 4, 4)
	register("TEXT", 2, 2)
	register("VALUE", 1, 1)
	register("EXACT", 2, 2)
	register("REPT", 2, 2)

	// lookup and reference
	register("VLOOKUP", 3, 4)
	register("HLOOKUP", 3, 4)
	register("LOOKUP", 2, 3)
	register("MATCH", 2, 3)
	register("INDEX", 2, 4)
	register("ROW", 0, 1)
	register("COLUMN", 0, 1)
	register("ROWS", 1, 1)
	register("COLUMNS", 1, 1)
	registerVolatile("OFFSET", 3, 5)
	registerVolatile("INDIRECT", 1, 2)

	// date and time
	register("DATE", 3, 3)
	register("YEAR", 1, 1)
	register("MONTH", 1, 1)
	register("DAY", 1, 1)
	register("HOUR", 1, 1)
	register("MINUTE", 1, 1)
	register("SECOND", 1, 1)
	register("WEEKDAY", 1, 2)
	register("DAYS360", 2, 3)
	registerVolatile("NOW", 0, 0)
	registerVolatile("TODAY", 0, 0)

	// financial
	register("PMT", 3, 5)
	register("NPV", 2, MaxArgs)
	register("PV", 3, 5)
	register("FV", 3, 5)
	register("IRR", 1, 2)
	register("RATE", 3, 6)

	registerVolatile("RAND", 0, 0)
}

// Lookup finds a builtin by name, ignoring case.
func Lookup(name string) (Def, bool) {
	def, ok := builtins[strings.ToUpper(strings.TrimSpace(name))]
	return def, ok
}
