package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/specialistvlad/formulagraph/internal/cellref"
	"github.com/specialistvlad/formulagraph/internal/expr"
)

const (
	missingText = "Missing"
	emptyText   = "Empty"
)

// Literal renders a constant in its canonical text form, converting its cty
// payload back to Go values.
func Literal(l expr.Literal) string {
	switch l.Kind {
	case expr.Number:
		return Number(l.AsFloat())
	case expr.Integer:
		return strconv.FormatInt(l.AsInt(), 10)
	case expr.Boolean:
		if l.AsBool() {
			return "TRUE"
		}
		return "FALSE"
	case expr.Text:
		return `"` + strings.ReplaceAll(l.AsText(), `"`, `""`) + `"`
	case expr.Error, expr.ErrorRef:
		return l.AsError().String()
	case expr.Missing:
		return missingText
	case expr.Empty:
		return emptyText
	default:
		return expr.UnknownErrorText
	}
}

// Number formats a float the way the JVM's Double.toString does: plain
// decimal notation with at least one fractional digit between 1e-3 and 1e7,
// and `d.dddEn` notation outside it.
func Number(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(f)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(f, 'E', -1, 64)
	mantissa, exponent, _ := strings.Cut(s, "E")
	if !strings.ContainsRune(mantissa, '.') {
		mantissa += ".0"
	}
	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(exp)
}

// Values renders the captured content of a range. Rows and columns render as
// one flat list `[ v1 v2 ]`; rectangles render row by row `[[v1 v2][v3 v4]]`.
// Missing trailing values are padded as empty cells; a range that captured
// nothing renders as an empty list.
func Values(r *expr.Range) string {
	if r == nil || len(r.Values) == 0 {
		return "[ ]"
	}
	rows, cols := r.Area.Rows(), r.Area.Cols()
	values := r.Values
	if len(values) < rows*cols {
		padded := make([]expr.Literal, rows*cols)
		copy(padded, values)
		values = padded
	}

	if r.Shape() != cellref.Rectangular {
		return flatList(values)
	}

	grid := make([][]expr.Literal, rows)
	for i := range grid {
		grid[i] = values[i*cols : (i+1)*cols]
	}
	return nestedList(grid)
}

// Grid renders an inline array constant with the same conventions as Values.
func Grid(rows [][]expr.Literal) string {
	switch {
	case len(rows) == 0:
		return "[ ]"
	case len(rows) == 1:
		return flatList(rows[0])
	}
	allSingle := true
	for _, row := range rows {
		if len(row) != 1 {
			allSingle = false
			break
		}
	}
	if allSingle {
		column := make([]expr.Literal, 0, len(rows))
		for _, row := range rows {
			column = append(column, row[0])
		}
		return flatList(column)
	}
	return nestedList(rows)
}

func flatList(values []expr.Literal) string {
	if len(values) == 0 {
		return "[ ]"
	}
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, v := range values {
		sb.WriteString(Literal(v))
		sb.WriteByte(' ')
	}
	sb.WriteByte(']')
	return sb.String()
}

func nestedList(rows [][]expr.Literal) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for _, row := range rows {
		sb.WriteByte('[')
		for i, v := range row {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(Literal(v))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}
