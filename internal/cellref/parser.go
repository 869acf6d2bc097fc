package cellref

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// MaxRows and MaxCols are the grid limits of a modern workbook.
	MaxRows = 1 << 20
	MaxCols = 1 << 14
)

// cellRegex matches a single A1 reference with optional `$` anchors.
var cellRegex = regexp.MustCompile(`^\$?([A-Za-z]{1,3})\$?([0-9]+)$`)

// ColumnName converts a zero-based column index to its letter form (0 -> A, 27 -> AB).
func ColumnName(col int) string {
	if col < 0 {
		return ""
	}
	var b []byte
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		b = append(b, byte('A'+(n-1)%26))
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// ColumnIndex converts column letters to a zero-based index.
func ColumnIndex(letters string) (int, error) {
	if letters == "" {
		return 0, fmt.Errorf("column letters cannot be empty")
	}
	n := 0
	for _, r := range strings.ToUpper(letters) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid column letters: %q", letters)
		}
		n = n*26 + int(r-'A'+1)
	}
	if n > MaxCols {
		return 0, fmt.Errorf("column %q is beyond the grid", letters)
	}
	return n - 1, nil
}

// SplitSheet separates an optional `Sheet!` or `'My Sheet'!` prefix from a reference.
func SplitSheet(ref string) (sheet, rest string) {
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", ref
	}
	sheet = ref[:idx]
	if len(sheet) >= 2 && strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	return sheet, ref[idx+1:]
}

// ParseCell parses `B7`, `$B$7` or `Sheet1!B7` into an Address. The sheet
// index is left at zero; callers that know the workbook fill it in.
func ParseCell(ref string) (Address, error) {
	if ref == "" {
		return Address{}, fmt.Errorf("cell reference cannot be empty")
	}
	sheet, rest := SplitSheet(ref)

	matches := cellRegex.FindStringSubmatch(rest)
	if matches == nil {
		return Address{}, fmt.Errorf("invalid cell reference: %q", ref)
	}

	col, err := ColumnIndex(matches[1])
	if err != nil {
		return Address{}, err
	}
	row, err := strconv.Atoi(matches[2])
	if err != nil {
		// Unreachable due to regex `[0-9]+`
		return Address{}, fmt.Errorf("internal error parsing row: %w", err)
	}
	if row < 1 || row > MaxRows {
		return Address{}, fmt.Errorf("row %d is beyond the grid", row)
	}
	return Address{Sheet: sheet, Row: row - 1, Col: col}, nil
}

// ParseArea parses `A1:C3` (optionally sheet-qualified). A lone cell parses
// as a one-cell area.
func ParseArea(ref string) (Area, error) {
	if ref == "" {
		return Area{}, fmt.Errorf("area reference cannot be empty")
	}
	sheet, rest := SplitSheet(ref)

	parts := strings.Split(rest, ":")
	switch len(parts) {
	case 1:
		a, err := ParseCell(parts[0])
		if err != nil {
			return Area{}, err
		}
		return NewArea(0, sheet, a, a), nil
	case 2:
		a, err := ParseCell(parts[0])
		if err != nil {
			return Area{}, err
		}
		b, err := ParseCell(parts[1])
		if err != nil {
			return Area{}, err
		}
		return NewArea(0, sheet, a, b), nil
	default:
		return Area{}, fmt.Errorf("invalid area reference: %q", ref)
	}
}
