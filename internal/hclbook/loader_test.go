package hclbook

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/formulagraph/internal/expr"
	"github.com/specialistvlad/formulagraph/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

const basicBook = `
sheet "Sheet1" {
  cell "A1" { value = 10 }
  cell "A2" { value = "twenty" }
  cell "B1" { value = true }
  cell "B2" { date = "2021-03-04" }
  cell "B3" { error = "#DIV/0!" }
  cell "A3" {
    formula = "=A1+A2"
    comment = "total"
    value   = 30
    token "ref" { ref = "A1" }
    token "ref" { ref = "A2" }
    token "add" {}
  }
  cell "C1" {
    formula = "=INDIRECT(\"A1\")"
  }
}

sheet "Data" {
  cell "A1" {
    formula = "=SUM(Sheet1!A1:B1, {1,2;3,4}, 2)"
    token "area3d" {
      sheet = "Sheet1"
      ref   = "A1:B1"
    }
    token "array" { rows = [[1, 2], [3, 4]] }
    token "int" { value = 2 }
    token "funcvar" {
      function = "SUM"
      args     = 3
    }
  }
}

name "slist" {
  sheet = "Sheet1"
  ref   = "A1:F1"
}
`

func TestLoad_File(t *testing.T) {
	dir := writeFiles(t, map[string]string{"book.hcl": basicBook})
	wb, err := NewLoader().Load(context.Background(), filepath.Join(dir, "book.hcl"))
	require.NoError(t, err)

	require.Equal(t, 2, wb.SheetCount())
	s1, data := wb.Sheets()[0], wb.Sheets()[1]
	assert.Equal(t, "Sheet1", s1.Name)
	assert.Equal(t, "Data", data.Name)
	assert.Equal(t, 3, wb.FormulaCount())

	t.Run("plain values", func(t *testing.T) {
		assert.Equal(t, expr.NumberValue(10), s1.Cell(0, 0).Value)
		assert.Equal(t, expr.TextValue("twenty"), s1.Cell(1, 0).Value)
		assert.Equal(t, expr.BoolValue(true), s1.Cell(0, 1).Value)
		assert.Equal(t, expr.ErrorValue(expr.ErrDiv0), s1.Cell(2, 1).Value)
	})

	t.Run("date becomes a serial number", func(t *testing.T) {
		assert.Equal(t, expr.NumberValue(44259), s1.Cell(1, 1).Value)
	})

	t.Run("tokenized formula", func(t *testing.T) {
		c := s1.Cell(2, 0)
		assert.True(t, c.Tokenized)
		assert.Equal(t, "=A1+A2", c.Formula)
		assert.Equal(t, "total", c.Comment)
		assert.Equal(t, expr.NumberValue(30), c.Value)
		assert.Equal(t, []token.Token{
			{Kind: token.Ref, Ref: "A1"},
			{Kind: token.Ref, Ref: "A2"},
			{Kind: token.Add},
		}, c.Tokens)
	})

	t.Run("formula without tokens", func(t *testing.T) {
		c := s1.Cell(0, 2)
		assert.False(t, c.Tokenized)
		assert.True(t, c.IsFormula())
		assert.Empty(t, c.Tokens)
	})

	t.Run("token payloads", func(t *testing.T) {
		toks := data.Cell(0, 0).Tokens
		require.Len(t, toks, 4)
		assert.Equal(t, token.Token{Kind: token.Area3D, Sheet: "Sheet1", Ref: "A1:B1"}, toks[0])
		assert.Equal(t, [][]expr.Literal{
			{expr.NumberValue(1), expr.NumberValue(2)},
			{expr.NumberValue(3), expr.NumberValue(4)},
		}, toks[1].Rows)
		assert.Equal(t, expr.IntegerValue(2), toks[2].Value)
		assert.Equal(t, token.Token{Kind: token.FuncVar, Function: "SUM", Args: 3}, toks[3])
	})

	t.Run("names", func(t *testing.T) {
		area, err := wb.ResolveName("slist")
		require.NoError(t, err)
		assert.Equal(t, "Sheet1", area.Sheet)
		assert.Equal(t, 6, area.Cols())
	})
}

func TestLoad_DirectoryMergesFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"01-first.hcl": `
sheet "Sheet1" {
  cell "A1" { value = 1 }
}`,
		"02-second.hcl": `
sheet "Sheet2" {
  cell "A1" { value = 2 }
}
sheet "Sheet1" {
  cell "A2" { value = 3 }
}
name "both" {
  sheet = "Sheet2"
  ref   = "A1"
}`,
		"notes.txt": "not a fixture",
	})

	wb, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, 2, wb.SheetCount())
	assert.Len(t, wb.Sheets()[0].Cells(), 2)

	_, err = wb.ResolveName("both")
	assert.NoError(t, err)
}

func TestLoad_TokenKindSpellings(t *testing.T) {
	dir := writeFiles(t, map[string]string{"book.hcl": `
sheet "Sheet1" {
  cell "A1" { value = 1 }
  cell "B1" {
    formula = "=Data!A1+A1"
    token "ref-3d" {
      sheet = "Data"
      ref   = "A1"
    }
    token "ref" { ref = "A1" }
    token "add" {}
  }
  cell "B2" {
    formula = "=sideways"
    token "sideways" {}
  }
}
sheet "Data" {
  cell "A1" { value = 2 }
}`})

	wb, err := NewLoader().Load(context.Background(), filepath.Join(dir, "book.hcl"))
	require.NoError(t, err, "an unrecognized token kind must not fail the load")

	sheet, err := wb.Sheet("Sheet1")
	require.NoError(t, err)
	b1 := sheet.Cell(0, 1)
	require.NotNil(t, b1)
	assert.Equal(t, token.Ref3D, b1.Tokens[0].Kind)
	assert.Equal(t, "Data", b1.Tokens[0].Sheet)

	b2 := sheet.Cell(1, 1)
	require.NotNil(t, b2)
	require.Len(t, b2.Tokens, 1)
	assert.Equal(t, token.Unknown, b2.Tokens[0].Kind)
}

func TestLoad_Errors(t *testing.T) {
	cell := func(body string) string {
		return "sheet \"Sheet1\" {\n  cell \"A1\" {\n" + body + "\n  }\n}\n"
	}

	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "syntax error",
			content: `sheet "Sheet1" {`,
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "unknown block",
			content: `workbook "x" {}`,
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "bad cell address",
			content: "sheet \"Sheet1\" {\n  cell \"1A\" { value = 1 }\n}\n",
			wantErr: "invalid cell reference",
		},
		{
			name:    "int token with a fraction",
			content: cell(`formula = "x"` + "\n" + `token "int" { value = 1.5 }`),
			wantErr: "token 0 (int)",
		},
		{
			name:    "bool token with a string",
			content: cell(`formula = "x"` + "\n" + `token "bool" { value = "yes" }`),
			wantErr: "value is text, want boolean",
		},
		{
			name:    "funcvar without args",
			content: cell(`formula = "x"` + "\n" + `token "funcvar" { function = "SUM" }`),
			wantErr: "args is required",
		},
		{
			name:    "value and date together",
			content: cell("value = 1\ndate = \"2020-01-01\""),
			wantErr: "only one of value, date and error",
		},
		{
			name:    "unknown error code",
			content: cell(`error = "#OOPS"`),
			wantErr: `unknown error code "#OOPS"`,
		},
		{
			name:    "tokens without formula",
			content: cell(`token "int" { value = 1 }`),
			wantErr: "tokens given without a formula",
		},
		{
			name:    "name on a missing sheet",
			content: "name \"x\" {\n  sheet = \"Nope\"\n  ref   = \"A1\"\n}\n",
			wantErr: "sheet not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeFiles(t, map[string]string{"book.hcl": tc.content})
			_, err := NewLoader().Load(context.Background(), filepath.Join(dir, "book.hcl"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}

	t.Run("missing path", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
		assert.Error(t, err)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no .hcl files")
	})
}
