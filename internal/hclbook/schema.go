package hclbook

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level block of a fixture file. Unknown blocks
// are decode errors.
type fileRoot struct {
	Sheets []*sheetBlock `hcl:"sheet,block"`
	Names  []*nameBlock  `hcl:"name,block"`
}

type sheetBlock struct {
	Name  string       `hcl:"name,label"`
	Cells []*cellBlock `hcl:"cell,block"`
}

type cellBlock struct {
	Ref     string         `hcl:"ref,label"`
	Value   hcl.Expression `hcl:"value,optional"`
	Date    *string        `hcl:"date,optional"`
	Error   *string        `hcl:"error,optional"`
	Formula *string        `hcl:"formula,optional"`
	Comment *string        `hcl:"comment,optional"`
	Tokens  []*tokenBlock  `hcl:"token,block"`
}

type tokenBlock struct {
	Kind     string         `hcl:"kind,label"`
	Value    hcl.Expression `hcl:"value,optional"`
	Ref      *string        `hcl:"ref,optional"`
	Sheet    *string        `hcl:"sheet,optional"`
	Book     *string        `hcl:"book,optional"`
	Name     *string        `hcl:"name,optional"`
	Function *string        `hcl:"function,optional"`
	Args     *int           `hcl:"args,optional"`
	Attr     *string        `hcl:"attr,optional"`
	Rows     hcl.Expression `hcl:"rows,optional"`
}

type nameBlock struct {
	Name  string `hcl:"name,label"`
	Sheet string `hcl:"sheet"`
	Ref   string `hcl:"ref"`
}
