package hclbook

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/formulagraph/internal/cellref"
	"github.com/specialistvlad/formulagraph/internal/ctxlog"
	"github.com/specialistvlad/formulagraph/internal/fsutil"
	"github.com/specialistvlad/formulagraph/internal/workbook"
)

// Extension is the file extension of fixture files.
const Extension = ".hcl"

// Loader is the HCL implementation of workbook.Loader.
type Loader struct{}

// NewLoader creates a new HCL workbook loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads a fixture file, or every fixture file under a directory in
// lexical order. Sheets declared in several files are merged; names are
// bound once all sheets are known.
func (l *Loader) Load(ctx context.Context, path string) (*workbook.Workbook, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	files, err := l.findFiles(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered fixture files.", "count", len(files))

	wb := workbook.New(path)
	parser := hclparse.NewParser()
	var names []*nameBlock

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, sb := range root.Sheets {
			if err := l.translateSheet(ctx, wb, sb); err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
		}
		names = append(names, root.Names...)
	}

	for _, nb := range names {
		area, err := cellref.ParseArea(nb.Ref)
		if err != nil {
			return nil, fmt.Errorf("name %q: %w", nb.Name, err)
		}
		area.Sheet = nb.Sheet
		if err := wb.DefineName(nb.Name, area); err != nil {
			return nil, err
		}
	}

	logger.Debug("HCL loading complete.", "sheets", wb.SheetCount(), "names", len(names), "formulas", wb.FormulaCount())
	return wb, nil
}

// findFiles returns path itself for a file, or every fixture file below a
// directory.
func (l *Loader) findFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := fsutil.FindFilesByExtension(path, Extension)
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found in %s", Extension, path)
	}
	return files, nil
}
