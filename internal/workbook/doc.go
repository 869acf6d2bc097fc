// Package workbook defines the format-agnostic model of a spreadsheet the
// formula pipeline reads from, along with the collaborator interfaces
// (Loader, ValueAccessor, NameResolver, Enumerator) the builder and engine
// depend on.
//
// A *Workbook implements every read interface itself. Concrete file formats
// are decoded by separate packages such as hclbook.
package workbook
