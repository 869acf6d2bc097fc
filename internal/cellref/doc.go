/*
Package cellref provides a structured, type-safe representation for spreadsheet
locations: single cells (`Sheet1!B7`), rectangular areas (`A1:C3`) and named
areas (`slist`).

It also defines Identity, the canonical key used to de-duplicate locations in
the dependency graph. A cell identity and an area identity never compare equal,
so areas need no sentinel row or column values.
*/
package cellref
