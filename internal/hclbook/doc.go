// Package hclbook loads workbooks written as HCL fixture files. It is the
// concrete workbook.Loader used by the CLI and by integration tests.
//
// A fixture declares sheets in file order, their populated cells, and
// workbook-level names:
//
//	sheet "Sheet1" {
//	  cell "A1" { value = 10 }
//	  cell "A3" {
//	    formula = "A1+A2"
//	    comment = "total"
//	    token "ref" { ref = "A1" }
//	    token "ref" { ref = "A2" }
//	    token "add" {}
//	  }
//	}
//	name "slist" {
//	  sheet = "Sheet1"
//	  ref   = "A1:F1"
//	}
//
// Formula cells list their tokens in postfix order. A formula cell with no
// token blocks models a formula the tokenizer could not handle.
package hclbook
