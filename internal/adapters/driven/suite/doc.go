// Package suite parses literate test documents into test cases.
//
// Markdown documents embed cases in indented blocks:
//
//	    | program row
//	    + input line
//	    = expected output
//	    ? expected error substring
//
// YAML documents hold a list of cases under a top-level tests key.
package suite
