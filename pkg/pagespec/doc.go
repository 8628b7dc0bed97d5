// Package pagespec resolves textual page specifications such as
// "5-6,3,1,8-5" into ordered sequences of page indices.
//
// A specification is a comma separated list of tokens. Each token is a
// single page number or an inclusive range "a-b". Ranges with a > b expand
// in descending order, so a specification encodes an explicit page order and
// not just a filter:
//
//	pagespec.ParseSpec("1-3,6,9-7", true, false) // [0 1 2 5 8 7 6]
//
// Parsing never looks at a document. Bounds are checked separately with
// [ValidateBounds] once the page count is known, and [CompleteWithRemaining]
// appends the pages a specification did not name.
//
// Every function in this package is pure and safe for concurrent use.
package pagespec
