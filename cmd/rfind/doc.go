// Package rfind provides the command-line interface for the rfind tool.
// It parses flags, merges config-file defaults and runs the search.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/rfind/rfind/cmd/rfind"
//	func main() { rfind.Execute() }
package rfind
