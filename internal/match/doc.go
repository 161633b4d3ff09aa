// Package match evaluates a single directory entry against the search
// criteria: entry kind, base-name glob, permission bits and special mode
// flags. Each predicate is a pure function; Matcher composes them with AND.
package match
