// Package engine contains the traversal driver for rfind. It walks a
// directory tree depth-first, evaluates each entry with the match package
// and streams matches to the caller in visitation order. This package is
// internal; external consumers should use the stable facade in pkg/core.
package engine
