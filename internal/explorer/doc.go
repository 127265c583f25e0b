// Package explorer implements analysis operations over mock file system
// trees.
//
// An Explorer wraps a tree and its path index and answers listing, sizing,
// search, and distribution queries. All operations are read-only, walk
// entries in the tree's own insertion order, and are safe for concurrent
// use.
package explorer
