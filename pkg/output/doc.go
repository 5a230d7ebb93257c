// Package output persists rendered file sets to disk. It honours ignore
// patterns, supports dry runs, and records a manifest of everything written so
// repeated generations can prune stale artifacts.
package output
