// Package partition splits a road graph's nodes into disjoint regions
// consumed by arc-flag preprocessing.
package partition
