// Package visitor provides deterministic iteration over Go structs, maps and slices.
// Struct fields are visited in declaration order, map entries by sorted key text.
package visitor
