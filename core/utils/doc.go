// Package utils provides small helpers shared across the location-directory packages.
//
// The reference helpers keep forward-reference lists (childRefs) in their
// canonical form: sorted ascending, without duplicates. Every function returns
// a fresh slice and never mutates its input.
package utils
