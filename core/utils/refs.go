package utils

import (
	"slices"
	"sort"
)

// ContainsRef reports whether id is present in refs.
func ContainsRef(refs []string, id string) bool {
	return slices.Contains(refs, id)
}

// InsertRef returns a sorted, de-duplicated copy of refs that includes id.
func InsertRef(refs []string, id string) []string {
	out := make([]string, 0, len(refs)+1)
	out = append(out, refs...)
	out = append(out, id)
	return NormalizeRefs(out)
}

// RemoveRef returns a sorted, de-duplicated copy of refs without id.
// The result is never nil, so it serializes as an empty JSON array.
func RemoveRef(refs []string, id string) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref != id {
			out = append(out, ref)
		}
	}
	return NormalizeRefs(out)
}

// NormalizeRefs sorts refs ascending and drops duplicates and empty entries.
func NormalizeRefs(refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref != "" {
			out = append(out, ref)
		}
	}
	sort.Strings(out)
	return slices.Compact(out)
}
