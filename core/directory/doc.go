// Package directory derives the identifiers of the region and city nodes that
// make up the location directory.
//
// Identifiers are built from free-text address fields. Each part is decomposed
// (NFKD), case-folded and stripped of every character that is not a letter, so
// "São Paulo", "sao paulo" and "SAO-PAULO" all map to the same node:
//
//	s := directory.NewScheme("dir-")
//	s.RegionID("Illinois")              // "dir-illinois"
//	s.CityID("Springfield", "Illinois") // "dir-illinois-springfield"
//
// An empty identifier means "not applicable" and is never an error.
package directory
