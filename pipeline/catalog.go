package pipeline

import (
	"slices"
)

// Finder discovers features in a sequence, each at least minLen long
type Finder func(seq []byte, minLen uint64) []Feature

// Catalog is the immutable, start-sorted feature set of one genome
type Catalog struct {
	features  []Feature
	minLength uint64
	maxLength uint64
}

// BuildCatalog sorts features by Start and computes length bounds
// Sort is stable: equal starts keep discovery order. The input slice is not modified
func BuildCatalog(features []Feature) *Catalog {
	sorted := slices.Clone(features)
	slices.SortStableFunc(sorted, func(a, b Feature) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		default:
			return 0
		}
	})

	c := &Catalog{features: sorted}
	for i, f := range sorted {
		l := f.Length()
		if i == 0 || l < c.minLength {
			c.minLength = l
		}
		if l > c.maxLength {
			c.maxLength = l
		}
	}
	return c
}

// NewCatalogFromSequence runs find over seq and builds the sorted catalog
func NewCatalogFromSequence(seq []byte, minLen uint64, find Finder) *Catalog {
	return BuildCatalog(find(seq, minLen))
}

// Len returns the number of features
func (c *Catalog) Len() int {
	return len(c.features)
}

// Features returns a copy of the sorted features
func (c *Catalog) Features() []Feature {
	return slices.Clone(c.features)
}

// MinLength returns the shortest feature length, 0 for an empty catalog
func (c *Catalog) MinLength() uint64 {
	return c.minLength
}

// MaxLength returns the longest feature length, 0 for an empty catalog
// Used to normalize visual size
func (c *Catalog) MaxLength() uint64 {
	return c.maxLength
}
