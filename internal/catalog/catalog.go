package catalog

import (
	"fmt"
	"regexp"
	"slices"
)

// graph holds the concept catalog with precomputed indices.
type graph struct {
	concepts   []Concept
	byID       map[string]*Concept
	byCategory map[Category][]Concept
	patterns   map[string][]*regexp.Regexp
	related    map[string][]string // symmetric closure, catalog order
	dependents map[string][]string
}

// g is the package-level catalog singleton, set by init() in seed.go.
var g *graph

// buildGraph constructs the catalog indices from a slice of concepts.
// Pattern compilation failures panic: the catalog is static data and a
// bad pattern is a programming error, not a runtime condition.
func buildGraph(concepts []Concept) *graph {
	gr := &graph{
		concepts:   concepts,
		byID:       make(map[string]*Concept, len(concepts)),
		byCategory: make(map[Category][]Concept),
		patterns:   make(map[string][]*regexp.Regexp, len(concepts)),
		related:    make(map[string][]string),
		dependents: make(map[string][]string),
	}

	for i := range gr.concepts {
		c := &gr.concepts[i]
		gr.byID[c.ID] = c
		gr.byCategory[c.Category] = append(gr.byCategory[c.Category], *c)

		compiled := make([]*regexp.Regexp, 0, len(c.Patterns))
		for _, p := range c.Patterns {
			compiled = append(compiled, regexp.MustCompile(`(?i)`+p))
		}
		gr.patterns[c.ID] = compiled
	}

	// Reverse edges over prerequisites.
	for i := range gr.concepts {
		for _, prereqID := range gr.concepts[i].Prerequisites {
			gr.dependents[prereqID] = append(gr.dependents[prereqID], gr.concepts[i].ID)
		}
	}

	// Symmetric closure over the directed Related lists, in catalog order
	// so lookups are deterministic.
	relatedSets := make(map[string]map[string]bool, len(concepts))
	for i := range gr.concepts {
		c := &gr.concepts[i]
		if relatedSets[c.ID] == nil {
			relatedSets[c.ID] = make(map[string]bool)
		}
		for _, r := range c.Related {
			relatedSets[c.ID][r] = true
			if relatedSets[r] == nil {
				relatedSets[r] = make(map[string]bool)
			}
			relatedSets[r][c.ID] = true
		}
	}
	for i := range gr.concepts {
		id := gr.concepts[i].ID
		for j := range gr.concepts {
			other := gr.concepts[j].ID
			if other != id && relatedSets[id][other] {
				gr.related[id] = append(gr.related[id], other)
			}
		}
	}

	return gr
}

// Get returns a concept by ID.
func Get(id string) (Concept, bool) {
	c, ok := g.byID[id]
	if !ok {
		return Concept{}, false
	}
	return *c, true
}

// All returns all concepts in catalog order.
func All() []Concept {
	return slices.Clone(g.concepts)
}

// ByCategory returns all concepts in a category, in catalog order.
func ByCategory(c Category) []Concept {
	return slices.Clone(g.byCategory[c])
}

// Prerequisites returns the direct prerequisite IDs for a concept.
// Unknown IDs yield nil.
func Prerequisites(id string) []string {
	c, ok := g.byID[id]
	if !ok {
		return nil
	}
	return slices.Clone(c.Prerequisites)
}

// Related returns the related-concept IDs for a concept under the
// symmetric closure: a concept that declares this one as related is
// included even if the declaration only runs one way.
func Related(id string) []string {
	return slices.Clone(g.related[id])
}

// Dependents returns concept IDs that declare the given ID as a prerequisite.
func Dependents(id string) []string {
	return slices.Clone(g.dependents[id])
}

// DefaultStarterSet returns the fallback target concepts used when a
// learning goal matches nothing in the catalog.
func DefaultStarterSet() []string {
	return []string{"arithmetic_operations", "fractions", "linear_equations"}
}

// Validate checks the catalog for structural issues. It is exercised by
// tests so a bad seed edit fails fast.
func Validate() error {
	return validateConcepts(g.concepts)
}

func validateConcepts(concepts []Concept) error {
	seen := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		if c.ID == "" {
			return fmt.Errorf("concept with empty ID (name %q)", c.Name)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate concept ID %q", c.ID)
		}
		seen[c.ID] = true
	}
	for _, c := range concepts {
		for _, p := range c.Prerequisites {
			if !seen[p] {
				return fmt.Errorf("concept %q: unknown prerequisite %q", c.ID, p)
			}
		}
		for _, r := range c.Related {
			if !seen[r] {
				return fmt.Errorf("concept %q: unknown related concept %q", c.ID, r)
			}
		}
	}
	return nil
}
