// Package query derives filtered views over full store scans.
//
// Every filter is a linear scan; cross-entity predicates that look up a
// related store make the cost O(N*M). That is a deliberate trade at this
// scale - there is no indexing.
package query

import "strings"

// Predicate is a boolean condition over an entity
type Predicate[E any] func(E) bool

// Filter returns the entities matching the predicate, preserving scan order.
// The input slice is never mutated.
func Filter[E any](entities []E, pred Predicate[E]) []E {
	matched := make([]E, 0)
	for _, entity := range entities {
		if pred(entity) {
			matched = append(matched, entity)
		}
	}
	return matched
}

// Any reports whether at least one entity matches the predicate
func Any[E any](entities []E, pred Predicate[E]) bool {
	for _, entity := range entities {
		if pred(entity) {
			return true
		}
	}
	return false
}

// And combines predicates; an empty argument list matches everything
func And[E any](preds ...Predicate[E]) Predicate[E] {
	return func(entity E) bool {
		for _, pred := range preds {
			if !pred(entity) {
				return false
			}
		}
		return true
	}
}

// ContainsFold reports whether substr occurs in s, ignoring case
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// InRange reports whether v lies in [min, max], both bounds inclusive.
// An inverted range matches nothing; bounds are not validated here.
func InRange(v, min, max float64) bool {
	return v >= min && v <= max
}
