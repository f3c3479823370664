package ordinal

import (
	"fmt"
	"sort"
)

// Violation describes a partition whose ordinals are not exactly 0..n-1.
type Violation struct {
	Partition string
	Ordinals  []int // observed ordinals in rank order
}

func (v Violation) String() string {
	return fmt.Sprintf("partition %s has ordinals %v", v.Partition, v.Ordinals)
}

// Check groups entries by partition and reports every partition whose sorted
// ordinals differ from their rank. Partitions are reported in first-seen order.
func Check[K comparable](entries []Entry[K]) []Violation {
	var order []K
	groups := make(map[K][]int)
	for _, e := range entries {
		if _, ok := groups[e.Partition]; !ok {
			order = append(order, e.Partition)
		}
		groups[e.Partition] = append(groups[e.Partition], e.Ordinal)
	}

	var violations []Violation
	for _, k := range order {
		ords := groups[k]
		sort.Ints(ords)
		for rank, ord := range ords {
			if ord != rank {
				violations = append(violations, Violation{
					Partition: fmt.Sprint(k),
					Ordinals:  ords,
				})
				break
			}
		}
	}
	return violations
}

// Dense returns the entries renumbered to their rank within each partition,
// ordered by current ordinal with ties broken by id. Only entries whose
// ordinal changes are returned.
func Dense[K comparable](entries []Entry[K]) []Entry[K] {
	sorted := make([]Entry[K], len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Ordinal != sorted[j].Ordinal {
			return sorted[i].Ordinal < sorted[j].Ordinal
		}
		return sorted[i].ID < sorted[j].ID
	})

	next := make(map[K]int)
	var changed []Entry[K]
	for _, e := range sorted {
		rank := next[e.Partition]
		next[e.Partition] = rank + 1
		if e.Ordinal != rank {
			e.Ordinal = rank
			changed = append(changed, e)
		}
	}
	return changed
}
