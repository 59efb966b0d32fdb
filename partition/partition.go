package partition

import (
	"sort"
	"strconv"
	"strings"
)

// Partition is a canonical partition: a sorted slice of sorted, disjoint,
// non-empty subsets, each represented in ascending order and the subsets
// themselves ordered by their smallest element. canonical builds this
// form from any bag of subsets.
type Partition [][]int

// Initial returns the starting partition for the builder: a single
// singleton subset containing the first endpoint of edge 0.
func Initial(firstVertex int) Partition {
	return Partition{{firstVertex}}
}

// contains reports whether w appears in any subset of p.
func contains(p Partition, w int) bool {
	for _, subset := range p {
		for _, x := range subset {
			if x == w {
				return true
			}
		}
	}
	return false
}

// ExtendIfNew appends {w} as a new singleton subset if w is not already
// present in p. p is never mutated in place; the result may share
// backing arrays with p when no change is needed.
func ExtendIfNew(p Partition, w int) Partition {
	if contains(p, w) {
		return p
	}
	out := make(Partition, len(p), len(p)+1)
	copy(out, p)
	out = append(out, []int{w})
	return canonical(out)
}

// Merge unions the subsets containing u and v into a single subset,
// adding {u} and/or {v} first if either is not yet present, and leaves
// every other subset untouched. p is never mutated in place.
func Merge(p Partition, u, v int) Partition {
	var toMerge [][]int
	var rest [][]int
	uFound, vFound := false, false
	for _, subset := range p {
		hit := false
		for _, x := range subset {
			if x == u {
				uFound = true
				hit = true
			}
			if x == v {
				vFound = true
				hit = true
			}
		}
		if hit {
			toMerge = append(toMerge, subset)
		} else {
			rest = append(rest, subset)
		}
	}
	if !uFound {
		toMerge = append(toMerge, []int{u})
	}
	if !vFound {
		toMerge = append(toMerge, []int{v})
	}

	merged := make(map[int]struct{})
	for _, subset := range toMerge {
		for _, x := range subset {
			merged[x] = struct{}{}
		}
	}
	mergedSlice := make([]int, 0, len(merged))
	for x := range merged {
		mergedSlice = append(mergedSlice, x)
	}

	out := make(Partition, len(rest), len(rest)+1)
	copy(out, rest)
	out = append(out, mergedSlice)
	return canonical(out)
}

// Prune retains only the elements of every subset that are >= retainedMin,
// drops subsets that become empty, and reports whether any subset was
// dropped. This is the general-purpose operation spec section 4.B names;
// it is intentionally NOT what package simpath uses to classify the False
// sink (see HasSubsetBelow), because trimming a subset's low, already-
// finalized members would corrupt IsFullySpanning's vertex count for any
// component that still mixes finalized and live vertices. Spec section 9
// calls this out directly: classification must rely on the per-subset
// max-below-frontier rule, not on an explicit trim of the frontier set.
func Prune(p Partition, retainedMin int) (pruned Partition, anyDropped bool) {
	out := make(Partition, 0, len(p))
	for _, subset := range p {
		keep := make([]int, 0, len(subset))
		for _, x := range subset {
			if x >= retainedMin {
				keep = append(keep, x)
			}
		}
		if len(keep) == 0 {
			anyDropped = true
			continue
		}
		out = append(out, keep)
	}
	return canonical(out), anyDropped
}

// HasSubsetBelow reports whether any subset of p has every member strictly
// less than threshold — i.e. it can never again accept an edge once the
// frontier has advanced past threshold. This is the exact per-subset test
// spec section 4.C step 3 classifies the False sink with; unlike Prune,
// it never discards information, since a subset that mixes already-
// finalized vertices with still-live ones must keep all of them to let
// IsFullySpanning count correctly once the component finishes growing.
func HasSubsetBelow(p Partition, threshold int) bool {
	for _, subset := range p {
		below := true
		for _, x := range subset {
			if x >= threshold {
				below = false
				break
			}
		}
		if below {
			return true
		}
	}
	return false
}

// IsFullySpanning reports whether p consists of a single subset covering
// all n vertices {0,...,n-1} — the condition for the True sink.
func IsFullySpanning(p Partition, n int) bool {
	return len(p) == 1 && len(p[0]) == n
}

// Key returns a canonical string key for p, suitable for use as a map
// key in the depth-local deduplication cache (spec section 4.C).
func Key(p Partition) string {
	var sb strings.Builder
	for i, subset := range p {
		if i > 0 {
			sb.WriteByte('|')
		}
		for j, x := range subset {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(x))
		}
	}
	return sb.String()
}

// canonical sorts each subset ascending, then sorts the subsets by their
// smallest element, producing the canonical form required for Key to be
// a valid cache key (spec section 4.C's "Tie-breaking & determinism").
func canonical(p Partition) Partition {
	for _, subset := range p {
		sort.Ints(subset)
	}
	sort.Slice(p, func(i, j int) bool { return p[i][0] < p[j][0] })
	return p
}
