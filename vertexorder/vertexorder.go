// Package vertexorder builds the vertex orders the search engine's anchor
// loop walks, grounded on VertexOrder.c's degree-based sorts. The reference
// implementation hand-rolls a qsort_r-compatible shell sort since libc's
// qsort has no consistent reentrant variant across platforms; Go's
// sort.SliceStable has neither concern, so the comparator logic is kept
// (descending/ascending by degree, ties broken by original position) and
// the sorting algorithm itself is not reimplemented.
package vertexorder

import "sort"

// DegreeDescending returns the vertices 1..n ordered by descending degree,
// as reported by degree(v), ties broken by vertex number. This is the
// order the reference implementation's example tools default to: starting
// the anchor walk at high-degree vertices tends to force more segments
// earlier, shrinking the search space sooner.
func DegreeDescending(n int, degree func(v int) int) []int {
	order := identity(n)
	sort.SliceStable(order, func(i, j int) bool {
		return degree(order[i]) > degree(order[j])
	})
	return order
}

// DegreeAscending returns the vertices 1..n ordered by ascending degree,
// ties broken by vertex number.
func DegreeAscending(n int, degree func(v int) int) []int {
	order := identity(n)
	sort.SliceStable(order, func(i, j int) bool {
		return degree(order[i]) < degree(order[j])
	})
	return order
}

// Identity returns the vertices 1..n in their natural numeric order.
func Identity(n int) []int { return identity(n) }

func identity(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i + 1
	}
	return order
}
