// Package powerset enumerates subsets of a finite outcome space in a
// canonical order: non-decreasing cardinality, and lexicographic by
// index within each cardinality. For example, for n=3 the order is
// {}, {0}, {1}, {2}, {0,1}, {0,2}, {1,2}, {0,1,2}.
package powerset

// Enumerator produces every subset of {0, ..., n-1} in the canonical
// order. The zero value is not usable; create one with New. After the
// last subset Next keeps returning ok=false; Reset rewinds to the
// empty subset.
type Enumerator struct {
	n    int
	k    int
	comb []int
	done bool
}

// New returns an enumerator over the subsets of {0, ..., n-1}.
func New(n int) *Enumerator {
	e := &Enumerator{n: n}
	e.Reset()
	return e
}

// Reset rewinds the enumerator to the first subset (the empty one).
func (e *Enumerator) Reset() {
	e.k = 0
	e.comb = nil
	e.done = false
}

// Next returns the next subset as a slice of outcome indices in
// increasing order. The returned slice is a fresh copy. ok is false
// once the enumeration is exhausted.
func (e *Enumerator) Next() (subset []int, ok bool) {
	if e.done {
		return nil, false
	}
	if e.comb == nil {
		return e.first(), true
	}
	// advance the current k-combination lexicographically
	i := e.k - 1
	for i >= 0 && e.comb[i] == e.n-e.k+i {
		i--
	}
	if i < 0 {
		e.k++
		if e.k > e.n {
			e.done = true
			return nil, false
		}
		return e.first(), true
	}
	e.comb[i]++
	for j := i + 1; j < e.k; j++ {
		e.comb[j] = e.comb[j-1] + 1
	}
	return copySubset(e.comb), true
}

// first switches to the smallest combination of the current
// cardinality, {0, ..., k-1}.
func (e *Enumerator) first() []int {
	e.comb = make([]int, e.k)
	for i := range e.comb {
		e.comb[i] = i
	}
	return copySubset(e.comb)
}

func copySubset(s []int) []int {
	c := make([]int, len(s))
	copy(c, s)
	return c
}

// Count returns the number of subsets of an n-element set.
func Count(n int) int {
	return 1 << uint(n)
}

// All materializes the full enumeration. The result has Count(n)
// elements; only use it for small n, the memory cost is O(2^n).
func All(n int) [][]int {
	subsets := make([][]int, 0, Count(n))
	e := New(n)
	for s, ok := e.Next(); ok; s, ok = e.Next() {
		subsets = append(subsets, s)
	}
	return subsets
}

// Mask returns the bitmask with bit i set for every index i in the
// subset. Indices must be below 64.
func Mask(subset []int) uint64 {
	var m uint64
	for _, i := range subset {
		m |= 1 << uint(i)
	}
	return m
}
