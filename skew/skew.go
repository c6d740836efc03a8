// Package skew builds a suffix array in O(n) using the Skew/DC3
// algorithm: recursively sort the suffixes starting at positions not
// divisible by 3 (SA12) via radix sort on triples, then merge in the
// remaining suffixes (SA3) using the already-sorted SA12 ranks.
//
// x is expected to already be alphabet-mapped with a trailing sentinel
// (see package alphabet), so every symbol is a small non-negative
// integer and the sentinel (0) compares less than every real symbol.
package skew

// Construct computes the suffix array of x (mapped bytes, asize distinct
// codes including the sentinel 0) using the Skew/DC3 algorithm.
//
// The returned SA has the same length as x, including the entry for the
// sentinel-terminated empty suffix.
func Construct(x []byte, asize int) []int {
	return skewRec(intsFromBytes(x), asize, true)
}

// ConstructTerminalSentinel is identical to Construct but uses the
// terminal-sentinel recursion strategy instead of inserting an
// additional central sentinel between the class-1 and class-2 halves
// when building the recursive subproblem's string. Both strategies compute
// the same suffix array; this variant exists so tests can cross-check
// agreement between the two classical presentations of Skew.
func ConstructTerminalSentinel(x []byte, asize int) []int {
	return skewRec(intsFromBytes(x), asize, false)
}

func intsFromBytes(x []byte) []int {
	out := make([]int, len(x))
	for i, b := range x {
		out[i] = int(b)
	}
	return out
}

func safeIdx(x []int, i int) int {
	if i < 0 || i >= len(x) {
		return 0
	}
	return x[i]
}

// symbCount computes, for each symbol in [0,asize), how many times it
// appears at positions x[idx] for idx in indices.
func symbCount(x []int, asize int, indices []int, keyOf func(i int) int) []int {
	counts := make([]int, asize)
	for _, i := range indices {
		counts[keyOf(i)]++
	}
	return counts
}

func cumsum(counts []int) []int {
	sums := make([]int, len(counts)+1)
	for i, c := range counts {
		sums[i+1] = sums[i] + c
	}
	return sums
}

// bucketSort stably sorts indices by the key x[idx+offset] (0 if out of
// range), using counting sort over [0,asize).
func bucketSort(x []int, asize int, indices []int, offset int) []int {
	keyOf := func(i int) int { return safeIdx(x, i+offset) }
	counts := symbCount(x, asize, indices, keyOf)
	buckets := cumsum(counts)
	out := make([]int, len(indices))
	next := make([]int, len(buckets))
	copy(next, buckets)
	for _, i := range indices {
		k := keyOf(i)
		out[next[k]] = i
		next[k]++
	}
	return out
}

// radix3 sorts sa12 (indices i with i%3 != 0) by the triple
// (x[i], x[i+1], x[i+2]) using three passes of counting sort, least
// significant position first.
func radix3(x []int, asize int, sa12 []int) []int {
	sa := bucketSort(x, asize, sa12, 2)
	sa = bucketSort(x, asize, sa, 1)
	sa = bucketSort(x, asize, sa, 0)
	return sa
}

func triple(x []int, i int) [3]int {
	return [3]int{safeIdx(x, i), safeIdx(x, i+1), safeIdx(x, i+2)}
}

// collectAlphabet assigns each distinct triple in sorted sa12 order a
// rank starting at 1 (0 is reserved, consistent with the sentinel
// convention every recursion level preserves), returning a map from
// each SA12 position to its rank and whether all ranks were already
// distinct.
func collectAlphabet(x []int, sa12 []int) (ranks map[int]int, distinct bool) {
	ranks = make(map[int]int, len(sa12))
	rank := 1
	var prev [3]int
	first := true
	for _, i := range sa12 {
		t := triple(x, i)
		if first || t != prev {
			if !first {
				rank++
			}
			prev = t
			first = false
		}
		ranks[i] = rank
	}
	return ranks, rank == len(sa12)
}

// skewRec is the recursive core shared by both sentinel conventions.
// centralSentinel selects whether the recursive subproblem's string is
// built with an extra separator between the class-1 and class-2
// halves (skew_central.py) or without one
// (skew_terminal.py); both are correct, and differ only in how the
// recursion's base case and the reduced alphabet size are reached.
func skewRec(x []int, asize int, centralSentinel bool) []int {
	n := len(x)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []int{0}
	}

	var sa12 []int
	for i := 0; i < n; i++ {
		if i%3 != 0 {
			sa12 = append(sa12, i)
		}
	}
	sa12 = radix3(x, asize, sa12)

	ranks, distinct := collectAlphabet(x, sa12)

	var sa12Sorted []int
	if distinct {
		// Every suffix in SA12 already has a unique rank, which is
		// exactly its position in sa12 (radix3's output order): no
		// recursion needed.
		sa12Sorted = sa12
	} else {
		u, uIdx, reducedAsize := buildReducedString(x, sa12, ranks, centralSentinel)
		uSA := skewRec(u, reducedAsize, centralSentinel)
		sa12Sorted = make([]int, 0, len(sa12))
		for _, ui := range uSA {
			if orig, ok := uIdx[ui]; ok {
				sa12Sorted = append(sa12Sorted, orig)
			}
		}
	}

	isa := make(map[int]int, len(sa12Sorted))
	for rank, i := range sa12Sorted {
		isa[i] = rank
	}

	sa3 := buildSA3(x, asize, sa12Sorted, isa, n)

	return merge(x, sa12Sorted, sa3, isa, n)
}

// buildReducedString maps each SA12 position to its rank (from ranks)
// and lays the class-1 positions (i%3==1) before the class-2 positions
// (i%3==2), recording which reduced index corresponds to which
// original position, along with the alphabet size the recursive call
// should use. When centralSentinel is set, every rank is shifted up by
// one and a reserved value of 1 (never produced by the shift, since
// shifted ranks start at 2) separates the two halves, so that no
// class-1 suffix can spuriously extend across the boundary into the
// class-2 half during the recursive comparison; 0 remains the string
// terminator either way.
func buildReducedString(x []int, sa12 []int, ranks map[int]int, centralSentinel bool) (u []int, idx map[int]int, asize int) {
	var class1, class2 []int
	for i := 0; i < len(x); i++ {
		if i%3 == 1 {
			class1 = append(class1, i)
		} else if i%3 == 2 {
			class2 = append(class2, i)
		}
	}

	shift := 0
	if centralSentinel {
		shift = 1
	}
	rankOf := func(i int) int {
		if i >= len(x) {
			return 0
		}
		return ranks[i] + shift
	}

	idx = make(map[int]int, len(class1)+len(class2))
	if centralSentinel {
		u = make([]int, 0, len(class1)+len(class2)+2)
		for _, i := range class1 {
			idx[len(u)] = i
			u = append(u, rankOf(i))
		}
		u = append(u, 1) // central separator, see doc comment
		for _, i := range class2 {
			idx[len(u)] = i
			u = append(u, rankOf(i))
		}
		u = append(u, 0) // terminal sentinel for the recursive call
	} else {
		u = make([]int, 0, len(class1)+len(class2)+1)
		for _, i := range class1 {
			idx[len(u)] = i
			u = append(u, rankOf(i))
		}
		for _, i := range class2 {
			idx[len(u)] = i
			u = append(u, rankOf(i))
		}
		u = append(u, 0)
	}
	asize = len(ranks) + shift + 1 // max value (len(ranks)+shift) plus one for 0
	return u, idx, asize
}

// buildSA3 derives the sorted order of class-0 suffixes (i%3==0) from
// the already-sorted SA12 order: sorting pairs (x[i], isa[i+1]) is
// equivalent to sorting the full suffixes because the suffix at i+1 is
// always a SA12 suffix (a class-0 position's successor is always class
// 1), so its rank in isa totally orders the comparison's remainder.
func buildSA3(x []int, asize int, sa12Sorted []int, isa map[int]int, n int) []int {
	var sa3 []int
	if n%3 == 1 {
		sa3 = append(sa3, n-1)
	}
	for _, i := range sa12Sorted {
		if i%3 == 1 {
			sa3 = append(sa3, i-1)
		}
	}

	keyOf := func(i int) int { return safeIdx(x, i) }
	counts := symbCount(x, asize, sa3, keyOf)
	buckets := cumsum(counts)
	out := make([]int, len(sa3))
	next := make([]int, len(buckets))
	copy(next, buckets)
	for _, i := range sa3 {
		k := keyOf(i)
		out[next[k]] = i
		next[k]++
	}
	return out
}

// merge merges the sorted SA12 and SA3 suffix lists into the final
// suffix array, comparing a SA12 suffix against a SA3 suffix with at
// most two characters of direct comparison followed by an isa lookup
// (class-1 suffixes compare one symbol then the isa rank of the class-2
// continuation; class-2 suffixes compare two symbols then the isa rank
// of the class-1 continuation).
func merge(x []int, sa12, sa3 []int, isa map[int]int, n int) []int {
	sa := make([]int, 0, n)
	i, j := 0, 0
	for i < len(sa12) && j < len(sa3) {
		if suffixLess(x, isa, sa12[i], sa3[j], n) {
			sa = append(sa, sa12[i])
			i++
		} else {
			sa = append(sa, sa3[j])
			j++
		}
	}
	sa = append(sa, sa12[i:]...)
	sa = append(sa, sa3[j:]...)
	return sa
}

func rankAt(isa map[int]int, i, n int) int {
	if i >= n {
		return -1
	}
	return isa[i]
}

// suffixLess compares the suffix starting at a SA12 position i against
// the suffix at a SA3 position j (i%3!=0, j%3==0).
func suffixLess(x []int, isa map[int]int, i, j, n int) bool {
	if i%3 == 1 {
		// Compare one character, then fall back to isa rank: i+1 and
		// j+1 are both class-1-or-2 (SA12) positions once j%3==0.
		xi, xj := safeIdx(x, i), safeIdx(x, j)
		if xi != xj {
			return xi < xj
		}
		return rankAt(isa, i+1, n) < rankAt(isa, j+1, n)
	}
	// i%3 == 2: compare two characters, then fall back to isa rank on
	// the remaining class-1 continuation.
	xi0, xj0 := safeIdx(x, i), safeIdx(x, j)
	if xi0 != xj0 {
		return xi0 < xj0
	}
	xi1, xj1 := safeIdx(x, i+1), safeIdx(x, j+1)
	if xi1 != xj1 {
		return xi1 < xj1
	}
	return rankAt(isa, i+2, n) < rankAt(isa, j+2, n)
}
