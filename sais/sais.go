// Package sais builds a suffix array in O(n) using induced sorting
// (SA-IS): classify positions as S-type or L-type, sort the LMS
// substrings by induction from a recursively reduced problem, then
// induce the full suffix array from the sorted LMS suffixes.
//
// x is expected to already be alphabet-mapped with a trailing sentinel
// (see package alphabet): the sentinel is the unique smallest symbol,
// which both the S/L classification and the bucket boundaries depend
// on.
package sais

import "github.com/mailund/gostr/bitvector"

// Construct computes the suffix array of x (mapped bytes, asize
// distinct codes including the sentinel 0).
func Construct(x []byte, asize int) []int {
	ints := make([]int, len(x))
	for i, b := range x {
		ints[i] = int(b)
	}
	return saisRec(ints, asize)
}

// classifySL marks every position as S-type (true) or L-type (false):
// the last position is always S-type, and position i is S-type iff
// x[i] < x[i+1], or x[i] == x[i+1] and position i+1 is S-type.
func classifySL(x []int) *bitvector.BitVector {
	n := len(x)
	isS := bitvector.New(n)
	if n == 0 {
		return isS
	}
	isS.Set(n - 1)
	for i := n - 2; i >= 0; i-- {
		if x[i] < x[i+1] || (x[i] == x[i+1] && isS.Get(i+1)) {
			isS.Set(i)
		}
	}
	return isS
}

// isLMS reports whether position i is a left-most S-type position: an
// S-type position immediately preceded by an L-type position. Position
// 0 is never LMS since it has no predecessor.
func isLMS(isS *bitvector.BitVector, i int) bool {
	return i > 0 && isS.Get(i) && !isS.Get(i-1)
}

// buckets tracks, for each symbol, the current front/back insertion
// pointer within the bucket-partitioned suffix array.
type buckets struct {
	fronts []int
	ends   []int
}

func newBuckets(x []int, asize int) *buckets {
	counts := make([]int, asize)
	for _, c := range x {
		counts[c]++
	}
	fronts := make([]int, asize)
	ends := make([]int, asize)
	sum := 0
	for c := 0; c < asize; c++ {
		fronts[c] = sum
		sum += counts[c]
		ends[c] = sum - 1
	}
	return &buckets{fronts: fronts, ends: ends}
}

// bucketLMS places every LMS position at the back of its symbol's
// bucket, in the (arbitrary, pre-induction) order they were found,
// working from the end of x so each successive placement goes one
// slot further left within the bucket.
func bucketLMS(x []int, asize int, isS *bitvector.BitVector) []int {
	sa := make([]int, len(x))
	for i := range sa {
		sa[i] = -1
	}
	b := newBuckets(x, asize)
	for i := len(x) - 1; i >= 0; i-- {
		if isLMS(isS, i) {
			c := x[i]
			sa[b.ends[c]] = i
			b.ends[c]--
		}
	}
	return sa
}

// induceL fills in L-type positions in sa by scanning left to right:
// whenever sa[i] is known and sa[i]-1 is L-type, place sa[i]-1 at the
// front of its bucket.
func induceL(x []int, asize int, isS *bitvector.BitVector, sa []int) {
	b := newBuckets(x, asize)
	front := make([]int, asize)
	copy(front, b.fronts)
	for i := 0; i < len(sa); i++ {
		j := sa[i] - 1
		if sa[i] <= 0 || isS.Get(j) {
			continue
		}
		c := x[j]
		sa[front[c]] = j
		front[c]++
	}
}

// induceS fills in S-type positions in sa by scanning right to left:
// whenever sa[i] is known and sa[i]-1 is S-type, place sa[i]-1 at the
// back of its bucket.
func induceS(x []int, asize int, isS *bitvector.BitVector, sa []int) {
	b := newBuckets(x, asize)
	end := make([]int, asize)
	copy(end, b.ends)
	for i := len(sa) - 1; i >= 0; i-- {
		if sa[i] <= 0 {
			continue
		}
		j := sa[i] - 1
		if !isS.Get(j) {
			continue
		}
		c := x[j]
		sa[end[c]] = j
		end[c]--
	}
}

// lmsLength returns the length of the LMS substring starting at i: the
// span from i to (and including) the next LMS position, or the end of
// the string if i is the last LMS position.
func lmsLength(isS *bitvector.BitVector, i int) int {
	n := isS.Len()
	j := i + 1
	for j < n && !isLMS(isS, j) {
		j++
	}
	if j < n {
		return j - i + 1
	}
	return j - i
}

// equalLMS reports whether the LMS substrings starting at i and j are
// identical, symbol by symbol, including the position where each
// substring ends at the next LMS boundary.
func equalLMS(x []int, isS *bitvector.BitVector, i, j int) bool {
	li, lj := lmsLength(isS, i), lmsLength(isS, j)
	if li != lj {
		return false
	}
	for k := 0; k < li; k++ {
		if x[i+k] != x[j+k] {
			return false
		}
	}
	return true
}

func saisRec(x []int, asize int) []int {
	n := len(x)
	if n == 0 {
		return nil
	}
	if n == asize {
		// Base case: every symbol in x is distinct (x is itself a
		// permutation of [0,asize)), so the suffix array is determined
		// directly by symbol value.
		sa := make([]int, n)
		for i, c := range x {
			sa[c] = i
		}
		return sa
	}

	isS := classifySL(x)

	sa := bucketLMS(x, asize, isS)
	induceL(x, asize, isS, sa)
	induceS(x, asize, isS, sa)

	// Name the LMS substrings: walk sa in order, assigning each distinct
	// LMS substring the next available rank.
	var lmsOrder []int
	for _, i := range sa {
		if i >= 0 && isLMS(isS, i) {
			lmsOrder = append(lmsOrder, i)
		}
	}

	names := make(map[int]int, len(lmsOrder))
	rank := 0
	for idx, i := range lmsOrder {
		if idx > 0 && !equalLMS(x, isS, lmsOrder[idx-1], i) {
			rank++
		}
		names[i] = rank
	}
	distinctNames := rank + 1

	// Build the reduced string in the original left-to-right order of
	// LMS positions (not sa order), since that is what the recursive
	// suffix array must be interpreted relative to.
	var lmsPositions []int
	for i := 0; i < n; i++ {
		if isLMS(isS, i) {
			lmsPositions = append(lmsPositions, i)
		}
	}
	reduced := make([]int, len(lmsPositions))
	for k, i := range lmsPositions {
		reduced[k] = names[i]
	}

	var reducedSA []int
	if distinctNames == len(reduced) {
		// Every LMS substring is already unique: the reduced string's
		// suffix array is given directly by its symbol values.
		reducedSA = make([]int, len(reduced))
		for i, c := range reduced {
			reducedSA[c] = i
		}
	} else {
		reducedSA = saisRec(reduced, distinctNames)
	}

	// Reverse the reduction: map reducedSA entries back to original LMS
	// positions, then induce the full suffix array from them in the
	// correct relative order.
	sortedLMS := make([]int, len(reducedSA))
	for k, r := range reducedSA {
		sortedLMS[k] = lmsPositions[r]
	}

	sa = bucketLMSOrdered(x, asize, isS, sortedLMS)
	induceL(x, asize, isS, sa)
	induceS(x, asize, isS, sa)

	return sa
}

// bucketLMSOrdered places sortedLMS (already known to be in correct
// relative order for its symbol class) into its buckets from the back,
// processing sortedLMS in reverse so each bucket fills right to left.
func bucketLMSOrdered(x []int, asize int, isS *bitvector.BitVector, sortedLMS []int) []int {
	sa := make([]int, len(x))
	for i := range sa {
		sa[i] = -1
	}
	b := newBuckets(x, asize)
	for k := len(sortedLMS) - 1; k >= 0; k-- {
		i := sortedLMS[k]
		c := x[i]
		sa[b.ends[c]] = i
		b.ends[c]--
	}
	return sa
}
