// Package border computes border arrays, the failure function behind
// KMP matching and the classical "border" exact-matching algorithm.
package border

// Array computes the border array of x: ba[j] is the length of the
// longest proper border (a prefix that is also a suffix) of x[:j+1].
//
// This is the textbook KMP failure-function recurrence.
func Array(x []byte) []int {
	ba := make([]int, len(x))
	if len(x) == 0 {
		return ba
	}

	ba[0] = 0
	b := 0
	for j := 1; j < len(x); j++ {
		for b > 0 && x[j] != x[b] {
			b = ba[b-1]
		}
		if x[j] == x[b] {
			b++
		} else {
			b = 0
		}
		ba[j] = b
	}
	return ba
}

// StrictArray computes the strict border array: like Array, but a
// border is discarded whenever it is immediately followed by the same
// character as the border's own extension would be, since that
// preserves the failure-function invariant that a strict border cannot
// be trivially extended by one more matching character during a scan.
func StrictArray(x []byte) []int {
	ba := Array(x)
	n := len(x)
	for j := 0; j < n-1; j++ {
		b := ba[j]
		if b > 0 && x[b] == x[j+1] {
			ba[j] = ba[b-1]
		}
	}
	return ba
}
