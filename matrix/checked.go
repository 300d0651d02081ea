// SPDX-License-Identifier: MIT

package matrix

import "math"

// mulInt64 returns a*b and false when the product overflows int64.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	// The only quotient check that misses is MinInt64 * -1.
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	if p/b != a {
		return 0, false
	}

	return p, true
}

// addInt64 returns a+b and false when the sum overflows int64.
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	// Overflow iff both operands share a sign that the sum does not.
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		return 0, false
	}

	return s, true
}

// narrowInt32 converts v to int32 and false when it does not fit.
func narrowInt32(v int64) (int32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}

	return int32(v), true
}
