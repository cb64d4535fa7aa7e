package math

import "golang.org/x/exp/constraints"

func DivCeil[T constraints.Integer](dividend, divisor T) T {
	base := dividend / divisor
	if dividend%divisor == 0 {
		return base
	} else {
		return base + 1
	}
}

func IsPowerOfTwo[T constraints.Integer](x T) bool {
	return x > 0 && x&(x-1) == 0
}

// ExceedsRatio reports whether n/capacity > num/den, without division.
func ExceedsRatio[T constraints.Integer](n, capacity, num, den T) bool {
	return n*den > capacity*num
}
