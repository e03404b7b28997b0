package infra

import "cmp"

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	~float32 | ~float64
}

// OrderedKey is the key constraint of the ordered containers.
// Complex numbers are left out because they have no total order.
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// OrderedKeyComparator
// Assume i is the new key.
//  1. i == j, return 0.
//  2. i > j, return a positive value, turn to the right part.
//  3. i < j, return a negative value, turn to the left part.
type OrderedKeyComparator[K OrderedKey] func(i, j K) int64

// DefaultOrderedKeyComparator keeps a total order for floats as well,
// a NaN is less than any other value and equal to another NaN.
func DefaultOrderedKeyComparator[K OrderedKey](i, j K) int64 {
	return int64(cmp.Compare(i, j))
}

// ReverseOrderedKeyComparator flips the result of cmp.
func ReverseOrderedKeyComparator[K OrderedKey](cmp OrderedKeyComparator[K]) OrderedKeyComparator[K] {
	return func(i, j K) int64 {
		return cmp(j, i)
	}
}
