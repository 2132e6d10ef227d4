package vars

import "cmp"

func FirstNonZero[T comparable](values ...T) T {
	return cmp.Or(values...)
}
