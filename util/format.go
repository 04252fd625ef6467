package util

import (
	"fmt"
	"strings"
)

// Format renders n elements as a bracketed, space separated listing.
// at is called with every index in [0, n) in order.
//
// An empty sequence renders as "[]"
func Format[T any](n int, at func(i int) T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, at(i))
	}
	sb.WriteByte(']')
	return sb.String()
}
