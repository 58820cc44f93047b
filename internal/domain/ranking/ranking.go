// Package ranking assigns competition ranks to numeric values and measures
// the distance between rank vectors.
package ranking

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// TieMethod selects how tied values share rank positions.
type TieMethod int

const (
	// TieMin gives every member of a tie group the lowest position the group
	// occupies: 10, 20, 20, 30 ranked descending is 4, 2, 2, 1.
	TieMin TieMethod = iota
	// TieAverage gives every member the mean of the positions the group occupies.
	TieAverage
	// TieDense numbers tie groups consecutively without gaps.
	TieDense
)

// String returns the config name of the method.
func (m TieMethod) String() string {
	switch m {
	case TieMin:
		return "min"
	case TieAverage:
		return "average"
	case TieDense:
		return "dense"
	default:
		return fmt.Sprintf("TieMethod(%d)", int(m))
	}
}

// ParseTieMethod maps a config name to a TieMethod.
func ParseTieMethod(name string) (TieMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "min":
		return TieMin, nil
	case "average", "avg", "mean":
		return TieAverage, nil
	case "dense":
		return TieDense, nil
	default:
		return TieMin, fmt.Errorf("%w: %q", ErrUnknownTieMethod, name)
	}
}

// Vector holds one rank per input element, aligned by index. Rank 1 is best.
// Ranks are float64 so that TieAverage can express half positions.
type Vector []float64

// Rank ranks values. With ascending false the largest value receives rank 1;
// with ascending true the smallest does. Equal values form a tie group that is
// resolved according to method. The result has the same length as values and
// every rank lies in [1, len(values)].
func Rank(values []float64, ascending bool, method TieMethod) Vector {
	n := len(values)
	ranks := make(Vector, n)
	if n == 0 {
		return ranks
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := values[order[i]], values[order[j]]
		if ascending {
			return a < b
		}
		return a > b
	})

	group := 0
	for start := 0; start < n; {
		end := start + 1
		for end < n && values[order[end]] == values[order[start]] {
			end++
		}
		group++

		var r float64
		switch method {
		case TieAverage:
			// positions start+1 .. end
			r = float64(start+1+end) / 2
		case TieDense:
			r = float64(group)
		default:
			r = float64(start + 1)
		}
		for k := start; k < end; k++ {
			ranks[order[k]] = r
		}
		start = end
	}
	return ranks
}

// L1Distance returns the sum of absolute element-wise differences. It panics
// when the vectors differ in length since they must describe the same records.
func L1Distance(a, b Vector) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("ranking: L1Distance of vectors with lengths %d and %d", len(a), len(b)))
	}
	var d float64
	for i := range a {
		d += math.Abs(a[i] - b[i])
	}
	return d
}

// Add returns the element-wise sum of two equally long vectors.
func Add(a, b Vector) []float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("ranking: Add of vectors with lengths %d and %d", len(a), len(b)))
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}
