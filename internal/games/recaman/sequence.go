// Package recaman generates Recamán's sequence for the number demo program.
package recaman

// DefaultTerms is how many terms the demo generates when the configuration
// does not say otherwise.
const DefaultTerms = 1000

// Sequence returns the first n terms, starting from a(0) = 0. Each term is
// a(n-1) - n when that value is positive and has not appeared before,
// otherwise a(n-1) + n.
func Sequence(n int) []int64 {
	if n <= 0 {
		return nil
	}

	terms := make([]int64, 0, n)
	seen := make(map[int64]struct{}, n)

	var current int64
	terms = append(terms, current)
	seen[current] = struct{}{}

	for i := int64(1); i < int64(n); i++ {
		candidate := current - i
		if _, taken := seen[candidate]; candidate > 0 && !taken {
			current = candidate
		} else {
			current += i
		}
		terms = append(terms, current)
		seen[current] = struct{}{}
	}

	return terms
}

// Max returns the largest term of a sequence, or 0 for an empty one.
func Max(terms []int64) int64 {
	var max int64
	for _, t := range terms {
		if t > max {
			max = t
		}
	}
	return max
}
