package skills

import (
	"cmp"
	"slices"
)

// Score returns |candidate ∩ job| / |job|. The second result is false when job is
// empty, in which case the score is undefined and 0 is returned.
func Score(candidate, job []string) (float64, bool) {
	jobSet := toSet(job)
	if len(jobSet) == 0 {
		return 0, false
	}

	candidateSet := toSet(candidate)
	matched := 0
	for skill := range jobSet {
		if _, ok := candidateSet[skill]; ok {
			matched++
		}
	}

	return float64(matched) / float64(len(jobSet)), true
}

// RankByScore sorts items by descending score. Equal scores keep their input order.
func RankByScore[T any](items []T, score func(T) float64) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(score(b), score(a))
	})
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}
