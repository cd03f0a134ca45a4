package practiced

import "strings"

// gradeAnswer compares a submitted answer against the expected one.
// A single-edit near miss (one substitution, insertion, or deletion) counts
// as almost correct but not correct; near misses are informational only and
// cost neither a stage nor a life.
func gradeAnswer(submitted, expected string) (correct, almost bool) {
	s := normalize(submitted)
	e := normalize(expected)

	if s == e {
		return true, false
	}
	if s == "" {
		return false, false
	}
	if editDistanceIsOne(s, e) {
		return false, true
	}
	return false, false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// editDistanceIsOne reports whether a and b differ by exactly one edit.
func editDistanceIsOne(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la > lb {
		ra, rb = rb, ra
		la, lb = lb, la
	}
	if lb-la > 1 {
		return false
	}

	if la == lb {
		diffs := 0
		for i := range ra {
			if ra[i] != rb[i] {
				diffs++
				if diffs > 1 {
					return false
				}
			}
		}
		return diffs == 1
	}

	// One rune longer: check single insertion.
	i, j := 0, 0
	skipped := false
	for i < la && j < lb {
		if ra[i] == rb[j] {
			i++
			j++
			continue
		}
		if skipped {
			return false
		}
		skipped = true
		j++
	}
	return true
}
