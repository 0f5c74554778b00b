package service

// Sequence is one emitted service's station-id list, keyed by the id
// it will be assigned in the RC output.
type Sequence struct {
	ID         int
	StationIDs []int
}

// Prune removes, from seqs, every sequence that is identical to, the
// exact reverse of, or a contiguous sub-route of another sequence in
// the set. On an identical-or-reverse match between two sequences, the
// one with the larger ID is removed (so a lower, earlier-assigned id
// always survives a tie). The scan restarts after each removal — not
// merely resumes — since removing one sequence can reveal that another
// survivor is now itself a sub-route of the one compared against it a
// moment before; resuming without restarting would require chasing a
// moving index, which the restart variant can sidestep.
func Prune(seqs []Sequence) []Sequence {
	result := make([]Sequence, len(seqs))
	copy(result, seqs)

	for i := 0; i < len(result); {
		removed := false
		for j := 0; j < len(result); j++ {
			if i == j {
				continue
			}
			a, b := result[i], result[j]
			rev := reversed(b.StationIDs)

			if len(a.StationIDs) == len(b.StationIDs) {
				if equal(a.StationIDs, b.StationIDs) || equal(a.StationIDs, rev) {
					if a.ID > b.ID {
						result = append(result[:i], result[i+1:]...)
						removed = true
						break
					}
					continue
				}
			}

			if isSubroute(a.StationIDs, b.StationIDs) || isSubroute(a.StationIDs, rev) {
				result = append(result[:i], result[i+1:]...)
				removed = true
				break
			}
		}
		if removed {
			i = 0
		} else {
			i++
		}
	}
	return result
}

func reversed(a []int) []int {
	r := make([]int, len(a))
	for i, v := range a {
		r[len(a)-1-i] = v
	}
	return r
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// isSubroute reports whether a appears as a contiguous run inside b. A
// equal in length or longer than b is never a sub-route (that case is
// handled separately, as an exact/reverse match).
func isSubroute(a, b []int) bool {
	if len(a) == 0 || len(a) >= len(b) {
		return false
	}
	for i := 0; i+len(a) <= len(b); i++ {
		if equal(a, b[i:i+len(a)]) {
			return true
		}
	}
	return false
}
