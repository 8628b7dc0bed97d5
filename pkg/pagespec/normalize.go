package pagespec

// Dedupe returns the first occurrence of every index in seq, in order.
// seq is not modified.
func Dedupe(seq []int) []int {
	seen := make(map[int]struct{}, len(seq))
	out := make([]int, 0, len(seq))
	for _, n := range seq {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// CompleteWithRemaining appends every index of [0, total) missing from seq,
// in ascending order. Existing elements keep their positions. For a
// validated, duplicate free seq the result is a permutation of [0, total).
// The result may share seq's backing array.
func CompleteWithRemaining(seq []int, total int) []int {
	seen := make(map[int]struct{}, len(seq))
	for _, n := range seq {
		seen[n] = struct{}{}
	}
	for i := 0; i < total; i++ {
		if _, ok := seen[i]; !ok {
			seq = append(seq, i)
		}
	}
	return seq
}
