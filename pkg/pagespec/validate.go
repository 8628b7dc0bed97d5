package pagespec

// ValidateBounds checks that seq is non-empty and every index lies in
// [0, total). The returned error is a *RangeError naming the first offender.
func ValidateBounds(seq []int, total int) error {
	if len(seq) == 0 {
		return &RangeError{Total: total, Empty: true}
	}
	for _, n := range seq {
		if n < 0 || n >= total {
			return &RangeError{Index: n, Total: total}
		}
	}
	return nil
}
