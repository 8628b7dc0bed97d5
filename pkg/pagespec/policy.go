package pagespec

import "fmt"

// Policy bundles the resolution options used by a command.
//
// TotalPages <= 0 means the page count is unknown; bounds are then left to
// the caller.
type Policy struct {
	AllowDuplicates bool
	OriginShift     bool
	FillRemaining   bool
	TotalPages      int
}

// CheckTokens bounds-checks tokens against total without expanding them.
// The error names the same index ValidateBounds would report for the
// expanded sequence.
func CheckTokens(tokens []Token, shift bool, total int) error {
	for _, tok := range tokens {
		if n, bad := tok.outside(shift, total); bad {
			return &RangeError{Index: n, Total: total}
		}
	}
	return nil
}

// Resolve parses spec, validates it against TotalPages when known, and
// appends the remaining pages when FillRemaining is set.
func (p Policy) Resolve(spec string) ([]int, error) {
	if p.FillRemaining && p.TotalPages <= 0 {
		return nil, fmt.Errorf("%w: fill remaining requires a page count", ErrPolicy)
	}
	tokens, err := Tokenize(spec)
	if err != nil {
		return nil, err
	}
	if p.TotalPages > 0 {
		if err := CheckTokens(tokens, p.OriginShift, p.TotalPages); err != nil {
			return nil, err
		}
	}
	seq, err := expand(spec, tokens, options{shift: p.OriginShift, dups: p.AllowDuplicates})
	if err != nil {
		return nil, err
	}
	if p.TotalPages > 0 {
		if err := ValidateBounds(seq, p.TotalPages); err != nil {
			return nil, err
		}
	}
	if p.FillRemaining {
		seq = CompleteWithRemaining(seq, p.TotalPages)
	}
	return seq, nil
}
