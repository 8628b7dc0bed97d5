package pagespec

import "fmt"

type options struct {
	shift bool
	dups  bool
}

// Option configures Parse.
type Option func(*options)

// WithOriginShift treats the specification as one-based and returns
// zero-based indices.
func WithOriginShift() Option {
	return func(o *options) { o.shift = true }
}

// WithDuplicates keeps repeated indices instead of dropping all but the
// first occurrence.
func WithDuplicates() Option {
	return func(o *options) { o.dups = true }
}

// Parse expands spec into an index sequence. Tokens expand left to right
// and the result is their concatenation. Unless WithDuplicates is given,
// only the first occurrence of each index is kept.
//
// Parse does not check bounds; see ValidateBounds.
func Parse(spec string, opts ...Option) ([]int, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	tokens, err := Tokenize(spec)
	if err != nil {
		return nil, err
	}
	return expand(spec, tokens, o)
}

func expand(spec string, tokens []Token, o options) ([]int, error) {
	n, err := selectionLen(spec, tokens)
	if err != nil {
		return nil, err
	}
	seq := make([]int, 0, n)
	for _, tok := range tokens {
		seq = append(seq, tok.Expand(o.shift)...)
	}
	if !o.dups {
		seq = Dedupe(seq)
	}
	return seq, nil
}

// selectionLen sums the token lengths, failing once MaxSelection is passed.
func selectionLen(spec string, tokens []Token) (int, error) {
	n := 0
	for _, tok := range tokens {
		l := tok.Len()
		if l > MaxSelection-n {
			return 0, malformed(spec, tok.String(), fmt.Sprintf("selects more than %d pages", MaxSelection))
		}
		n += l
	}
	return n, nil
}

// ParseSpec is Parse with positional flags.
func ParseSpec(spec string, originShift, allowDuplicates bool) ([]int, error) {
	opts := make([]Option, 0, 2)
	if originShift {
		opts = append(opts, WithOriginShift())
	}
	if allowDuplicates {
		opts = append(opts, WithDuplicates())
	}
	return Parse(spec, opts...)
}

// ParseGroups resolves every token of spec into its own sequence, so
// "1-5,3-6,7" yields three groups. Groups may overlap and keep their
// duplicates.
func ParseGroups(spec string, originShift bool) ([][]int, error) {
	tokens, err := Tokenize(spec)
	if err != nil {
		return nil, err
	}
	if _, err := selectionLen(spec, tokens); err != nil {
		return nil, err
	}
	groups := make([][]int, len(tokens))
	for i, tok := range tokens {
		groups[i] = tok.Expand(originShift)
	}
	return groups, nil
}
