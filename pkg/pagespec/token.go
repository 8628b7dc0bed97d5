package pagespec

import (
	"math"
	"strconv"
	"strings"
)

// MaxSelection is the largest number of indices a specification may expand
// to. Larger selections are rejected before anything is allocated.
const MaxSelection = 1 << 20

// Token is one comma separated unit of a specification: a single page or an
// inclusive range. Start and End are in whatever origin the caller uses.
type Token struct {
	Start int
	End   int
	span  bool
}

// Single returns the token for page n.
func Single(n int) Token { return Token{Start: n, End: n} }

// Range returns the token for the inclusive range start-end. start may be
// greater than end.
func Range(start, end int) Token { return Token{Start: start, End: end, span: true} }

// IsRange reports whether t was written as "a-b".
func (t Token) IsRange() bool { return t.span }

// Len returns the number of indices t expands to, saturating at
// math.MaxInt.
func (t Token) Len() int {
	lo, hi := t.Start, t.End
	if lo > hi {
		lo, hi = hi, lo
	}
	d := uint(hi) - uint(lo)
	if d >= math.MaxInt {
		return math.MaxInt
	}
	return int(d) + 1
}

// outside returns the first index of t's expansion that falls outside
// [0, total), without expanding t.
func (t Token) outside(shift bool, total int) (int, bool) {
	start, end := t.Start, t.End
	if shift {
		start--
		end--
	}
	switch {
	case start < 0 || start >= total:
		return start, true
	case start <= end && end >= total:
		return total, true
	case start > end && end < 0:
		return -1, true
	}
	return 0, false
}

// Expand returns the indices covered by t in expansion order. With shift set
// both ends are decremented first, turning one-based pages into zero-based
// indices. Expand allocates every index; check Len against MaxSelection
// before expanding untrusted tokens.
func (t Token) Expand(shift bool) []int {
	start, step := t.Start, 1
	if t.Start > t.End {
		step = -1
	}
	if shift {
		start--
	}
	n := t.Len()
	out := make([]int, 0, min(n, MaxSelection))
	for k := 0; k < n; k++ {
		out = append(out, start+k*step)
	}
	return out
}

func (t Token) String() string {
	if !t.span {
		return strconv.Itoa(t.Start)
	}
	return strconv.Itoa(t.Start) + "-" + strconv.Itoa(t.End)
}

// Tokenize splits spec into tokens in textual order. Commas at either end of
// spec are ignored and whitespace around each part is trimmed.
func Tokenize(spec string) ([]Token, error) {
	body := strings.Trim(spec, ",")
	if strings.TrimSpace(body) == "" {
		return nil, malformed(spec, "", "is empty")
	}
	parts := strings.Split(body, ",")
	tokens := make([]Token, 0, len(parts))
	for _, part := range parts {
		tok, err := parseToken(spec, part)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func parseToken(spec, raw string) (Token, error) {
	part := strings.TrimSpace(raw)
	if part == "" {
		return Token{}, malformed(spec, raw, "is empty")
	}
	left, right, isRange := strings.Cut(part, "-")
	if !isRange {
		n, ok := number(part)
		if !ok {
			return Token{}, malformed(spec, part, "is not a page number")
		}
		return Single(n), nil
	}
	left, right = strings.TrimSpace(left), strings.TrimSpace(right)
	if left == "" || right == "" {
		return Token{}, malformed(spec, part, "is missing a range bound")
	}
	start, ok := number(left)
	if !ok {
		return Token{}, malformed(spec, part, "has an invalid range start")
	}
	end, ok := number(right)
	if !ok {
		return Token{}, malformed(spec, part, "has an invalid range end")
	}
	return Range(start, end), nil
}

// number accepts unsigned decimal literals only; signs would make "1--2"
// ambiguous.
func number(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
