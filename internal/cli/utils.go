package cli

import (
	"strings"

	"github.com/sampila/pdfcli/pkg/pagespec"
)

// ParsePageRange resolves a one-based page selection such as "1-3,7" against
// a document of total pages. An empty selection means every page.
func ParsePageRange(pageRange string, total int) ([]int, error) {
	if strings.TrimSpace(pageRange) == "" {
		return AllPages(total), nil
	}
	return pagespec.Policy{OriginShift: true, TotalPages: total}.Resolve(pageRange)
}

// ReorderPlan puts the named pages first, drops repeats, and appends the
// pages that were not named in their original order.
func ReorderPlan(order string, total int) ([]int, error) {
	return pagespec.Policy{OriginShift: true, FillRemaining: true, TotalPages: total}.Resolve(order)
}

// TrimPlan keeps only the named pages, in the order they were named.
func TrimPlan(pages string, total int) ([]int, error) {
	return pagespec.Policy{OriginShift: true, TotalPages: total}.Resolve(pages)
}

// SplitPlan returns one page list per comma separated part. Every group is
// validated before any is returned.
func SplitPlan(parts string, total int) ([][]int, error) {
	tokens, err := pagespec.Tokenize(parts)
	if err != nil {
		return nil, err
	}
	if err := pagespec.CheckTokens(tokens, true, total); err != nil {
		return nil, err
	}
	groups, err := pagespec.ParseGroups(parts, true)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if err := pagespec.ValidateBounds(g, total); err != nil {
			return nil, err
		}
	}
	return groups, nil
}
