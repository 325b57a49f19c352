package advisor

import (
	"sort"
	"strings"
)

// categoryOrder is the priority order conditions are collected in; earlier
// categories win when a column matches several.
var categoryOrder = []ConditionCategory{Equality, InClause, Range, Like, Inequality, NotLike}

// ClassifyConditions scans a WHERE clause body and classifies every known
// column that appears under a recognized condition. Columns are tried
// longest-name-first so user_id wins over id, and each column keeps the
// first (highest-priority) category it matches. The result is ordered by
// category priority.
func ClassifyConditions(body string, knownColumns []string) []ClassifiedColumn {
	if body == "" || len(knownColumns) == 0 {
		return nil
	}

	lower := strings.ToLower(body)

	byLength := append([]string(nil), knownColumns...)
	sort.SliceStable(byLength, func(i, j int) bool {
		return len(byLength[i]) > len(byLength[j])
	})

	var result []ClassifiedColumn
	seen := map[string]bool{}

	for _, cat := range categoryOrder {
		for _, col := range byLength {
			if seen[col] {
				continue
			}
			if columnMatchesCategory(lower, strings.ToLower(col), cat) {
				seen[col] = true
				result = append(result, ClassifiedColumn{Column: col, Category: cat})
			}
		}
	}

	return result
}

// columnMatchesCategory reports whether any word-bounded occurrence of col
// in body is immediately followed by the category's trigger text.
func columnMatchesCategory(body, col string, cat ConditionCategory) bool {
	from := 0
	for {
		i := strings.Index(body[from:], col)
		if i < 0 {
			return false
		}
		p := from + i
		from = p + 1
		if !boundedAt(body, p, len(col)) {
			continue
		}
		if categoryTrigger(body[p+len(col):], cat) {
			return true
		}
	}
}

// boundedAt reports whether the match at p with the given length sits on
// word boundaries: the characters on both sides must be separators or
// operators, or the string edge.
func boundedAt(body string, p, length int) bool {
	if p > 0 && !isBoundaryChar(body[p-1]) {
		return false
	}
	if end := p + length; end < len(body) && !isBoundaryChar(body[end]) {
		return false
	}
	return true
}

func isBoundaryChar(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '(', ')', ',', '=', '<', '>', '!':
		return true
	}
	return false
}

// categoryTrigger tests the text immediately following a matched column.
// Two-character operators are checked before their one-character prefixes.
func categoryTrigger(rest string, cat ConditionCategory) bool {
	switch cat {
	case Equality:
		return strings.HasPrefix(rest, "=") || strings.HasPrefix(rest, " =")
	case InClause:
		return strings.HasPrefix(rest, " in ") || strings.HasPrefix(rest, " in(")
	case Range:
		return strings.HasPrefix(rest, ">=") || strings.HasPrefix(rest, "<=") ||
			strings.HasPrefix(rest, ">") || strings.HasPrefix(rest, "<")
	case Like:
		return strings.HasPrefix(rest, " like")
	case Inequality:
		return strings.HasPrefix(rest, "!=") || strings.HasPrefix(rest, "<>")
	case NotLike:
		return strings.HasPrefix(rest, " not like")
	}
	return false
}
