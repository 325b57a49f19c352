package advisor

import "strings"

// AnalyzeComplexity derives the feature snapshot used by scoring. All three
// probes are deliberately crude substring tests; identifiers or string
// literals containing "or"/"select"/parens can fool them.
func AnalyzeComplexity(sql string) QueryComplexity {
	body := strings.ToLower(whereBody(sql))

	return QueryComplexity{
		HasOr:          strings.Contains(body, " or ") || strings.HasSuffix(body, " or"),
		HasParentheses: hasGroupingParens(body),
		HasSubquery:    strings.Count(strings.ToLower(sql), "select") >= 2,
	}
}

// hasGroupingParens reports whether the WHERE body contains an opening
// paren that is not the start of an IN list. A 20-char trailing window
// before each paren is checked for an "in" keyword.
func hasGroupingParens(body string) bool {
	for i := 0; i < len(body); i++ {
		if body[i] != '(' {
			continue
		}
		start := i - 20
		if start < 0 {
			start = 0
		}
		window := body[start:i]
		if strings.HasSuffix(window, "in") || strings.HasSuffix(window, "in ") {
			continue
		}
		return true
	}
	return false
}
