package advisor

import "strings"

// PartitionSubqueries splits a query into a copy where every top-level
// parenthesized SELECT is replaced by the placeholder ($1), plus the
// extracted subquery bodies in source order. Parenthesized groups that do
// not begin with SELECT (IN lists, function calls) pass through untouched.
// Unbalanced input stops extraction rather than over-reading.
func PartitionSubqueries(sql string) (string, []string) {
	var out strings.Builder
	var subs []string
	var sub strings.Builder

	depth := 0
	inSub := false

	for i := 0; i < len(sql); i++ {
		c := sql[i]
		switch c {
		case '(':
			depth++
			if !inSub && depth == 1 && beginsWithSelect(sql[i+1:]) {
				inSub = true
				continue
			}
			if inSub {
				sub.WriteByte(c)
			} else {
				out.WriteByte(c)
			}
		case ')':
			if inSub && depth == 1 {
				subs = append(subs, strings.TrimSpace(sub.String()))
				sub.Reset()
				inSub = false
				out.WriteString("($1)")
				depth--
				continue
			}
			if depth > 0 {
				depth--
			}
			if inSub {
				sub.WriteByte(c)
			} else {
				out.WriteByte(c)
			}
		default:
			if inSub {
				sub.WriteByte(c)
			} else {
				out.WriteByte(c)
			}
		}
	}

	// An unterminated subquery is dropped; the copy keeps its placeholder
	// so downstream clause bounds stay sane.
	if inSub {
		out.WriteString("($1)")
	}

	return out.String(), subs
}

func beginsWithSelect(s string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(s)), "SELECT")
}
