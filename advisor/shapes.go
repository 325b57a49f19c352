package advisor

import "strings"

// functionNames are the SQL functions that make an expression a functional
// index candidate when applied to a known column.
var functionNames = []string{
	"lower", "upper", "trim", "date", "year", "month", "day",
	"substring", "substr", "concat", "coalesce",
}

// DetectFunctionalIndex scans for a recognized function call whose first
// argument is a known column. It returns the full call expression in its
// original casing plus the column. Detection short-circuits the rest of
// recommendation synthesis.
func DetectFunctionalIndex(sql string, knownColumns []string) (expression, column string, ok bool) {
	lower := strings.ToLower(sql)

	for pos := 0; pos < len(lower); pos++ {
		name, start := functionCallAt(lower, pos)
		if name == "" {
			continue
		}
		open := start + len(name)
		closing := matchParen(sql, open)
		if closing < 0 {
			// Unbalanced call, nothing more to extract.
			return "", "", false
		}

		args := sql[open+1 : closing]
		first := args
		if comma := strings.Index(args, ","); comma >= 0 {
			first = args[:comma]
		}
		first = strings.TrimSpace(first)

		for _, col := range knownColumns {
			if strings.EqualFold(first, col) {
				return sql[start : closing+1], col, true
			}
		}
		pos = closing
	}
	return "", "", false
}

// functionCallAt reports the recognized function name starting at pos when
// pos begins a word-bounded "name(" occurrence.
func functionCallAt(lower string, pos int) (string, int) {
	if pos > 0 && isIdentChar(lower[pos-1]) {
		return "", 0
	}
	for _, name := range functionNames {
		if strings.HasPrefix(lower[pos:], name+"(") {
			return name, pos
		}
	}
	return "", 0
}

// matchParen returns the offset of the ')' matching the '(' at open, or -1.
func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// partialStatusValues are the literal status values that suggest a partial
// index. Bound parameters never trigger partial detection.
var partialStatusValues = []string{"active", "inactive", "pending"}

// DetectPartialIndex reports whether the WHERE clause carries a fixed
// predicate worth a partial index, and returns that predicate: the first
// conjunct of the WHERE body.
func DetectPartialIndex(sql string) (condition string, ok bool) {
	body := whereBody(sql)
	lower := strings.ToLower(body)
	if lower == "" {
		return "", false
	}

	triggered := strings.Contains(lower, "deleted_at is null")
	if !triggered {
		for _, v := range partialStatusValues {
			if strings.Contains(lower, "status = '"+v+"'") || strings.Contains(lower, "status='"+v+"'") {
				triggered = true
				break
			}
		}
	}
	if !triggered {
		return "", false
	}

	condition = body
	if i := strings.Index(lower, " and "); i >= 0 {
		condition = body[:i]
	}
	return strings.TrimSpace(condition), true
}

// DetectIncludeColumns finds known columns that the SELECT list fetches but
// the key column set does not cover; those are INCLUDE candidates for a
// covering index. A bare SELECT * yields none.
func DetectIncludeColumns(sql string, knownColumns, keyColumns []string) []string {
	lower := strings.ToLower(sql)
	si := strings.Index(lower, "select")
	fi := strings.Index(lower, "from")
	if si < 0 || fi < 0 || fi <= si {
		return nil
	}

	selectList := lower[si+len("select") : fi]
	if strings.TrimSpace(selectList) == "*" {
		return nil
	}

	inKey := map[string]bool{}
	for _, col := range keyColumns {
		inKey[strings.ToLower(col)] = true
	}

	var include []string
	for _, col := range knownColumns {
		lc := strings.ToLower(col)
		if inKey[lc] {
			continue
		}
		if strings.Contains(selectList, lc) {
			include = append(include, col)
		}
	}
	return include
}
