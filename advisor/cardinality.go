package advisor

import (
	"sort"
	"strings"
)

// Cardinality is a name-based distinctness bucket. It is a presentational
// heuristic, not a measured statistic.
type Cardinality string

const (
	CardinalityVeryHigh   Cardinality = "Very High"
	CardinalityHigh       Cardinality = "High"
	CardinalityMediumHigh Cardinality = "Medium-High"
	CardinalityMedium     Cardinality = "Medium"
	CardinalityMediumLow  Cardinality = "Medium-Low"
	CardinalityLow        Cardinality = "Low"
	CardinalityVeryLow    Cardinality = "Very Low"
)

// Rank orders buckets for column-order comparisons. Unknown buckets rank
// as Medium.
func (c Cardinality) Rank() int {
	switch c {
	case CardinalityVeryHigh:
		return 5
	case CardinalityHigh:
		return 4
	case CardinalityMediumHigh:
		return 3
	case CardinalityMedium:
		return 2
	case CardinalityMediumLow:
		return 1
	case CardinalityLow:
		return 0
	case CardinalityVeryLow:
		return -1
	}
	return 2
}

// EstimateCardinality buckets a column by naming convention alone.
func EstimateCardinality(column string) Cardinality {
	name := strings.ToLower(column)
	switch {
	case name == "id":
		return CardinalityVeryHigh
	case strings.Contains(name, "id"):
		return CardinalityHigh
	case strings.Contains(name, "status"), strings.Contains(name, "type"):
		return CardinalityLow
	case strings.Contains(name, "email"), strings.Contains(name, "username"):
		return CardinalityVeryHigh
	case strings.Contains(name, "created_at"), strings.Contains(name, "updated_at"), strings.Contains(name, "timestamp"):
		return CardinalityMediumHigh
	case strings.HasPrefix(name, "is_"), strings.HasPrefix(name, "has_"),
		strings.Contains(name, "bool"), strings.Contains(name, "flag"):
		return CardinalityVeryLow
	case strings.Contains(name, "category"), strings.Contains(name, "tag"):
		return CardinalityMediumLow
	}
	return CardinalityMedium
}

// EstimateCardinalities buckets every column, position-aligned with the
// input.
func EstimateCardinalities(columns []string) []Cardinality {
	cards := make([]Cardinality, len(columns))
	for i, col := range columns {
		cards[i] = EstimateCardinality(col)
	}
	return cards
}

// Predicate-type ranks for column ordering. Lower ranks make better index
// prefixes.
const (
	condEquality = iota
	condIn
	condRange
	condLike
	condOrderBy
	condOther
)

// conditionRank re-derives how a column is used from literal text tests
// against the whole query.
func conditionRank(sqlLower, col string) int {
	switch {
	case strings.Contains(sqlLower, col+" =") || strings.Contains(sqlLower, col+"="):
		return condEquality
	case strings.Contains(sqlLower, col+" in (") || strings.Contains(sqlLower, col+" in("):
		return condIn
	case strings.Contains(sqlLower, col+" >") || strings.Contains(sqlLower, col+">") ||
		strings.Contains(sqlLower, col+" <") || strings.Contains(sqlLower, col+"<"):
		return condRange
	case strings.Contains(sqlLower, col+" like"):
		return condLike
	case strings.Contains(strings.ToLower(orderByBody(sqlLower)), col):
		return condOrderBy
	}
	return condOther
}

// OptimizeColumnOrder sorts index-key candidates for a composite index:
// predicate type first (equality, IN, range, LIKE, ORDER BY, other), then
// higher estimated cardinality first within each non-ORDER-BY tier.
func OptimizeColumnOrder(columns []string, sql string) []string {
	if len(columns) < 2 {
		return append([]string(nil), columns...)
	}

	lower := strings.ToLower(sql)
	type entry struct {
		col  string
		rank int
		card int
	}
	entries := make([]entry, len(columns))
	for i, col := range columns {
		entries[i] = entry{
			col:  col,
			rank: conditionRank(lower, strings.ToLower(col)),
			card: EstimateCardinality(col).Rank(),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].rank != entries[j].rank {
			return entries[i].rank < entries[j].rank
		}
		if entries[i].rank == condOrderBy {
			return false
		}
		return entries[i].card > entries[j].card
	})

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.col
	}
	return out
}
