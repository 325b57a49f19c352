package advisor

// ConditionCategory classifies how a column is used inside a WHERE clause.
// Lower values are more selective and sort first when building index keys.
type ConditionCategory int

const (
	Equality ConditionCategory = iota + 1
	InClause
	Range
	Like
	Inequality
	NotLike
)

func (c ConditionCategory) String() string {
	switch c {
	case Equality:
		return "equality"
	case InClause:
		return "in"
	case Range:
		return "range"
	case Like:
		return "like"
	case Inequality:
		return "inequality"
	case NotLike:
		return "not_like"
	default:
		return "unknown"
	}
}

// ClassifiedColumn pairs a column with the condition category it matched.
type ClassifiedColumn struct {
	Column   string
	Category ConditionCategory
}

// TableIndexRecommendation is produced for each table touched by a JOIN query.
type TableIndexRecommendation struct {
	TableName string   `json:"table_name"`
	Columns   []string `json:"columns"`
	Reason    string   `json:"reason"`
}

// IndexRecommendation is the full single-table recommendation record.
// Columns and ColumnCardinality are always the same length.
type IndexRecommendation struct {
	IndexName                string        `json:"index_name"`
	Columns                  []string      `json:"columns"`
	IsUnique                 bool          `json:"is_unique"`
	IsPartial                bool          `json:"is_partial"`
	PartialCondition         string        `json:"partial_condition,omitempty"`
	IncludeColumns           []string      `json:"include_columns,omitempty"`
	Reason                   string        `json:"reason"`
	EstimatedSizeBytes       int           `json:"estimated_size_bytes"`
	IndexType                string        `json:"index_type"`
	IsFunctional             bool          `json:"is_functional"`
	FunctionalExpression     string        `json:"functional_expression,omitempty"`
	EffectivenessScore       int           `json:"effectiveness_score"`
	DatabaseHints            []string      `json:"database_hints,omitempty"`
	ColumnCardinality        []Cardinality `json:"column_cardinality"`
	EstimatedPerformanceGain string        `json:"estimated_performance_gain"`
	AlternativeStrategies    []string      `json:"alternative_strategies,omitempty"`
	ExecutionPlanHints       []string      `json:"execution_plan_hints,omitempty"`
	VisualRepresentation     string        `json:"visual_representation,omitempty"`
	EstimatedQueryCost       string        `json:"estimated_query_cost"`
}

// QueryComplexity is a crude snapshot of query features that affect scoring.
type QueryComplexity struct {
	HasOr          bool `json:"has_or"`
	HasParentheses bool `json:"has_parentheses"`
	HasSubquery    bool `json:"has_subquery"`
}
