package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCardinality(t *testing.T) {
	tests := []struct {
		column string
		want   Cardinality
	}{
		{"id", CardinalityVeryHigh},
		{"user_id", CardinalityHigh},
		{"status", CardinalityLow},
		{"order_type", CardinalityLow},
		{"email", CardinalityVeryHigh},
		{"username", CardinalityVeryHigh},
		{"created_at", CardinalityMediumHigh},
		{"updated_at", CardinalityMediumHigh},
		{"is_active", CardinalityVeryLow},
		{"has_discount", CardinalityVeryLow},
		{"category", CardinalityMediumLow},
		{"name", CardinalityMedium},
		{"Status", CardinalityLow},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateCardinality(tt.column))
		})
	}
}

func TestCardinalityRank(t *testing.T) {
	assert.Equal(t, 5, CardinalityVeryHigh.Rank())
	assert.Equal(t, 4, CardinalityHigh.Rank())
	assert.Equal(t, 3, CardinalityMediumHigh.Rank())
	assert.Equal(t, 2, CardinalityMedium.Rank())
	assert.Equal(t, 1, CardinalityMediumLow.Rank())
	assert.Equal(t, 0, CardinalityLow.Rank())
	assert.Equal(t, -1, CardinalityVeryLow.Rank())
	assert.Equal(t, 2, Cardinality("weird").Rank())
}

func TestOptimizeColumnOrderByConditionType(t *testing.T) {
	sql := "SELECT * FROM jobs WHERE tenant_id=$1 AND status IN($2,$3) AND priority>$4 ORDER BY created_at DESC"
	got := OptimizeColumnOrder([]string{"created_at", "priority", "status", "tenant_id"}, sql)
	assert.Equal(t, []string{"tenant_id", "status", "priority", "created_at"}, got)
}

func TestOptimizeColumnOrderCardinalityWithinTier(t *testing.T) {
	// Both equality; user_id (High) outranks status (Low).
	sql := "SELECT * FROM t WHERE status=$1 AND user_id=$2"
	got := OptimizeColumnOrder([]string{"status", "user_id"}, sql)
	assert.Equal(t, []string{"user_id", "status"}, got)
}

func TestOptimizeColumnOrderSingleColumn(t *testing.T) {
	got := OptimizeColumnOrder([]string{"email"}, "SELECT * FROM t WHERE email=$1")
	assert.Equal(t, []string{"email"}, got)
}
