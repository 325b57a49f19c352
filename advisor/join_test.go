package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendForJoinThreeTables(t *testing.T) {
	sql := "SELECT o.id FROM orders o JOIN users u ON o.user_id = u.id JOIN products p ON o.product_id = p.id WHERE u.status = $1 ORDER BY o.created_at DESC"
	recs := RecommendForJoin(sql, ResolveAliases(sql))

	require.Len(t, recs, 3)

	assert.Equal(t, "orders", recs[0].TableName)
	assert.Equal(t, []string{"user_id", "product_id", "created_at"}, recs[0].Columns)
	assert.Equal(t, "ON/WHERE/ORDER BY in JOIN query", recs[0].Reason)

	assert.Equal(t, "users", recs[1].TableName)
	assert.Equal(t, []string{"id", "status"}, recs[1].Columns)

	assert.Equal(t, "products", recs[2].TableName)
	assert.Equal(t, []string{"id"}, recs[2].Columns)
}

func TestRecommendForJoinReasonWithoutOrderBy(t *testing.T) {
	sql := "SELECT * FROM a JOIN b ON a.b_id = b.id"
	recs := RecommendForJoin(sql, ResolveAliases(sql))

	require.Len(t, recs, 2)
	assert.Equal(t, "ON/WHERE in JOIN query", recs[0].Reason)
	assert.Equal(t, []string{"b_id"}, recs[0].Columns)
	assert.Equal(t, []string{"id"}, recs[1].Columns)
}

func TestRecommendForJoinWhereOnly(t *testing.T) {
	sql := "SELECT * FROM orders o WHERE o.status = $1"
	recs := RecommendForJoin(sql, ResolveAliases(sql))

	require.Len(t, recs, 1)
	assert.Equal(t, "orders", recs[0].TableName)
	assert.Equal(t, []string{"status"}, recs[0].Columns)
	assert.Equal(t, "WHERE condition in JOIN query", recs[0].Reason)
}

func TestRecommendForJoinSkipsNonComparisonWhereRefs(t *testing.T) {
	sql := "SELECT * FROM orders o WHERE o.deleted_at IS NULL"
	recs := RecommendForJoin(sql, ResolveAliases(sql))
	assert.Empty(t, recs)
}

func TestRecommendForJoinDedupsColumns(t *testing.T) {
	sql := "SELECT * FROM a JOIN b ON a.x = b.x WHERE a.x = $1"
	recs := RecommendForJoin(sql, ResolveAliases(sql))

	require.Len(t, recs, 2)
	assert.Equal(t, []string{"x"}, recs[0].Columns)
}

func TestScanQualifiedRefs(t *testing.T) {
	refs := scanQualifiedRefs("o.user_id = u.id AND plain = 1")

	require.Len(t, refs, 2)
	assert.Equal(t, "o", refs[0].tableRef)
	assert.Equal(t, "user_id", refs[0].column)
	assert.Equal(t, "u", refs[1].tableRef)
	assert.Equal(t, "id", refs[1].column)
}
