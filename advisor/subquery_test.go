package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionSubqueries(t *testing.T) {
	sql := "SELECT * FROM a WHERE id IN (SELECT a_id FROM b WHERE x = $1)"
	stripped, subs := PartitionSubqueries(sql)

	assert.Equal(t, "SELECT * FROM a WHERE id IN ($1)", stripped)
	require.Len(t, subs, 1)
	assert.Equal(t, "SELECT a_id FROM b WHERE x = $1", subs[0])
}

func TestPartitionSubqueriesIgnoresValueLists(t *testing.T) {
	sql := "SELECT * FROM a WHERE id IN (1, 2, 3) AND status = $1"
	stripped, subs := PartitionSubqueries(sql)

	assert.Equal(t, sql, stripped)
	assert.Empty(t, subs)
}

func TestPartitionSubqueriesMultiple(t *testing.T) {
	sql := "SELECT * FROM a WHERE x IN (SELECT id FROM b) OR y IN (select id from c)"
	stripped, subs := PartitionSubqueries(sql)

	assert.Equal(t, "SELECT * FROM a WHERE x IN ($1) OR y IN ($1)", stripped)
	require.Len(t, subs, 2)
	assert.Equal(t, "SELECT id FROM b", subs[0])
	assert.Equal(t, "select id from c", subs[1])
}

func TestPartitionSubqueriesNested(t *testing.T) {
	sql := "SELECT * FROM a WHERE x IN (SELECT id FROM b WHERE y IN (SELECT id FROM c))"
	stripped, subs := PartitionSubqueries(sql)

	assert.Equal(t, "SELECT * FROM a WHERE x IN ($1)", stripped)
	require.Len(t, subs, 1)
	// Inner subqueries stay intact inside the captured body.
	assert.Equal(t, "SELECT id FROM b WHERE y IN (SELECT id FROM c)", subs[0])
}

func TestPartitionSubqueriesUnterminated(t *testing.T) {
	sql := "SELECT * FROM a WHERE x IN (SELECT id FROM b"
	stripped, subs := PartitionSubqueries(sql)

	assert.Equal(t, "SELECT * FROM a WHERE x IN ($1)", stripped)
	assert.Empty(t, subs)
}
