package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFunctionalIndex(t *testing.T) {
	expr, col, ok := DetectFunctionalIndex("SELECT * FROM users WHERE LOWER(email) = $1", []string{"id", "email"})

	require.True(t, ok)
	assert.Equal(t, "LOWER(email)", expr)
	assert.Equal(t, "email", col)
}

func TestDetectFunctionalIndexMultiArg(t *testing.T) {
	expr, col, ok := DetectFunctionalIndex("SELECT * FROM t WHERE COALESCE(nickname, name) = $1", []string{"nickname"})

	require.True(t, ok)
	assert.Equal(t, "COALESCE(nickname, name)", expr)
	assert.Equal(t, "nickname", col)
}

func TestDetectFunctionalIndexUnknownColumn(t *testing.T) {
	_, _, ok := DetectFunctionalIndex("SELECT * FROM t WHERE LOWER(other) = $1", []string{"email"})
	assert.False(t, ok)
}

func TestDetectFunctionalIndexSkipsLaterMatch(t *testing.T) {
	// First call misses, second hits.
	expr, col, ok := DetectFunctionalIndex("SELECT * FROM t WHERE TRIM(other) = $1 AND UPPER(code) = $2", []string{"code"})

	require.True(t, ok)
	assert.Equal(t, "UPPER(code)", expr)
	assert.Equal(t, "code", col)
}

func TestDetectFunctionalIndexWordBounded(t *testing.T) {
	// "flower(" must not match "lower(".
	_, _, ok := DetectFunctionalIndex("SELECT * FROM t WHERE flower(email) = $1", []string{"email"})
	assert.False(t, ok)
}

func TestDetectPartialIndexDeletedAt(t *testing.T) {
	cond, ok := DetectPartialIndex("SELECT * FROM t WHERE deleted_at IS NULL AND email = $1")

	require.True(t, ok)
	assert.Equal(t, "deleted_at IS NULL", cond)
}

func TestDetectPartialIndexStatusLiteral(t *testing.T) {
	cond, ok := DetectPartialIndex("SELECT * FROM t WHERE status = 'active' AND x = $1")

	require.True(t, ok)
	assert.Equal(t, "status = 'active'", cond)

	_, ok = DetectPartialIndex("SELECT * FROM t WHERE status='pending'")
	assert.True(t, ok)
}

func TestDetectPartialIndexBoundParamDoesNotTrigger(t *testing.T) {
	_, ok := DetectPartialIndex("SELECT * FROM t WHERE status = $1")
	assert.False(t, ok)
}

func TestDetectIncludeColumns(t *testing.T) {
	got := DetectIncludeColumns(
		"SELECT id, email, name FROM users WHERE email = $1",
		[]string{"id", "email", "name", "status"},
		[]string{"email"},
	)
	assert.Equal(t, []string{"id", "name"}, got)
}

func TestDetectIncludeColumnsStarSelect(t *testing.T) {
	got := DetectIncludeColumns("SELECT * FROM users WHERE email = $1", []string{"id", "email"}, []string{"email"})
	assert.Nil(t, got)
}
