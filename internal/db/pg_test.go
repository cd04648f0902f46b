package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_BadDSN(t *testing.T) {
	pool, err := Open(context.Background(), "postgres://localhost/prodcheck?pool_max_conns=many")
	require.Error(t, err)
	assert.Nil(t, pool)
	assert.Contains(t, err.Error(), "parse dsn")
}
