package ioschema_test

import (
	"context"
	"testing"

	"github.com/gnames/skillgap/internal/iodb"
	"github.com/gnames/skillgap/internal/ioschema"
	"github.com/gnames/skillgap/internal/iotesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewManager_NotConnected verifies manager refuses to
// work without a connection pool.
func TestNewManager_NotConnected(t *testing.T) {
	op := iodb.NewPgxOperator()
	mgr := ioschema.NewManager(op)
	require.NotNil(t, mgr)

	err := mgr.Create(context.Background())
	assert.Error(t, err)
	err = mgr.Migrate(context.Background())
	assert.Error(t, err)
}

// TestManager_Create verifies tables are created and
// creation can be repeated.
func TestManager_Create(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	op := iodb.NewPgxOperator()
	err := op.Connect(ctx, &iotesting.GetTestConfig().Database)
	require.NoError(t, err)
	defer op.Close()

	require.NoError(t, op.DropAllTables(ctx))

	mgr := ioschema.NewManager(op)
	require.NoError(t, mgr.Create(ctx))

	for _, table := range []string{"employees", "skills", "training_resources"} {
		exists, err := op.TableExists(ctx, table)
		require.NoError(t, err)
		assert.True(t, exists, table)
	}

	require.NoError(t, mgr.Migrate(ctx), "migrate is idempotent")
}
