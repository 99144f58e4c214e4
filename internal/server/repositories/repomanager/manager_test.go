package repomanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	m, err := Open(context.Background(), DriverMemory, "", "")
	require.NoError(t, err)

	_, ok := m.(*MemoryRepositoryManager)
	assert.True(t, ok)
	assert.NoError(t, m.RunMigrations(context.Background()))
	assert.NoError(t, m.Ping(context.Background()))
	assert.NoError(t, m.Close(context.Background()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "sqlite", "", "")
	assert.ErrorContains(t, err, `unknown storage driver "sqlite"`)
}

func TestMemoryRepositoryManager_ReadOnlySharesState(t *testing.T) {
	m := NewMemoryRepositoryManager()

	var seen RepositoryManager
	err := m.ReadOnly(context.Background(), func(_ context.Context, rm RepositoryManager) error {
		seen = rm
		return nil
	})
	require.NoError(t, err)
	assert.Same(t, m, seen)
	assert.Same(t, m.Users(), m.Users())
}
