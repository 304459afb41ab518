package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGormClient(t *testing.T) *GormClient {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	return NewGormClient(db)
}

func TestGormClient_EmptyTable(t *testing.T) {
	c := setupGormClient(t)

	rows, err := c.SelectAll(context.Background(), WorkSessions)

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGormClient_UpsertOverwritesByID(t *testing.T) {
	c := setupGormClient(t)
	ctx := context.Background()

	require.NoError(t, c.Upsert(ctx, Clients, []Row{
		{ID: "1", Content: json.RawMessage(`{"id":1,"nome":"Rossi"}`)},
		{ID: "2", Content: json.RawMessage(`{"id":2,"nome":"Bianchi"}`)},
	}))
	require.NoError(t, c.Upsert(ctx, Clients, []Row{
		{ID: "1", Content: json.RawMessage(`{"id":1,"nome":"Rossi Srl"}`)},
	}))

	rows, err := c.SelectAll(ctx, Clients)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.JSONEq(t, `{"id":1,"nome":"Rossi Srl"}`, string(rows[0]))
	assert.JSONEq(t, `{"id":2,"nome":"Bianchi"}`, string(rows[1]))

	other, err := c.SelectAll(ctx, Assets)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestGormClient_Migrate(t *testing.T) {
	c := setupGormClient(t)

	require.NoError(t, c.Migrate(context.Background(), Clients, Assets))

	assert.True(t, c.db.Migrator().HasTable(Clients))
	assert.True(t, c.db.Migrator().HasTable(Assets))
	assert.False(t, c.db.Migrator().HasTable(WorkSessions))
}
