package store

import (
	"context"
	"testing"

	"github.com/AnshRaj112/exercise-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	_ UserStore = (*MemoryStore)(nil)
	_ UserStore = (*MongoStore)(nil)
)

func TestMemoryStoreInsertAndFind(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	u := &models.User{Username: "alice", Log: []models.Entry{}}
	require.NoError(t, s.Insert(ctx, u))
	require.False(t, u.ID.IsZero())

	got, err := s.FindByID(ctx, u.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	got, err = s.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestMemoryStoreLookupErrors(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.FindByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = s.FindByID(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.Update(ctx, &models.User{ID: primitive.NewObjectID()})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDoesNotAlias(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	u := &models.User{Username: "bob", Log: []models.Entry{}}
	require.NoError(t, s.Insert(ctx, u))

	got, err := s.FindByID(ctx, u.ID.Hex())
	require.NoError(t, err)
	got.Log = append(got.Log, models.Entry{Description: "unsaved"})
	got.Count++

	again, err := s.FindByID(ctx, u.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, again.Log)
	assert.Zero(t, again.Count)

	require.NoError(t, s.Update(ctx, got))
	again, err = s.FindByID(ctx, u.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, again.Log, 1)
	assert.Equal(t, 1, again.Count)
}

func TestMemoryStoreListOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, s.Insert(ctx, &models.User{Username: name, Log: []models.Entry{{}}}))
	}

	users, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "c", users[0].Username)
	assert.Equal(t, "a", users[1].Username)
	assert.Equal(t, "b", users[2].Username)
	assert.Nil(t, users[0].Log)
}
