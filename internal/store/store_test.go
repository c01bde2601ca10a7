package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "saasland/internal/errors"
)

type note struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Title  string             `bson:"title"`
	Status string             `bson:"status,omitempty"`
}

func TestMemoryStore_CreateAssignsID(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	id, err := s.Create(ctx, "notes", &note{Title: "first"})
	require.NoError(t, err)

	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)
	assert.False(t, oid.IsZero())

	var got []note
	require.NoError(t, s.Find(ctx, "notes", Filter{Eq("title", "first")}, &got))
	require.Len(t, got, 1)
	assert.Equal(t, oid, got[0].ID)
}

func TestMemoryStore_FindEmptyResult(t *testing.T) {
	s := NewMemory()

	var got []note
	err := s.Find(context.Background(), "notes", Filter{Eq("title", "nope")}, &got)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestMemoryStore_FindEquality(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	_, err := s.Create(ctx, "notes", &note{Title: "a", Status: "published"})
	require.NoError(t, err)
	_, err = s.Create(ctx, "notes", &note{Title: "b", Status: "draft"})
	require.NoError(t, err)

	var got []note
	require.NoError(t, s.Find(ctx, "notes", Filter{Eq("status", "published")}, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)
}

func TestMemoryStore_InMatchesMissingFieldWithNil(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	// One published, one draft, one with no status field at all, one null.
	_, err := s.Create(ctx, "notes", bson.M{"title": "published", "status": "published"})
	require.NoError(t, err)
	_, err = s.Create(ctx, "notes", bson.M{"title": "draft", "status": "draft"})
	require.NoError(t, err)
	_, err = s.Create(ctx, "notes", bson.M{"title": "legacy"})
	require.NoError(t, err)
	_, err = s.Create(ctx, "notes", bson.M{"title": "nulled", "status": nil})
	require.NoError(t, err)

	var got []note
	require.NoError(t, s.Find(ctx, "notes", Filter{In("status", "published", nil)}, &got))

	titles := make([]string, 0, len(got))
	for _, n := range got {
		titles = append(titles, n.Title)
	}
	assert.Equal(t, []string{"published", "legacy", "nulled"}, titles)
}

func TestMemoryStore_PreservesInsertionOrder(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		_, err := s.Create(ctx, "notes", &note{Title: title, Status: "published"})
		require.NoError(t, err)
	}

	var got []note
	require.NoError(t, s.Find(ctx, "notes", Filter{Eq("status", "published")}, &got))
	require.Len(t, got, 3)
	assert.Equal(t, "one", got[0].Title)
	assert.Equal(t, "two", got[1].Title)
	assert.Equal(t, "three", got[2].Title)
}

func TestMemoryStore_FindRequiresSlicePointer(t *testing.T) {
	s := NewMemory()

	var notSlice note
	err := s.Find(context.Background(), "notes", nil, &notSlice)
	assert.Error(t, err)
}

func TestMemoryStore_Status(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	_, err := s.Create(ctx, "notes", &note{Title: "a"})
	require.NoError(t, err)

	st := s.Status(ctx)
	assert.True(t, st.Connected)
	assert.Equal(t, "memory", st.Database)
	assert.Contains(t, st.Collections, "notes")
}

func TestMongoStore_DisconnectedReturnsStoreUnavailable(t *testing.T) {
	s := &MongoStore{}
	ctx := context.Background()

	_, err := s.Create(ctx, "notes", &note{Title: "a"})
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)

	var got []note
	err = s.Find(ctx, "notes", nil, &got)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)

	st := s.Status(ctx)
	assert.False(t, st.Connected)
}
