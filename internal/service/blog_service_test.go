package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"saasland/internal/model"
	"saasland/internal/store"
)

func TestBlogService_ListSeedsWhenEmpty(t *testing.T) {
	svc := NewBlogService(store.NewMemory(), nil)
	ctx := context.Background()

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "introducing-our-fintech-toolkit", posts[0].Slug)
	assert.Equal(t, "designing-with-pastels", posts[1].Slug)
	for _, p := range posts {
		assert.Equal(t, model.StatusPublished, p.Status)
		assert.False(t, p.PublishedAt.IsZero())
	}

	// A second call must return at least the seeded posts, never fewer.
	again, err := svc.List(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(again), 2)
}

func TestBlogService_ListSkipsSeedWhenPostsExist(t *testing.T) {
	memStore := store.NewMemory()
	svc := NewBlogService(memStore, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Existing Post", "content", "Jane", nil)
	require.NoError(t, err)

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "existing-post", posts[0].Slug)
}

func TestBlogService_ListFiltersDrafts(t *testing.T) {
	memStore := store.NewMemory()
	svc := NewBlogService(memStore, nil)
	ctx := context.Background()

	_, err := memStore.Create(ctx, model.CollectionBlogPost, bson.M{
		"title": "Hidden", "slug": "hidden", "content": "x", "status": model.StatusDraft,
	})
	require.NoError(t, err)
	// A legacy document with no status field still lists.
	_, err = memStore.Create(ctx, model.CollectionBlogPost, bson.M{
		"title": "Legacy", "slug": "legacy", "content": "y",
	})
	require.NoError(t, err)

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "legacy", posts[0].Slug)
}

func TestBlogService_Create(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		content     string
		tags        []string
		wantSlug    string
		wantExcerpt string
	}{
		{
			name:        "simple title",
			title:       "Hello World",
			content:     "short content",
			wantSlug:    "hello-world",
			wantExcerpt: "short content",
		},
		{
			name:        "punctuation passes through",
			title:       "What's New in v2?",
			content:     "notes",
			wantSlug:    "what's-new-in-v2?",
			wantExcerpt: "notes",
		},
		{
			name:        "long content gets ellipsis",
			title:       "Long",
			content:     strings.Repeat("a", 200),
			wantSlug:    "long",
			wantExcerpt: strings.Repeat("a", 140) + "...",
		},
		{
			name:        "exactly 140 chars stays whole",
			title:       "Exact",
			content:     strings.Repeat("b", 140),
			wantSlug:    "exact",
			wantExcerpt: strings.Repeat("b", 140),
		},
		{
			name:        "multi-byte content truncates on rune boundary",
			title:       "Unicode",
			content:     strings.Repeat("é", 200),
			wantSlug:    "unicode",
			wantExcerpt: strings.Repeat("é", 140) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewBlogService(store.NewMemory(), nil)
			post, err := svc.Create(context.Background(), tt.title, tt.content, "Jane", tt.tags)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSlug, post.Slug)
			assert.Equal(t, tt.wantExcerpt, post.Excerpt)
			assert.Equal(t, model.StatusPublished, post.Status)
			assert.False(t, post.ID.IsZero())
			assert.False(t, post.PublishedAt.IsZero())
			assert.NotNil(t, post.Tags)
		})
	}
}

func TestBlogService_CreatedPostListsImmediately(t *testing.T) {
	svc := NewBlogService(store.NewMemory(), nil)
	ctx := context.Background()

	// Prime the collection so the seed path stays out of the way.
	_, err := svc.Create(ctx, "First", "content", "Jane", nil)
	require.NoError(t, err)
	before, err := svc.List(ctx)
	require.NoError(t, err)

	created, err := svc.Create(ctx, "Second", "content", "Jane", []string{"news"})
	require.NoError(t, err)

	after, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, created.ID, after[len(after)-1].ID)
}
