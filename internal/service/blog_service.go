package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"saasland/internal/cache"
	"saasland/internal/model"
	"saasland/internal/store"
)

const (
	blogListCacheKey = "blog:published"
	blogListCacheTTL = 5 * time.Minute

	excerptLimit = 140
)

// BlogService lists and creates blog posts.
type BlogService interface {
	List(ctx context.Context) ([]model.BlogPost, error)
	Create(ctx context.Context, title, content, authorName string, tags []string) (*model.BlogPost, error)
}

type blogService struct {
	store store.Store
	cache *cache.Client
}

// NewBlogService builds a BlogService with store and cache.
func NewBlogService(s store.Store, c *cache.Client) BlogService {
	return &blogService{store: s, cache: c}
}

// publishedFilter matches posts whose status is "published" or unset.
func publishedFilter() store.Filter {
	return store.Filter{store.In("status", model.StatusPublished, nil)}
}

// List returns all published posts in store iteration order. An empty
// collection is seeded with two default posts first; the seed is not guarded
// against concurrent listings, so simultaneous first calls can each insert
// their own pair.
func (s *blogService) List(ctx context.Context) ([]model.BlogPost, error) {
	if data, _ := s.cache.Get(ctx, blogListCacheKey); data != nil {
		var cached []model.BlogPost
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	var posts []model.BlogPost
	if err := s.store.Find(ctx, model.CollectionBlogPost, publishedFilter(), &posts); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	if len(posts) == 0 {
		if err := s.seed(ctx); err != nil {
			return nil, err
		}
		if err := s.store.Find(ctx, model.CollectionBlogPost, publishedFilter(), &posts); err != nil {
			return nil, fmt.Errorf("list posts after seed: %w", err)
		}
	}

	if payload, err := json.Marshal(posts); err == nil {
		_ = s.cache.Set(ctx, blogListCacheKey, payload, blogListCacheTTL)
	}
	return posts, nil
}

// Create stores a new published post. The slug is the lowercased title with
// spaces replaced by hyphens; punctuation passes through verbatim and no
// collision check is made.
func (s *blogService) Create(ctx context.Context, title, content, authorName string, tags []string) (*model.BlogPost, error) {
	if tags == nil {
		tags = []string{}
	}
	post := &model.BlogPost{
		Title:       title,
		Slug:        slugify(title),
		Excerpt:     excerpt(content),
		Content:     content,
		AuthorName:  authorName,
		Tags:        tags,
		Status:      model.StatusPublished,
		PublishedAt: time.Now().UTC(),
	}
	id, err := s.store.Create(ctx, model.CollectionBlogPost, post)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parse post id %q: %w", id, err)
	}
	post.ID = oid
	_ = s.cache.Delete(ctx, blogListCacheKey)
	return post, nil
}

// seed inserts the default posts for a brand-new site.
func (s *blogService) seed(ctx context.Context) error {
	now := time.Now().UTC()
	defaults := []model.BlogPost{
		{
			Title:       "Introducing Our Fintech Toolkit",
			Slug:        "introducing-our-fintech-toolkit",
			Excerpt:     "A gentle, pastel-first UI kit for modern SaaS.",
			Content:     "Build faster with elegant defaults and a clean API.",
			AuthorName:  "Team",
			Tags:        []string{"product", "design"},
			Status:      model.StatusPublished,
			PublishedAt: now,
		},
		{
			Title:       "Designing with Pastels",
			Slug:        "designing-with-pastels",
			Excerpt:     "Why soft palettes convert better.",
			Content:     "Pastel themes reduce cognitive load and feel premium.",
			AuthorName:  "Design",
			Tags:        []string{"design"},
			Status:      model.StatusPublished,
			PublishedAt: now,
		},
	}
	for _, post := range defaults {
		if _, err := s.store.Create(ctx, model.CollectionBlogPost, &post); err != nil {
			return fmt.Errorf("seed post %q: %w", post.Slug, err)
		}
	}
	_ = s.cache.Delete(ctx, blogListCacheKey)
	log.Printf("seeded %d default blog posts", len(defaults))
	return nil
}

// slugify lowercases the title and replaces spaces with hyphens. No
// uniqueness or URL escaping is applied.
func slugify(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}

// excerpt returns the first 140 characters of content, appending "..." only
// when content is longer. Counts runes so multi-byte text is never split.
func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLimit {
		return content
	}
	return string(runes[:excerptLimit]) + "..."
}
