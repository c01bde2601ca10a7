package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionBlogPost is the collection backing BlogPost documents.
const CollectionBlogPost = "blogpost"

// Blog post statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// BlogPost represents a blog entry. Slug and excerpt are derived from title
// and content at creation time; neither is guaranteed unique.
type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Excerpt     string             `bson:"excerpt" json:"excerpt,omitempty"`
	Content     string             `bson:"content" json:"content"`
	AuthorName  string             `bson:"author_name" json:"author_name"`
	Tags        []string           `bson:"tags" json:"tags"`
	Status      string             `bson:"status" json:"status"`
	PublishedAt time.Time          `bson:"published_at" json:"published_at"`
}
