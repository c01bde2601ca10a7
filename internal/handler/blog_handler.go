package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "saasland/internal/errors"
	"saasland/internal/model"
	"saasland/internal/service"
)

// BlogHandler handles the blog feed endpoints.
type BlogHandler struct {
	blogService service.BlogService
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// BlogCreateRequest represents a blog post creation request.
type BlogCreateRequest struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	AuthorName string   `json:"author_name" validate:"required"`
	Tags       []string `json:"tags"`
}

// BlogItem represents a blog post in responses.
type BlogItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Content     string    `json:"content"`
	AuthorName  string    `json:"author_name"`
	Slug        string    `json:"slug"`
	PublishedAt time.Time `json:"published_at"`
	Tags        []string  `json:"tags"`
}

// toBlogItem maps a stored post into the response shape, substituting "Team"
// for a missing author and the current time for a missing publish time.
func toBlogItem(p model.BlogPost) BlogItem {
	item := BlogItem{
		ID:          p.ID.Hex(),
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		AuthorName:  p.AuthorName,
		Slug:        p.Slug,
		PublishedAt: p.PublishedAt,
		Tags:        p.Tags,
	}
	if item.AuthorName == "" {
		item.AuthorName = "Team"
	}
	if item.PublishedAt.IsZero() {
		item.PublishedAt = time.Now().UTC()
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	return item
}

// List godoc
// @Summary List published blog posts
// @Description Returns published posts in store order, seeding default content when the collection is empty.
// @Tags blog
// @Produce json
// @Success 200 {array} BlogItem
// @Failure 503 {object} errors.ErrorResponse
// @Router /blog [get]
func (h *BlogHandler) List(c echo.Context) error {
	posts, err := h.blogService.List(c.Request().Context())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	items := make([]BlogItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, toBlogItem(p))
	}
	return c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary Create a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param request body BlogCreateRequest true "Post data"
// @Success 200 {object} BlogItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /blog [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req BlogCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.blogService.Create(c.Request().Context(), req.Title, req.Content, req.AuthorName, req.Tags)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toBlogItem(*post))
}
