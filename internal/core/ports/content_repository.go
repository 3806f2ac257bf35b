package ports

import (
	"context"

	"github.com/thevittavardhan/backend/internal/core/domain"
)

// BlogFilter carries the optional query parameters for the blog listing.
type BlogFilter struct {
	Category string // skipped when empty or "all"
	Featured bool
	Search   string // case-insensitive substring over title/content/tags
}

// ClientFilter carries the optional query parameters for the client listing.
type ClientFilter struct {
	Industry string // skipped when empty or "all"
	Featured bool
	Search   string // case-insensitive substring over name/description/location
}

// ContentRepository serves the read-only marketing content listings.
// Content records are managed out of band; this API never writes them.
type ContentRepository interface {
	// ListBlogs returns matching articles, newest first.
	ListBlogs(ctx context.Context, filter BlogFilter) ([]*domain.Blog, error)
	// ListTestimonials returns approved testimonials, newest first.
	ListTestimonials(ctx context.Context) ([]*domain.Testimonial, error)
	// ListClients returns matching clients, featured first then newest.
	ListClients(ctx context.Context, filter ClientFilter) ([]*domain.Client, error)
}
