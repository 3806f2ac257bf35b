package ports

import (
	"context"

	"github.com/thevittavardhan/backend/internal/core/domain"
)

// SubmissionFilter carries the optional query parameters for listing
// submissions. Zero values mean "no filter".
type SubmissionFilter struct {
	Status string // exact match on lifecycle status
	Type   string // contacts only: exact match on inquiry type
	Search string // case-insensitive substring over name/message (contacts) or name/position (careers)
}

// ContactRepository defines persistence for contact submissions.
// List returns records most-recent-first. UpdateStatus and Delete return
// domain.ErrContactNotFound when no record matches the id; a repeated delete
// of the same id therefore fails rather than silently succeeding.
type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) error
	List(ctx context.Context, filter SubmissionFilter) ([]*domain.Contact, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

// CareerRepository defines persistence for career applications, mirroring
// ContactRepository with domain.ErrCareerNotFound as the absence error.
type CareerRepository interface {
	Create(ctx context.Context, c *domain.Career) error
	List(ctx context.Context, filter SubmissionFilter) ([]*domain.Career, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Career, error)
	Delete(ctx context.Context, id string) error
}
