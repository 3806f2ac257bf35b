package ports

import (
	"context"

	"github.com/thevittavardhan/backend/internal/core/domain"
)

// ContactInput carries a validated contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Message string
	Type    string
}

// CareerInput carries a validated job application submission.
type CareerInput struct {
	Name       string
	Email      string
	Phone      string
	Position   string
	Experience string
	Message    string
	Resume     string
}

// SubmissionService accepts public form submissions. The returned record is
// durably persisted before the call returns; notification email is enqueued
// afterwards and its outcome never affects the result.
type SubmissionService interface {
	SubmitContact(ctx context.Context, in ContactInput) (*domain.Contact, error)
	SubmitCareer(ctx context.Context, in CareerInput) (*domain.Career, error)
}
