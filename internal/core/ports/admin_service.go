package ports

import (
	"context"
	"time"

	"github.com/thevittavardhan/backend/internal/core/domain"
)

// ActivityItem is one entry in the merged recent-activity feed.
type ActivityItem struct {
	ID      string    `json:"id"`
	Kind    string    `json:"kind"` // "contact" or "career"
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Summary string    `json:"summary"` // contact message or applied position
	Status  string    `json:"status"`
	Date    time.Time `json:"date"`
}

// Analytics is the on-demand aggregate over all stored submissions.
// Every known inquiry type and status appears in the maps, zero-valued
// when no submission matches.
type Analytics struct {
	TotalContacts    int            `json:"totalContacts"`
	TotalCareers     int            `json:"totalCareers"`
	ContactsByType   map[string]int `json:"contactsByType"`
	ContactsByStatus map[string]int `json:"contactsByStatus"`
	CareersByStatus  map[string]int `json:"careersByStatus"`
	RecentActivity   []ActivityItem `json:"recentActivity"`
}

// AdminService is the read/update/delete and aggregation surface over
// submissions. Every operation is reachable only behind the auth middleware.
type AdminService interface {
	ListContacts(ctx context.Context, filter SubmissionFilter) ([]*domain.Contact, error)
	ListCareers(ctx context.Context, filter SubmissionFilter) ([]*domain.Career, error)
	UpdateContactStatus(ctx context.Context, id, status string) (*domain.Contact, error)
	UpdateCareerStatus(ctx context.Context, id, status string) (*domain.Career, error)
	DeleteContact(ctx context.Context, id string) error
	DeleteCareer(ctx context.Context, id string) error
	Analytics(ctx context.Context) (*Analytics, error)
}
