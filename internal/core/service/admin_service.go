package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/thevittavardhan/backend/internal/core/domain"
	"github.com/thevittavardhan/backend/internal/core/ports"
)

// recentActivityLimit caps the merged recent-activity feed.
const recentActivityLimit = 10

// AdminService serves the protected read/update/delete surface and the
// analytics aggregate over submissions.
type AdminService struct {
	contacts ports.ContactRepository
	careers  ports.CareerRepository
	log      zerolog.Logger
}

func NewAdminService(contacts ports.ContactRepository, careers ports.CareerRepository, log zerolog.Logger) *AdminService {
	return &AdminService{contacts: contacts, careers: careers, log: log}
}

func (s *AdminService) ListContacts(ctx context.Context, filter ports.SubmissionFilter) ([]*domain.Contact, error) {
	return s.contacts.List(ctx, filter)
}

func (s *AdminService) ListCareers(ctx context.Context, filter ports.SubmissionFilter) ([]*domain.Career, error) {
	return s.careers.List(ctx, filter)
}

// UpdateContactStatus sets a new status. Any non-empty value is accepted;
// there is no transition graph over contact statuses.
func (s *AdminService) UpdateContactStatus(ctx context.Context, id, status string) (*domain.Contact, error) {
	if status == "" {
		return nil, domain.ErrEmptyStatus
	}
	updated, err := s.contacts.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", id).Str("status", status).Msg("contact status updated")
	return updated, nil
}

// UpdateCareerStatus mirrors UpdateContactStatus for career applications.
func (s *AdminService) UpdateCareerStatus(ctx context.Context, id, status string) (*domain.Career, error) {
	if status == "" {
		return nil, domain.ErrEmptyStatus
	}
	updated, err := s.careers.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", id).Str("status", status).Msg("career status updated")
	return updated, nil
}

func (s *AdminService) DeleteContact(ctx context.Context, id string) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("id", id).Msg("contact deleted")
	return nil
}

func (s *AdminService) DeleteCareer(ctx context.Context, id string) error {
	if err := s.careers.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("id", id).Msg("career application deleted")
	return nil
}

// Analytics computes the aggregate on demand with a full scan of both
// collections, so it is always consistent with the latest writes.
func (s *AdminService) Analytics(ctx context.Context) (*ports.Analytics, error) {
	contacts, err := s.contacts.List(ctx, ports.SubmissionFilter{})
	if err != nil {
		return nil, err
	}
	careers, err := s.careers.List(ctx, ports.SubmissionFilter{})
	if err != nil {
		return nil, err
	}

	a := &ports.Analytics{
		TotalContacts:    len(contacts),
		TotalCareers:     len(careers),
		ContactsByType:   zeroCounts(domain.InquiryTypes),
		ContactsByStatus: zeroCounts(domain.ContactStatuses),
		CareersByStatus:  zeroCounts(domain.CareerStatuses),
	}

	activity := make([]ports.ActivityItem, 0, len(contacts)+len(careers))
	for _, c := range contacts {
		a.ContactsByType[c.Type]++
		a.ContactsByStatus[c.Status]++
		activity = append(activity, ports.ActivityItem{
			ID: c.ID, Kind: "contact", Name: c.Name, Email: c.Email,
			Summary: c.Message, Status: c.Status, Date: c.Date,
		})
	}
	for _, c := range careers {
		a.CareersByStatus[c.Status]++
		activity = append(activity, ports.ActivityItem{
			ID: c.ID, Kind: "career", Name: c.Name, Email: c.Email,
			Summary: c.Position, Status: c.Status, Date: c.Date,
		})
	}

	sort.SliceStable(activity, func(i, j int) bool {
		return activity[i].Date.After(activity[j].Date)
	})
	if len(activity) > recentActivityLimit {
		activity = activity[:recentActivityLimit]
	}
	a.RecentActivity = activity

	return a, nil
}

// zeroCounts pre-seeds a counter map so every known key appears in the
// response even with a count of zero.
func zeroCounts(keys []string) map[string]int {
	m := make(map[string]int, len(keys))
	for _, k := range keys {
		m[k] = 0
	}
	return m
}
