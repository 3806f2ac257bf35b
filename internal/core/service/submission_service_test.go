package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/thevittavardhan/backend/internal/core/domain"
	"github.com/thevittavardhan/backend/internal/core/ports"
)

// stubContactRepo is an in-memory ContactRepository keeping insertion order.
type stubContactRepo struct {
	mu       sync.Mutex
	contacts []*domain.Contact
	nextID   int
	failNext error
}

func (r *stubContactRepo) Create(_ context.Context, c *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	r.nextID++
	c.ID = fmt.Sprintf("c%d", r.nextID)
	clone := *c
	r.contacts = append(r.contacts, &clone)
	return nil
}

func (r *stubContactRepo) List(_ context.Context, filter ports.SubmissionFilter) ([]*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Contact
	for i := len(r.contacts) - 1; i >= 0; i-- {
		c := r.contacts[i]
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Type != "" && c.Type != filter.Type {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(c.Name+" "+c.Message), strings.ToLower(filter.Search)) {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubContactRepo) UpdateStatus(_ context.Context, id, status string) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.contacts {
		if c.ID == id {
			c.Status = status
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrContactNotFound
}

func (r *stubContactRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.contacts {
		if c.ID == id {
			r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
			return nil
		}
	}
	return domain.ErrContactNotFound
}

// stubCareerRepo mirrors stubContactRepo for career applications.
type stubCareerRepo struct {
	mu      sync.Mutex
	careers []*domain.Career
	nextID  int
}

func (r *stubCareerRepo) Create(_ context.Context, c *domain.Career) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	c.ID = fmt.Sprintf("j%d", r.nextID)
	clone := *c
	r.careers = append(r.careers, &clone)
	return nil
}

func (r *stubCareerRepo) List(_ context.Context, filter ports.SubmissionFilter) ([]*domain.Career, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Career
	for i := len(r.careers) - 1; i >= 0; i-- {
		c := r.careers[i]
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(c.Name+" "+c.Position), strings.ToLower(filter.Search)) {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCareerRepo) UpdateStatus(_ context.Context, id, status string) (*domain.Career, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.careers {
		if c.ID == id {
			c.Status = status
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCareerNotFound
}

func (r *stubCareerRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.careers {
		if c.ID == id {
			r.careers = append(r.careers[:i], r.careers[i+1:]...)
			return nil
		}
	}
	return domain.ErrCareerNotFound
}

// recordingNotifier captures dispatched submissions without any delivery.
type recordingNotifier struct {
	mu       sync.Mutex
	contacts []*domain.Contact
	careers  []*domain.Career
}

func (n *recordingNotifier) ContactReceived(c *domain.Contact) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.contacts = append(n.contacts, c)
}

func (n *recordingNotifier) CareerReceived(a *domain.Career) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.careers = append(n.careers, a)
}

func TestSubmissionService_SubmitContact(t *testing.T) {
	contacts := &stubContactRepo{}
	notifier := &recordingNotifier{}
	svc := NewSubmissionService(contacts, &stubCareerRepo{}, notifier, zerolog.Nop())

	before := time.Now().UTC()
	created, err := svc.SubmitContact(context.Background(), ports.ContactInput{
		Name: "Ada", Email: "ada@x.com", Message: "hi", Type: domain.InquirySupport,
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if created.Status != domain.ContactPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
	if created.Date.Before(before) || created.Date.After(time.Now().UTC().Add(time.Second)) {
		t.Fatalf("createdAt not set to now: %v", created.Date)
	}

	stored, err := contacts.List(context.Background(), ports.SubmissionFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(stored) != 1 || stored[0].Name != "Ada" || stored[0].Status != domain.ContactPending {
		t.Fatalf("unexpected stored records: %+v", stored)
	}

	if len(notifier.contacts) != 1 || notifier.contacts[0].ID != created.ID {
		t.Fatalf("notification not dispatched for stored contact")
	}
}

func TestSubmissionService_SubmitContact_PersistFailure(t *testing.T) {
	contacts := &stubContactRepo{failNext: fmt.Errorf("db down")}
	notifier := &recordingNotifier{}
	svc := NewSubmissionService(contacts, &stubCareerRepo{}, notifier, zerolog.Nop())

	if _, err := svc.SubmitContact(context.Background(), ports.ContactInput{
		Name: "Ada", Email: "ada@x.com", Message: "hi", Type: domain.InquiryGeneral,
	}); err == nil {
		t.Fatalf("expected error when persistence fails")
	}

	// No notification may be dispatched for a record that was never stored.
	if len(notifier.contacts) != 0 {
		t.Fatalf("notification dispatched despite failed persistence")
	}
}

func TestSubmissionService_SubmitCareer(t *testing.T) {
	careers := &stubCareerRepo{}
	notifier := &recordingNotifier{}
	svc := NewSubmissionService(&stubContactRepo{}, careers, notifier, zerolog.Nop())

	created, err := svc.SubmitCareer(context.Background(), ports.CareerInput{
		Name: "Grace", Email: "grace@x.com", Position: "Backend Engineer", Experience: "5 years",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if created.Status != domain.CareerPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
	if created.ID == "" {
		t.Fatalf("id not assigned")
	}
	if len(notifier.careers) != 1 {
		t.Fatalf("notification not dispatched")
	}
}
