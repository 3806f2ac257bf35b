package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/thevittavardhan/backend/internal/core/domain"
	"github.com/thevittavardhan/backend/internal/core/ports"
)

func seedSubmissions(t *testing.T, contacts *stubContactRepo, careers *stubCareerRepo) {
	t.Helper()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, typ := range []string{domain.InquiryGeneral, domain.InquirySupport, domain.InquirySupport} {
		c := &domain.Contact{
			Name: "Contact", Email: "c@x.com", Message: "msg",
			Type: typ, Date: base.Add(time.Duration(i) * time.Hour), Status: domain.ContactPending,
		}
		if err := contacts.Create(context.Background(), c); err != nil {
			t.Fatalf("seed contact: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		a := &domain.Career{
			Name: "Applicant", Email: "a@x.com", Position: "Engineer", Experience: "3 years",
			Date: base.Add(time.Duration(10+i) * time.Hour), Status: domain.CareerPending,
		}
		if err := careers.Create(context.Background(), a); err != nil {
			t.Fatalf("seed career: %v", err)
		}
	}
}

func newAdminFixture(t *testing.T) (*AdminService, *stubContactRepo, *stubCareerRepo) {
	t.Helper()
	contacts := &stubContactRepo{}
	careers := &stubCareerRepo{}
	return NewAdminService(contacts, careers, zerolog.Nop()), contacts, careers
}

func TestAdminService_UpdateContactStatus(t *testing.T) {
	svc, contacts, careers := newAdminFixture(t)
	seedSubmissions(t, contacts, careers)

	updated, err := svc.UpdateContactStatus(context.Background(), "c1", domain.ContactResolved)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.ContactResolved {
		t.Fatalf("status not updated: %+v", updated)
	}

	// Idempotent under retry with the same value.
	again, err := svc.UpdateContactStatus(context.Background(), "c1", domain.ContactResolved)
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if again.Status != domain.ContactResolved {
		t.Fatalf("retry changed status: %+v", again)
	}
}

func TestAdminService_UpdateContactStatus_NotFound(t *testing.T) {
	svc, _, _ := newAdminFixture(t)
	if _, err := svc.UpdateContactStatus(context.Background(), "missing", "resolved"); !errors.Is(err, domain.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestAdminService_UpdateStatus_Empty(t *testing.T) {
	svc, contacts, careers := newAdminFixture(t)
	seedSubmissions(t, contacts, careers)

	if _, err := svc.UpdateContactStatus(context.Background(), "c1", ""); !errors.Is(err, domain.ErrEmptyStatus) {
		t.Fatalf("expected ErrEmptyStatus, got %v", err)
	}
	if _, err := svc.UpdateCareerStatus(context.Background(), "j1", ""); !errors.Is(err, domain.ErrEmptyStatus) {
		t.Fatalf("expected ErrEmptyStatus, got %v", err)
	}
}

func TestAdminService_UpdateCareerStatus_AnyValueAccepted(t *testing.T) {
	svc, contacts, careers := newAdminFixture(t)
	seedSubmissions(t, contacts, careers)

	// There is no transition graph: any non-empty status string is stored.
	updated, err := svc.UpdateCareerStatus(context.Background(), "j1", "on-hold")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != "on-hold" {
		t.Fatalf("status not stored verbatim: %+v", updated)
	}
}

func TestAdminService_DeleteTwice(t *testing.T) {
	svc, contacts, careers := newAdminFixture(t)
	seedSubmissions(t, contacts, careers)

	if err := svc.DeleteContact(context.Background(), "c1"); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.DeleteContact(context.Background(), "c1"); !errors.Is(err, domain.ErrContactNotFound) {
		t.Fatalf("second delete must fail with ErrContactNotFound, got %v", err)
	}

	if err := svc.DeleteCareer(context.Background(), "j1"); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.DeleteCareer(context.Background(), "j1"); !errors.Is(err, domain.ErrCareerNotFound) {
		t.Fatalf("second delete must fail with ErrCareerNotFound, got %v", err)
	}
}

func TestAdminService_ListContacts_Filtered(t *testing.T) {
	svc, contacts, careers := newAdminFixture(t)
	seedSubmissions(t, contacts, careers)

	support, err := svc.ListContacts(context.Background(), ports.SubmissionFilter{Type: domain.InquirySupport})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(support) != 2 {
		t.Fatalf("expected 2 support contacts, got %d", len(support))
	}

	all, err := svc.ListContacts(context.Background(), ports.SubmissionFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for i := 1; i < len(all); i++ {
		if all[i].Date.After(all[i-1].Date) {
			t.Fatalf("contacts not ordered most-recent-first")
		}
	}
}

func TestAdminService_Analytics(t *testing.T) {
	svc, contacts, careers := newAdminFixture(t)
	seedSubmissions(t, contacts, careers)

	a, err := svc.Analytics(context.Background())
	if err != nil {
		t.Fatalf("analytics failed: %v", err)
	}

	if a.TotalContacts != 3 || a.TotalCareers != 2 {
		t.Fatalf("unexpected totals: %+v", a)
	}
	if a.ContactsByType[domain.InquirySupport] != 2 || a.ContactsByType[domain.InquiryGeneral] != 1 {
		t.Fatalf("unexpected contactsByType: %v", a.ContactsByType)
	}
	if a.ContactsByType[domain.InquiryHR] != 0 {
		t.Fatalf("zero-valued types must still be present: %v", a.ContactsByType)
	}
	if a.CareersByStatus[domain.CareerPending] != 2 {
		t.Fatalf("unexpected careersByStatus: %v", a.CareersByStatus)
	}

	if len(a.RecentActivity) != 5 {
		t.Fatalf("expected 5 activity items, got %d", len(a.RecentActivity))
	}
	// Careers were seeded with later dates, so the feed starts with them.
	if a.RecentActivity[0].Kind != "career" {
		t.Fatalf("expected newest item first, got %+v", a.RecentActivity[0])
	}
	for i := 1; i < len(a.RecentActivity); i++ {
		if a.RecentActivity[i].Date.After(a.RecentActivity[i-1].Date) {
			t.Fatalf("activity not sorted by date descending")
		}
	}
}

func TestAdminService_Analytics_CapsRecentActivity(t *testing.T) {
	svc, contacts, careers := newAdminFixture(t)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		_ = contacts.Create(context.Background(), &domain.Contact{
			Name: "C", Email: "c@x.com", Message: "m", Type: domain.InquiryGeneral,
			Date: base.Add(time.Duration(i) * time.Minute), Status: domain.ContactPending,
		})
		_ = careers.Create(context.Background(), &domain.Career{
			Name: "A", Email: "a@x.com", Position: "P", Experience: "E",
			Date: base.Add(time.Duration(i) * time.Minute), Status: domain.CareerPending,
		})
	}

	a, err := svc.Analytics(context.Background())
	if err != nil {
		t.Fatalf("analytics failed: %v", err)
	}
	if len(a.RecentActivity) != 10 {
		t.Fatalf("expected activity capped at 10, got %d", len(a.RecentActivity))
	}
}
