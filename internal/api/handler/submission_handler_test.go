package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/thevittavardhan/backend/internal/core/domain"
	"github.com/thevittavardhan/backend/internal/core/ports"
)

type stubSubmissionService struct {
	contacts []ports.ContactInput
	careers  []ports.CareerInput
	failNext error
}

func (s *stubSubmissionService) SubmitContact(ctx context.Context, in ports.ContactInput) (*domain.Contact, error) {
	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return nil, err
	}
	s.contacts = append(s.contacts, in)
	return &domain.Contact{ID: "c1", Name: in.Name, Status: domain.ContactPending}, nil
}

func (s *stubSubmissionService) SubmitCareer(ctx context.Context, in ports.CareerInput) (*domain.Career, error) {
	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return nil, err
	}
	s.careers = append(s.careers, in)
	return &domain.Career{ID: "k1", Name: in.Name, Status: domain.CareerPending}, nil
}

func TestSubmissionHandler_Contact_Success(t *testing.T) {
	stub := &stubSubmissionService{}
	h := NewSubmissionHandler(stub)

	body := `{"name":"Ada","email":"ada@example.com","message":"hello","type":"support","company":"Acme"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/contact", body)
	if err := h.Contact(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true || resp["message"] != "Message sent successfully" {
		t.Fatalf("unexpected payload: %+v", resp)
	}

	if len(stub.contacts) != 1 {
		t.Fatalf("expected one submission, got %d", len(stub.contacts))
	}
	if got := stub.contacts[0]; got.Type != "support" || got.Company != "Acme" {
		t.Fatalf("input not passed through: %+v", got)
	}
}

func TestSubmissionHandler_Contact_RejectsUnknownType(t *testing.T) {
	stub := &stubSubmissionService{}
	h := NewSubmissionHandler(stub)

	body := `{"name":"Ada","email":"ada@example.com","message":"hello","type":"sales"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/contact", body)
	err := h.Contact(c)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "type" {
		t.Fatalf("unexpected fields: %+v", ve.Fields)
	}
	if len(stub.contacts) != 0 {
		t.Fatalf("rejected submission must not reach the service")
	}
}

func TestSubmissionHandler_Contact_MissingRequiredFields(t *testing.T) {
	h := NewSubmissionHandler(&stubSubmissionService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/contact", `{"email":"not-an-email"}`)
	err := h.Contact(c)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	// name, email format, message and type all fail.
	if len(ve.Fields) != 4 {
		t.Fatalf("expected 4 field errors, got %+v", ve.Fields)
	}
}

func TestSubmissionHandler_Contact_PersistFailurePropagates(t *testing.T) {
	stub := &stubSubmissionService{failNext: errors.New("mongo down")}
	h := NewSubmissionHandler(stub)

	body := `{"name":"Ada","email":"ada@example.com","message":"hello","type":"general"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/contact", body)
	if err := h.Contact(c); err == nil {
		t.Fatalf("expected persistence error to propagate")
	}
}

func TestSubmissionHandler_Career_Success(t *testing.T) {
	stub := &stubSubmissionService{}
	h := NewSubmissionHandler(stub)

	body := `{"name":"Grace","email":"grace@example.com","position":"Backend Engineer","experience":"5 years"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/careers", body)
	if err := h.Career(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Application submitted successfully" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if len(stub.careers) != 1 || stub.careers[0].Position != "Backend Engineer" {
		t.Fatalf("input not passed through: %+v", stub.careers)
	}
}

func TestSubmissionHandler_Career_MissingPosition(t *testing.T) {
	stub := &stubSubmissionService{}
	h := NewSubmissionHandler(stub)

	body := `{"name":"Grace","email":"grace@example.com","experience":"5 years"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/careers", body)
	err := h.Career(c)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "position" {
		t.Fatalf("unexpected fields: %+v", ve.Fields)
	}
}
