package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/thevittavardhan/backend/internal/core/domain"
	"github.com/thevittavardhan/backend/internal/core/ports"
)

// SubmissionService persists public form submissions and hands them to the
// notifier. Persistence is the durability boundary: once Create returns, the
// record exists no matter what happens to the notification email.
type SubmissionService struct {
	contacts ports.ContactRepository
	careers  ports.CareerRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewSubmissionService(
	contacts ports.ContactRepository,
	careers ports.CareerRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) *SubmissionService {
	return &SubmissionService{contacts: contacts, careers: careers, notifier: notifier, log: log}
}

func (s *SubmissionService) SubmitContact(ctx context.Context, in ports.ContactInput) (*domain.Contact, error) {
	contact := &domain.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Company: in.Company,
		Message: in.Message,
		Type:    in.Type,
		Date:    time.Now().UTC(),
		Status:  domain.ContactPending,
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		s.log.Error().Err(err).Msg("failed to persist contact submission")
		return nil, err
	}

	s.log.Info().Str("id", contact.ID).Str("type", contact.Type).Msg("contact submission stored")

	s.notifier.ContactReceived(contact)
	return contact, nil
}

func (s *SubmissionService) SubmitCareer(ctx context.Context, in ports.CareerInput) (*domain.Career, error) {
	career := &domain.Career{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Position:   in.Position,
		Experience: in.Experience,
		Message:    in.Message,
		Resume:     in.Resume,
		Date:       time.Now().UTC(),
		Status:     domain.CareerPending,
	}

	if err := s.careers.Create(ctx, career); err != nil {
		s.log.Error().Err(err).Msg("failed to persist career application")
		return nil, err
	}

	s.log.Info().Str("id", career.ID).Str("position", career.Position).Msg("career application stored")

	s.notifier.CareerReceived(career)
	return career, nil
}
