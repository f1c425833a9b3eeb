package services

import (
	"context"

	"devsites/internal/config"
	"devsites/internal/domain"
	"devsites/internal/logger"
	"devsites/internal/metrics"
	apperrors "devsites/pkg/errors"
)

const contactThanks = "Thank you for your message! We'll get back to you within 24 hours."

// ContactService implements the contact form and its admin listing
type ContactService struct {
	store ContactStore
	api   config.APIConfig
	log   *logger.Logger
}

// NewContactService creates a new contact service
func NewContactService(store ContactStore, api config.APIConfig, log *logger.Logger) *ContactService {
	if log == nil {
		log = logger.Nop()
	}
	return &ContactService{store: store, api: api, log: log.Component("contact")}
}

// Submit implements the submit contact form method
func (s *ContactService) Submit(ctx context.Context, p *ContactSubmitPayload) (*ContactSubmitResult, error) {
	c, err := s.validateContactForm(p)
	if err != nil {
		s.log.Info("Submit rejected", "error", err)
		return nil, err
	}

	stored, err := s.store.CreateContact(ctx, c)
	if err != nil {
		s.log.Error("Error processing contact form", "email", c.Email, "error", err)
		return nil, apperrors.StoreFailure("Failed to submit contact form", err)
	}

	s.log.Info("New contact submission", "id", stored.ID, "email", stored.Email)
	metrics.RecordContactSubmission()

	return &ContactSubmitResult{
		Success: true,
		Message: contactThanks,
		ID:      stored.ID,
	}, nil
}

// List returns contact submissions newest first
func (s *ContactService) List(ctx context.Context, p *ListPayload) (*ContactList, error) {
	skip, limit, err := pageBounds(p, s.api)
	if err != nil {
		return nil, err
	}

	contacts, err := s.store.ListContacts(ctx, skip, limit)
	if err != nil {
		s.log.Error("Error getting contacts", "error", err)
		return nil, apperrors.StoreFailure("Failed to retrieve contacts", err)
	}

	s.log.Debug("Listed contacts", "skip", skip, "limit", limit, "count", len(contacts))
	return &ContactList{Contacts: contacts}, nil
}

// UpdateStatus moves a contact to a new follow-up status. An unknown id is
// not an error; the result reports updated=false.
func (s *ContactService) UpdateStatus(ctx context.Context, p *StatusUpdatePayload) (*StatusUpdateResult, error) {
	status := domain.ContactStatus(p.Status)
	if !status.Valid() {
		return nil, apperrors.Validation("status must be one of new, contacted, closed")
	}
	if p.ID == "" {
		return nil, apperrors.Validation("id is required")
	}

	updated, err := s.store.UpdateContactStatus(ctx, p.ID, status)
	if err != nil {
		s.log.Error("Error updating contact status", "id", p.ID, "error", err)
		return nil, apperrors.StoreFailure("Failed to update contact status", err)
	}

	s.log.Info("Contact status update", "id", p.ID, "status", status, "updated", updated)
	return &StatusUpdateResult{Updated: updated}, nil
}

func (s *ContactService) validateContactForm(p *ContactSubmitPayload) (domain.Contact, error) {
	if p == nil {
		return domain.Contact{}, apperrors.Validation("request body is required")
	}

	name, err := requiredText("name", p.Name, maxNameLength)
	if err != nil {
		return domain.Contact{}, err
	}
	email, err := normalizeEmail(p.Email)
	if err != nil {
		return domain.Contact{}, err
	}
	message, err := requiredText("message", p.Message, maxMessageLength)
	if err != nil {
		return domain.Contact{}, err
	}

	return domain.Contact{
		Name:    name,
		Email:   email,
		Company: optionalText(p.Company),
		Project: optionalText(p.Project),
		Message: message,
		Budget:  optionalText(p.Budget),
	}, nil
}
