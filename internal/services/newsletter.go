package services

import (
	"context"

	"devsites/internal/logger"
	"devsites/internal/metrics"
	apperrors "devsites/pkg/errors"
)

const (
	newsletterSubscribed = "Successfully subscribed to our newsletter!"
	newsletterAbsorbed   = "Thank you for your interest! We'll keep you updated."
)

// NewsletterService implements newsletter signup and its admin listing
type NewsletterService struct {
	store NewsletterStore
	log   *logger.Logger
}

// NewNewsletterService creates a new newsletter service
func NewNewsletterService(store NewsletterStore, log *logger.Logger) *NewsletterService {
	if log == nil {
		log = logger.Nop()
	}
	return &NewsletterService{store: store, log: log.Component("newsletter")}
}

// Subscribe signs an address up. Only a malformed address is reported to
// the caller; store failures are logged and answered with a success body.
func (s *NewsletterService) Subscribe(ctx context.Context, p *NewsletterPayload) (*NewsletterResult, error) {
	if p == nil {
		return nil, apperrors.Validation("request body is required")
	}
	email, err := normalizeEmail(p.Email)
	if err != nil {
		return nil, err
	}

	result := &NewsletterResult{Success: true, Subscribed: true, Message: newsletterSubscribed}

	sub, err := s.store.SubscribeNewsletter(ctx, email)
	if err != nil {
		s.log.Error("Error processing newsletter signup", "email", email, "error", err)
		metrics.RecordNewsletterSignup(false)
		result.Message = newsletterAbsorbed
		return result, nil
	}

	s.log.Info("New newsletter subscription", "id", sub.ID, "email", sub.Email)
	metrics.RecordNewsletterSignup(true)
	return result, nil
}

// List returns subscribers newest first
func (s *NewsletterService) List(ctx context.Context, p *SubscriberListPayload) (*SubscriberList, error) {
	activeOnly := true
	if p != nil && p.ActiveOnly != nil {
		activeOnly = *p.ActiveOnly
	}

	subs, err := s.store.ListNewsletterSubscribers(ctx, activeOnly)
	if err != nil {
		s.log.Error("Error getting newsletter subscribers", "error", err)
		return nil, apperrors.StoreFailure("Failed to retrieve newsletter subscribers", err)
	}
	return &SubscriberList{Subscribers: subs}, nil
}
