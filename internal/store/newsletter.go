package store

import (
	"context"
	"time"

	"gorm.io/gorm/clause"

	"devsites/internal/domain"
)

// SubscribeNewsletter inserts a subscriber, or, when the email is already
// present, sets subscribed=true and refreshes updated_at on the existing row.
// Insert and update are one ON CONFLICT statement, so concurrent signups for
// the same address always end up as a single row.
func (s *Store) SubscribeNewsletter(ctx context.Context, email string) (_ domain.NewsletterSubscriber, err error) {
	defer func(start time.Time) { observe("subscribe_newsletter", start, err) }(time.Now())

	db := s.db.WithContext(ctx)

	candidate := domain.NewsletterSubscriber{Email: email, Subscribed: true}
	err = db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"subscribed": true,
			"updated_at": s.now(),
		}),
	}).Create(&candidate).Error
	if err != nil {
		return domain.NewsletterSubscriber{}, wrapErr("upsert newsletter subscriber", err)
	}

	// candidate.ID is only the stored id when the insert won; read back.
	var stored domain.NewsletterSubscriber
	if err = db.Where("email = ?", email).First(&stored).Error; err != nil {
		return domain.NewsletterSubscriber{}, wrapErr("load newsletter subscriber", err)
	}
	return stored, nil
}

// ListNewsletterSubscribers returns subscribers newest first, optionally
// only those still subscribed.
func (s *Store) ListNewsletterSubscribers(ctx context.Context, activeOnly bool) (_ []domain.NewsletterSubscriber, err error) {
	defer func(start time.Time) { observe("list_newsletter_subscribers", start, err) }(time.Now())

	q := s.db.WithContext(ctx).Scopes(newestFirst)
	if activeOnly {
		q = q.Where("subscribed = ?", true)
	}

	subscribers := []domain.NewsletterSubscriber{}
	if err = q.Find(&subscribers).Error; err != nil {
		return nil, wrapErr("list newsletter subscribers", err)
	}
	return subscribers, nil
}
