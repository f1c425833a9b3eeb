package services

import (
	"context"

	"devsites/internal/domain"
)

// ContactStore persists contact submissions
type ContactStore interface {
	CreateContact(ctx context.Context, c domain.Contact) (domain.Contact, error)
	ListContacts(ctx context.Context, skip, limit int) ([]domain.Contact, error)
	UpdateContactStatus(ctx context.Context, id string, status domain.ContactStatus) (bool, error)
}

// InquiryStore persists project inquiries
type InquiryStore interface {
	CreateProjectInquiry(ctx context.Context, i domain.ProjectInquiry) (domain.ProjectInquiry, error)
	ListProjectInquiries(ctx context.Context, skip, limit int) ([]domain.ProjectInquiry, error)
}

// NewsletterStore persists newsletter subscribers
type NewsletterStore interface {
	SubscribeNewsletter(ctx context.Context, email string) (domain.NewsletterSubscriber, error)
	ListNewsletterSubscribers(ctx context.Context, activeOnly bool) ([]domain.NewsletterSubscriber, error)
}

// StatsStore reads the aggregate counts behind the stats widget
type StatsStore interface {
	CompanyStats(ctx context.Context) domain.Stats
}
