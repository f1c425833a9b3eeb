package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"devsites/internal/domain"
)

// ContactStore is a mock for services.ContactStore.
type ContactStore struct {
	mock.Mock
}

func (m *ContactStore) CreateContact(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	args := m.Called(ctx, c)
	if stored, ok := args.Get(0).(domain.Contact); ok {
		return stored, args.Error(1)
	}
	return domain.Contact{}, args.Error(1)
}

func (m *ContactStore) ListContacts(ctx context.Context, skip, limit int) ([]domain.Contact, error) {
	args := m.Called(ctx, skip, limit)
	if list, ok := args.Get(0).([]domain.Contact); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ContactStore) UpdateContactStatus(ctx context.Context, id string, status domain.ContactStatus) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

// InquiryStore is a mock for services.InquiryStore.
type InquiryStore struct {
	mock.Mock
}

func (m *InquiryStore) CreateProjectInquiry(ctx context.Context, i domain.ProjectInquiry) (domain.ProjectInquiry, error) {
	args := m.Called(ctx, i)
	if stored, ok := args.Get(0).(domain.ProjectInquiry); ok {
		return stored, args.Error(1)
	}
	return domain.ProjectInquiry{}, args.Error(1)
}

func (m *InquiryStore) ListProjectInquiries(ctx context.Context, skip, limit int) ([]domain.ProjectInquiry, error) {
	args := m.Called(ctx, skip, limit)
	if list, ok := args.Get(0).([]domain.ProjectInquiry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// NewsletterStore is a mock for services.NewsletterStore.
type NewsletterStore struct {
	mock.Mock
}

func (m *NewsletterStore) SubscribeNewsletter(ctx context.Context, email string) (domain.NewsletterSubscriber, error) {
	args := m.Called(ctx, email)
	if sub, ok := args.Get(0).(domain.NewsletterSubscriber); ok {
		return sub, args.Error(1)
	}
	return domain.NewsletterSubscriber{}, args.Error(1)
}

func (m *NewsletterStore) ListNewsletterSubscribers(ctx context.Context, activeOnly bool) ([]domain.NewsletterSubscriber, error) {
	args := m.Called(ctx, activeOnly)
	if list, ok := args.Get(0).([]domain.NewsletterSubscriber); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// StatsStore is a mock for services.StatsStore.
type StatsStore struct {
	mock.Mock
}

func (m *StatsStore) CompanyStats(ctx context.Context) domain.Stats {
	args := m.Called(ctx)
	return args.Get(0).(domain.Stats)
}
