package services

import (
	"context"

	"devsites/internal/config"
	"devsites/internal/domain"
	"devsites/internal/logger"
	"devsites/internal/metrics"
	"devsites/internal/pricing"
	apperrors "devsites/pkg/errors"
)

const inquiryThanks = "We'll prepare a detailed proposal and send it to you within 24 hours."

// InquiryService implements project inquiries and the public quote endpoints
type InquiryService struct {
	store InquiryStore
	api   config.APIConfig
	log   *logger.Logger
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(store InquiryStore, api config.APIConfig, log *logger.Logger) *InquiryService {
	if log == nil {
		log = logger.Nop()
	}
	return &InquiryService{store: store, api: api, log: log.Component("inquiry")}
}

// option validates the project type and builds the option set. Pricing is
// never reached with an unrecognized type.
func option(projectType string, domainSetup, databaseSetup bool) (domain.ProjectOption, error) {
	if !pricing.IsValidProjectType(projectType) {
		return domain.ProjectOption{}, invalidProjectType()
	}
	return domain.ProjectOption{
		ProjectType:     pricing.ProjectType(projectType),
		IncludeDomain:   domainSetup,
		IncludeDatabase: databaseSetup,
	}, nil
}

// Submit stores an inquiry together with its quote at submission time
func (s *InquiryService) Submit(ctx context.Context, p *InquirySubmitPayload) (*InquirySubmitResult, error) {
	if p == nil {
		return nil, apperrors.Validation("request body is required")
	}
	name, err := requiredText("name", p.Name, maxNameLength)
	if err != nil {
		return nil, err
	}
	email, err := normalizeEmail(p.Email)
	if err != nil {
		return nil, err
	}
	opt, err := option(p.ProjectType, p.IncludeDomain, p.IncludeDatabase)
	if err != nil {
		s.log.Info("Submit rejected", "project_type", p.ProjectType)
		return nil, err
	}

	inquiry := domain.ProjectInquiry{
		Name:              name,
		Email:             email,
		ProjectOption:     opt,
		EstimatedCost:     opt.Quote(),
		AdditionalDetails: optionalText(p.AdditionalDetails),
	}

	stored, err := s.store.CreateProjectInquiry(ctx, inquiry)
	if err != nil {
		s.log.Error("Error processing project inquiry", "email", email, "error", err)
		return nil, apperrors.StoreFailure("Failed to submit project inquiry", err)
	}

	s.log.Info("New project inquiry", "id", stored.ID, "email", email, "estimated_cost", stored.EstimatedCost.String())
	metrics.RecordProjectInquiry(string(opt.ProjectType), stored.EstimatedCost.Cents())

	return &InquirySubmitResult{
		Success:       true,
		EstimatedCost: stored.EstimatedCost,
		Message:       inquiryThanks,
		ID:            stored.ID,
	}, nil
}

// List returns project inquiries newest first
func (s *InquiryService) List(ctx context.Context, p *ListPayload) (*InquiryList, error) {
	skip, limit, err := pageBounds(p, s.api)
	if err != nil {
		return nil, err
	}

	inquiries, err := s.store.ListProjectInquiries(ctx, skip, limit)
	if err != nil {
		s.log.Error("Error getting inquiries", "error", err)
		return nil, apperrors.StoreFailure("Failed to retrieve inquiries", err)
	}
	return &InquiryList{Inquiries: inquiries}, nil
}

// Summary prices an option set without storing anything
func (s *InquiryService) Summary(_ context.Context, p *SummaryPayload) (*pricing.Summary, error) {
	if p == nil {
		return nil, apperrors.Validation("request body is required")
	}
	opt, err := option(p.ProjectType, p.IncludeDomain, p.IncludeDatabase)
	if err != nil {
		return nil, err
	}

	summary := pricing.GenerateSummary(opt.ProjectType, opt.IncludeDomain, opt.IncludeDatabase)
	metrics.RecordProjectSummary(string(opt.ProjectType))
	return &summary, nil
}

// Catalog returns the published prices
func (s *InquiryService) Catalog(_ context.Context) *pricing.Catalog {
	c := pricing.PriceCatalog()
	return &c
}
