package store

import (
	"context"
	"time"

	"devsites/internal/domain"
)

// CreateProjectInquiry persists an inquiry. EstimatedCost must already be
// set by the caller; the store stores it as given.
func (s *Store) CreateProjectInquiry(ctx context.Context, i domain.ProjectInquiry) (_ domain.ProjectInquiry, err error) {
	defer func(start time.Time) { observe("create_project_inquiry", start, err) }(time.Now())

	i.Status = ""
	if err = s.db.WithContext(ctx).Create(&i).Error; err != nil {
		return domain.ProjectInquiry{}, wrapErr("create project inquiry", err)
	}
	return i, nil
}

// ListProjectInquiries returns inquiries newest first.
func (s *Store) ListProjectInquiries(ctx context.Context, skip, limit int) (_ []domain.ProjectInquiry, err error) {
	defer func(start time.Time) { observe("list_project_inquiries", start, err) }(time.Now())

	inquiries := []domain.ProjectInquiry{}
	err = s.db.WithContext(ctx).
		Scopes(newestFirst, page(skip, limit)).
		Find(&inquiries).Error
	if err != nil {
		return nil, wrapErr("list project inquiries", err)
	}
	return inquiries, nil
}
