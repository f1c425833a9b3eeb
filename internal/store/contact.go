package store

import (
	"context"
	"time"

	"devsites/internal/domain"
)

// CreateContact persists a contact submission. The store assigns id,
// timestamps and the initial "new" status.
func (s *Store) CreateContact(ctx context.Context, c domain.Contact) (_ domain.Contact, err error) {
	defer func(start time.Time) { observe("create_contact", start, err) }(time.Now())

	c.Status = ""
	if err = s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return domain.Contact{}, wrapErr("create contact", err)
	}
	return c, nil
}

// ListContacts returns contacts newest first.
func (s *Store) ListContacts(ctx context.Context, skip, limit int) (_ []domain.Contact, err error) {
	defer func(start time.Time) { observe("list_contacts", start, err) }(time.Now())

	contacts := []domain.Contact{}
	err = s.db.WithContext(ctx).
		Scopes(newestFirst, page(skip, limit)).
		Find(&contacts).Error
	if err != nil {
		return nil, wrapErr("list contacts", err)
	}
	return contacts, nil
}

// UpdateContactStatus sets the status of one contact and refreshes
// updated_at. It reports false when no contact has that id.
func (s *Store) UpdateContactStatus(ctx context.Context, id string, status domain.ContactStatus) (_ bool, err error) {
	defer func(start time.Time) { observe("update_contact_status", start, err) }(time.Now())

	res := s.db.WithContext(ctx).
		Model(&domain.Contact{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": s.now(),
		})
	if err = res.Error; err != nil {
		return false, wrapErr("update contact status", err)
	}
	return res.RowsAffected > 0, nil
}
