package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactStatus tracks how far a contact submission has been followed up
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusContacted ContactStatus = "contacted"
	ContactStatusClosed    ContactStatus = "closed"
)

// Valid reports whether s is a known contact status
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusContacted, ContactStatusClosed:
		return true
	}
	return false
}

// Contact represents a contact form submission
type Contact struct {
	ID        string        `gorm:"primaryKey;size:36" json:"id"`
	Name      string        `gorm:"not null" json:"name"`
	Email     string        `gorm:"not null;index" json:"email"`
	Company   *string       `json:"company"`
	Project   *string       `json:"project"`
	Message   string        `gorm:"type:text;not null" json:"message"`
	Budget    *string       `json:"budget"`
	Status    ContactStatus `gorm:"size:16;not null" json:"status"`
	CreatedAt time.Time     `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time     `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}

// BeforeCreate assigns the id and timestamps; any client-supplied id is replaced.
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	now := tx.NowFunc()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = ContactStatusNew
	}
	return nil
}
