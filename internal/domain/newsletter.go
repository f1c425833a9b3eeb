package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsletterSubscriber is one newsletter address. Rows are never deleted;
// unsubscribing flips Subscribed.
type NewsletterSubscriber struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Email      string    `gorm:"uniqueIndex;size:320;not null" json:"email"`
	Subscribed bool      `gorm:"not null" json:"subscribed"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for NewsletterSubscriber
func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}

// BeforeCreate hook
func (n *NewsletterSubscriber) BeforeCreate(tx *gorm.DB) error {
	now := tx.NowFunc()
	n.ID = uuid.NewString()
	n.CreatedAt = now
	n.UpdatedAt = now
	return nil
}
