package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devsites/internal/pricing"
)

// InquiryStatus tracks a project inquiry through the sales pipeline
type InquiryStatus string

const (
	InquiryStatusPending   InquiryStatus = "pending"
	InquiryStatusQuoted    InquiryStatus = "quoted"
	InquiryStatusAccepted  InquiryStatus = "accepted"
	InquiryStatusCompleted InquiryStatus = "completed"
)

// ProjectOption is the set of choices that drives pricing
type ProjectOption struct {
	ProjectType     pricing.ProjectType `gorm:"size:32;not null" json:"project_type"`
	IncludeDomain   bool                `gorm:"not null" json:"include_domain"`
	IncludeDatabase bool                `gorm:"not null" json:"include_database"`
}

// Quote prices the option set with the current pricing rules
func (o ProjectOption) Quote() pricing.Money {
	return pricing.CalculateCost(o.ProjectType, o.IncludeDomain, o.IncludeDatabase)
}

// ProjectInquiry represents a request for a project quote.
// EstimatedCost is the quote at submission time and is never recomputed.
type ProjectInquiry struct {
	ID                string `gorm:"primaryKey;size:36" json:"id"`
	Name              string `gorm:"not null" json:"name"`
	Email             string `gorm:"not null;index" json:"email"`
	ProjectOption     `gorm:"embedded"`
	EstimatedCost     pricing.Money `gorm:"column:estimated_cost_cents;not null" json:"estimated_cost"`
	AdditionalDetails *string       `gorm:"type:text" json:"additional_details"`
	Status            InquiryStatus `gorm:"size:16;not null" json:"status"`
	CreatedAt         time.Time     `gorm:"not null;index" json:"created_at"`
	UpdatedAt         time.Time     `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for ProjectInquiry
func (ProjectInquiry) TableName() string {
	return "project_inquiries"
}

// BeforeCreate hook
func (i *ProjectInquiry) BeforeCreate(tx *gorm.DB) error {
	now := tx.NowFunc()
	i.ID = uuid.NewString()
	i.CreatedAt = now
	i.UpdatedAt = now
	if i.Status == "" {
		i.Status = InquiryStatusPending
	}
	return nil
}
