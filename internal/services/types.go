package services

import (
	"devsites/internal/domain"
	"devsites/internal/pricing"
)

// ContactSubmitPayload is the contact form body
type ContactSubmitPayload struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company,omitempty"`
	Project *string `json:"project,omitempty"`
	Message string  `json:"message"`
	Budget  *string `json:"budget,omitempty"`
}

// ContactSubmitResult acknowledges a stored contact submission
type ContactSubmitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// InquirySubmitPayload is the project inquiry body
type InquirySubmitPayload struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	ProjectType       string  `json:"project_type"`
	IncludeDomain     bool    `json:"include_domain"`
	IncludeDatabase   bool    `json:"include_database"`
	AdditionalDetails *string `json:"additional_details,omitempty"`
}

// InquirySubmitResult carries the quote stored with the inquiry
type InquirySubmitResult struct {
	Success       bool          `json:"success"`
	EstimatedCost pricing.Money `json:"estimated_cost"`
	Message       string        `json:"message"`
	ID            string        `json:"id"`
}

// SummaryPayload selects the option set to price
type SummaryPayload struct {
	ProjectType     string
	IncludeDomain   bool
	IncludeDatabase bool
}

// NewsletterPayload is the newsletter signup body
type NewsletterPayload struct {
	Email string `json:"email"`
}

// NewsletterResult is returned for every well-formed signup
type NewsletterResult struct {
	Success    bool   `json:"success"`
	Subscribed bool   `json:"subscribed"`
	Message    string `json:"message"`
}

// ListPayload pages through an admin listing. Nil fields take defaults.
type ListPayload struct {
	Skip  *int
	Limit *int
}

// ContactList is the admin contacts listing
type ContactList struct {
	Contacts []domain.Contact `json:"contacts"`
}

// InquiryList is the admin inquiries listing
type InquiryList struct {
	Inquiries []domain.ProjectInquiry `json:"inquiries"`
}

// StatusUpdatePayload changes the status of one contact
type StatusUpdatePayload struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

// StatusUpdateResult reports whether a contact was modified
type StatusUpdateResult struct {
	Updated bool `json:"updated"`
}

// SubscriberListPayload filters the admin newsletter listing.
// ActiveOnly defaults to true.
type SubscriberListPayload struct {
	ActiveOnly *bool
}

// SubscriberList is the admin newsletter listing
type SubscriberList struct {
	Subscribers []domain.NewsletterSubscriber `json:"subscribers"`
}

// HealthResult is the liveness probe body
type HealthResult struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// RootResult is the API banner
type RootResult struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
