package domain

const (
	// projectsCompletedBase is added to the inquiry count for display
	projectsCompletedBase = 85
	clientSatisfaction    = 100
	averageTurnaroundDays = 14
	defaultProjectsDone   = 100
)

// Stats is the public company stats widget payload
type Stats struct {
	ProjectsCompleted     int64 `json:"projects_completed"`
	ClientSatisfaction    int   `json:"client_satisfaction"`
	AverageTurnaroundDays int   `json:"average_turnaround"`
	TotalContacts         int64 `json:"total_contacts"`
	TotalInquiries        int64 `json:"total_inquiries"`
	NewsletterSubscribers int64 `json:"newsletter_subscribers"`
}

// NewStats derives the widget payload from record counts
func NewStats(contacts, inquiries, activeSubscribers int64) Stats {
	return Stats{
		ProjectsCompleted:     inquiries + projectsCompletedBase,
		ClientSatisfaction:    clientSatisfaction,
		AverageTurnaroundDays: averageTurnaroundDays,
		TotalContacts:         contacts,
		TotalInquiries:        inquiries,
		NewsletterSubscribers: activeSubscribers,
	}
}

// DefaultStats is served when the counts cannot be read
func DefaultStats() Stats {
	return Stats{
		ProjectsCompleted:     defaultProjectsDone,
		ClientSatisfaction:    clientSatisfaction,
		AverageTurnaroundDays: averageTurnaroundDays,
	}
}
