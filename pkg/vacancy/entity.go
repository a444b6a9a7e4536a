package vacancy

import "context"

// Posting describes a job posting a resume is scored against.
// Score is attached once by the analysis use case.
type Posting struct {
	Title       string  `json:"title" yaml:"title"`
	Company     string  `json:"company" yaml:"company"`
	Location    string  `json:"location" yaml:"location"`
	Type        string  `json:"type" yaml:"type"`
	Description string  `json:"description" yaml:"description"`
	Score       float64 `json:"ats_score" yaml:"-"`
}

// Source supplies candidate postings for a role and employment type.
// Implementations must return postings without a score and in a stable order.
type Source interface {
	FetchJobs(ctx context.Context, role, jobType string) ([]Posting, error)
}
