package vacancy

import (
	"context"
	"fmt"
	"strings"
)

const (
	SourceStatic  = "static"
	SourceCatalog = "catalog"
)

// NewSource picks the Source implementation by name. catalogPath is used by the
// catalog source only.
func NewSource(kind, catalogPath string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", SourceStatic:
		return NewStaticSource(), nil
	case SourceCatalog:
		return NewCatalogSource(catalogPath)
	default:
		return nil, fmt.Errorf("unknown job source %q", kind)
	}
}

// StaticSource is a stand-in for a job board: it returns three fixed postings
// templated from the requested role and type. A networked board client would
// implement Source the same way.
type StaticSource struct{}

func NewStaticSource() *StaticSource { return &StaticSource{} }

func (s *StaticSource) FetchJobs(_ context.Context, role, jobType string) ([]Posting, error) {
	return []Posting{
		{
			Title:       "Senior " + role,
			Company:     "Tech Corp",
			Location:    "New York, NY",
			Type:        jobType,
			Description: fmt.Sprintf("We are looking for an experienced %s to join our team...", role),
		},
		{
			Title:       role + " Lead",
			Company:     "Innovation Labs",
			Location:    "San Francisco, CA",
			Type:        jobType,
			Description: fmt.Sprintf("Exciting opportunity for a %s professional...", role),
		},
		{
			Title:       "Staff " + role,
			Company:     "Future Systems",
			Location:    "Austin, TX",
			Type:        jobType,
			Description: fmt.Sprintf("Join our growing team as a %s...", role),
		},
	}, nil
}
