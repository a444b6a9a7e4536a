package vacancy

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyCatalog is returned when a catalog file declares no jobs.
var ErrEmptyCatalog = errors.New("job catalog has no jobs")

type catalogFile struct {
	Jobs []Posting `yaml:"jobs"`
}

// CatalogSource serves postings from a local YAML catalog. Title, company,
// location, type and description may use {role} and {type} placeholders; an
// empty type falls back to the requested one.
type CatalogSource struct {
	jobs []Posting
}

// NewCatalogSource reads and validates the catalog at path.
func NewCatalogSource(path string) (*CatalogSource, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("job catalog path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog builds a CatalogSource from YAML bytes.
func ParseCatalog(data []byte) (*CatalogSource, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse job catalog: %w", err)
	}
	if len(f.Jobs) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, j := range f.Jobs {
		if strings.TrimSpace(j.Title) == "" {
			return nil, fmt.Errorf("job catalog entry %d: title is required", i)
		}
	}
	return &CatalogSource{jobs: f.Jobs}, nil
}

func (s *CatalogSource) FetchJobs(_ context.Context, role, jobType string) ([]Posting, error) {
	r := strings.NewReplacer("{role}", role, "{type}", jobType)
	out := make([]Posting, 0, len(s.jobs))
	for _, j := range s.jobs {
		p := Posting{
			Title:       r.Replace(j.Title),
			Company:     r.Replace(j.Company),
			Location:    r.Replace(j.Location),
			Type:        r.Replace(j.Type),
			Description: r.Replace(j.Description),
		}
		if p.Type == "" {
			p.Type = jobType
		}
		out = append(out, p)
	}
	return out, nil
}
