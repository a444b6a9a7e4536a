package analysis

import (
	"context"
	"errors"

	"github.com/Amrit-Raj-17/Argn/pkg/vacancy"
)

var (
	// ErrValidation marks requests rejected before any processing.
	ErrValidation = errors.New("invalid request")
	// ErrProcessing marks failures while extracting, normalizing or scoring.
	ErrProcessing = errors.New("processing failed")
)

// ValidationError is a client-facing validation message. It matches ErrValidation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

var (
	ErrNoResume          = &ValidationError{Message: "No resume file provided"}
	ErrNoFileSelected    = &ValidationError{Message: "No file selected"}
	ErrMissingRoleOrType = &ValidationError{Message: "Job role and type are required"}
)

// Upload is the resume file as received from the client.
type Upload struct {
	Filename string
	Data     []byte
}

// Request is one analysis call. A nil File means no resume part was sent.
type Request struct {
	File *Upload
	Role string
	Type string
}

// UseCase scores a resume against the postings for a role and returns them ranked.
type UseCase interface {
	Analyze(ctx context.Context, req Request) ([]vacancy.Posting, error)
}

// Normalizer reduces free text to the token string the scorer compares.
type Normalizer interface {
	Normalize(text string) string
}

// Scorer compares two normalized texts and returns a percentage in [0, 100].
type Scorer interface {
	ScoreDetailed(a, b string) (float64, error)
}
