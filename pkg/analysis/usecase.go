package analysis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Amrit-Raj-17/Argn/pkg/logger"
	"github.com/Amrit-Raj-17/Argn/pkg/metrics"
	"github.com/Amrit-Raj-17/Argn/pkg/resume"
	"github.com/Amrit-Raj-17/Argn/pkg/similarity"
	"github.com/Amrit-Raj-17/Argn/pkg/storage/upload"
	"github.com/Amrit-Raj-17/Argn/pkg/vacancy"
)

type service struct {
	extractor  resume.Extractor
	normalizer Normalizer
	scorer     Scorer
	source     vacancy.Source
	store      *upload.Store
}

func NewService(extractor resume.Extractor, normalizer Normalizer, scorer Scorer, source vacancy.Source, store *upload.Store) UseCase {
	return &service{
		extractor:  extractor,
		normalizer: normalizer,
		scorer:     scorer,
		source:     source,
		store:      store,
	}
}

// Analyze validates the request, extracts and normalizes the resume once, scores it
// against every posting from the job source and returns the postings sorted by score,
// highest first. Any failure after validation discards all partial results.
func (s *service) Analyze(ctx context.Context, req Request) ([]vacancy.Posting, error) {
	format, err := validate(req)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("unknown", "invalid").Inc()
		return nil, err
	}

	log := logger.FromContext(ctx).With(
		zap.String("format", string(format)),
		zap.String("role", req.Role),
		zap.String("type", req.Type),
	)
	log.Info("analysis started", zap.Int("size_bytes", len(req.File.Data)))

	start := time.Now()
	jobs, err := s.analyze(ctx, log, format, req)
	metrics.AnalysisDuration.WithLabelValues(string(format)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues(string(format), "error").Inc()
		log.Error("analysis failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrProcessing, err)
	}
	metrics.AnalysesTotal.WithLabelValues(string(format), "ok").Inc()
	log.Info("analysis finished", zap.Int("jobs", len(jobs)), zap.Duration("took", time.Since(start)))
	return jobs, nil
}

// validate checks the request in the order the client contract reports errors.
func validate(req Request) (resume.Format, error) {
	if req.File == nil {
		return "", ErrNoResume
	}
	if req.File.Filename == "" {
		return "", ErrNoFileSelected
	}
	if req.Role == "" || req.Type == "" {
		return "", ErrMissingRoleOrType
	}
	format, err := resume.FormatFromFilename(req.File.Filename)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return format, nil
}

func (s *service) analyze(ctx context.Context, log *zap.Logger, format resume.Format, req Request) ([]vacancy.Posting, error) {
	f, err := s.store.Save(format.Ext(), req.File.Data)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Release(); err != nil {
			log.Warn("temp file not removed", zap.String("path", f.Path), zap.Error(err))
		}
	}()

	data, err := f.ReadAll()
	if err != nil {
		return nil, err
	}
	text, err := s.extractor.Extract(resume.Document{Format: format, Data: data})
	if err != nil {
		return nil, fmt.Errorf("extract resume: %w", err)
	}
	resumeText := s.normalizer.Normalize(text)
	log.Debug("resume normalized", zap.Int("raw_chars", len(text)), zap.Int("normalized_chars", len(resumeText)))

	jobs, err := s.source.FetchJobs(ctx, req.Role, req.Type)
	if err != nil {
		return nil, fmt.Errorf("fetch jobs: %w", err)
	}

	for i := range jobs {
		score, err := s.scorer.ScoreDetailed(resumeText, s.normalizer.Normalize(jobs[i].Description))
		switch {
		case errors.Is(err, similarity.ErrEmptyCorpus):
			log.Debug("no comparable terms", zap.String("title", jobs[i].Title))
		case err != nil:
			return nil, fmt.Errorf("score %q: %w", jobs[i].Title, err)
		}
		jobs[i].Score = score
		metrics.ATSScore.Observe(score)
		log.Debug("job scored", zap.String("title", jobs[i].Title), zap.Float64("ats_score", score))
	}

	sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].Score > jobs[j].Score })
	return jobs, nil
}
