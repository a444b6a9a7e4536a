package analysis

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amrit-Raj-17/Argn/pkg/nlp"
	"github.com/Amrit-Raj-17/Argn/pkg/resume"
	"github.com/Amrit-Raj-17/Argn/pkg/resume/resumetest"
	"github.com/Amrit-Raj-17/Argn/pkg/similarity"
	"github.com/Amrit-Raj-17/Argn/pkg/storage/upload"
	"github.com/Amrit-Raj-17/Argn/pkg/vacancy"
)

type fakeExtractor struct {
	text string
	err  error
	seen []resume.Document
}

func (f *fakeExtractor) Extract(doc resume.Document) (string, error) {
	f.seen = append(f.seen, doc)
	return f.text, f.err
}

type fakeSource struct {
	jobs []vacancy.Posting
	err  error
}

func (f *fakeSource) FetchJobs(context.Context, string, string) ([]vacancy.Posting, error) {
	return append([]vacancy.Posting(nil), f.jobs...), f.err
}

// scoreByDescription returns a fixed score keyed by the normalized description.
type scoreByDescription map[string]float64

func (s scoreByDescription) ScoreDetailed(_, b string) (float64, error) {
	if b == "broken" {
		return 0, errors.New("scorer exploded")
	}
	return s[b], nil
}

type identity struct{}

func (identity) Normalize(text string) string { return text }

func newRealService(t *testing.T, source vacancy.Source) (UseCase, string) {
	t.Helper()
	dir := t.TempDir()
	return NewService(resume.NewParser(), nlp.Default(), similarity.NewScorer(), source, upload.NewStore(dir)), dir
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	require.NoError(t, err)
	assert.Empty(t, entries, "temp files left behind")
}

func TestAnalyzeDOCXAgainstStaticSource(t *testing.T) {
	uc, dir := newRealService(t, vacancy.NewStaticSource())
	data := resumetest.DOCX("Experienced Python Developer with machine learning background")

	jobs, err := uc.Analyze(context.Background(), Request{
		File: &Upload{Filename: "resume.docx", Data: data},
		Role: "Python Developer",
		Type: "Full-time",
	})
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	assert.Equal(t, "Senior Python Developer", jobs[0].Title)
	assert.Equal(t, 33.61, jobs[0].Score)
	assert.Equal(t, "Python Developer Lead", jobs[1].Title)
	assert.Equal(t, 22.58, jobs[1].Score)
	assert.Equal(t, "Staff Python Developer", jobs[2].Title)
	assert.Equal(t, 22.58, jobs[2].Score)
	for _, j := range jobs {
		assert.Equal(t, "Full-time", j.Type)
	}
	assertDirEmpty(t, dir)
}

func TestAnalyzeValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantMsg string
	}{
		{"no file", Request{Role: "r", Type: "t"}, "No resume file provided"},
		{"empty filename", Request{File: &Upload{Data: []byte("x")}, Role: "r", Type: "t"}, "No file selected"},
		{"missing role", Request{File: &Upload{Filename: "cv.pdf"}, Type: "t"}, "Job role and type are required"},
		{"missing type", Request{File: &Upload{Filename: "cv.pdf"}, Role: "r"}, "Job role and type are required"},
		{"role checked before format", Request{File: &Upload{Filename: "cv.txt"}}, "Job role and type are required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := &fakeExtractor{}
			dir := t.TempDir()
			uc := NewService(ex, identity{}, scoreByDescription{}, &fakeSource{}, upload.NewStore(dir))

			_, err := uc.Analyze(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrValidation)
			assert.EqualError(t, err, tt.wantMsg)
			assert.Empty(t, ex.seen)
			assertDirEmpty(t, dir)
		})
	}
}

func TestAnalyzeUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	uc := NewService(&fakeExtractor{}, identity{}, scoreByDescription{}, &fakeSource{}, upload.NewStore(dir))

	_, err := uc.Analyze(context.Background(), Request{
		File: &Upload{Filename: "resume.txt", Data: []byte("plain")},
		Role: "r", Type: "t",
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, resume.ErrUnsupportedFormat)
	assertDirEmpty(t, dir)
}

func TestAnalyzeSortsStableDescending(t *testing.T) {
	source := &fakeSource{jobs: []vacancy.Posting{
		{Title: "a", Description: "low"},
		{Title: "b", Description: "high"},
		{Title: "c", Description: "mid"},
		{Title: "d", Description: "high"},
		{Title: "e", Description: "none"},
	}}
	scores := scoreByDescription{"low": 10, "mid": 50, "high": 90}
	uc := NewService(&fakeExtractor{text: "resume"}, identity{}, scores, source, upload.NewStore(t.TempDir()))

	jobs, err := uc.Analyze(context.Background(), Request{File: &Upload{Filename: "cv.pdf"}, Role: "r", Type: "t"})
	require.NoError(t, err)

	var titles []string
	for _, j := range jobs {
		titles = append(titles, j.Title)
	}
	assert.Equal(t, []string{"b", "d", "c", "a", "e"}, titles)
	assert.Equal(t, 0.0, jobs[4].Score)
}

func TestAnalyzeFailuresAreAllOrNothing(t *testing.T) {
	jobs := []vacancy.Posting{{Title: "ok", Description: "fine"}, {Title: "bad", Description: "broken"}}
	tests := []struct {
		name    string
		ex      *fakeExtractor
		source  *fakeSource
		wantErr error
	}{
		{"extractor fails", &fakeExtractor{err: resume.ErrCorruptDocument}, &fakeSource{jobs: jobs[:1]}, resume.ErrCorruptDocument},
		{"source fails", &fakeExtractor{text: "x"}, &fakeSource{err: errors.New("source down")}, nil},
		{"scorer fails", &fakeExtractor{text: "x"}, &fakeSource{jobs: jobs}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			uc := NewService(tt.ex, identity{}, scoreByDescription{"fine": 10}, tt.source, upload.NewStore(dir))

			out, err := uc.Analyze(context.Background(), Request{File: &Upload{Filename: "cv.docx", Data: []byte("doc")}, Role: "r", Type: "t"})
			assert.Nil(t, out)
			assert.ErrorIs(t, err, ErrProcessing)
			assert.NotErrorIs(t, err, ErrValidation)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assertDirEmpty(t, dir)
		})
	}
}

func TestAnalyzeCorruptDocument(t *testing.T) {
	uc, dir := newRealService(t, vacancy.NewStaticSource())
	_, err := uc.Analyze(context.Background(), Request{
		File: &Upload{Filename: "cv.pdf", Data: []byte("not a pdf at all")},
		Role: "Go Developer", Type: "Contract",
	})
	assert.ErrorIs(t, err, ErrProcessing)
	assert.ErrorIs(t, err, resume.ErrCorruptDocument)
	assertDirEmpty(t, dir)
}

func TestAnalyzePassesStoredBytesToExtractor(t *testing.T) {
	ex := &fakeExtractor{text: "x"}
	uc := NewService(ex, identity{}, scoreByDescription{}, &fakeSource{}, upload.NewStore(t.TempDir()))

	_, err := uc.Analyze(context.Background(), Request{File: &Upload{Filename: "CV.PDF", Data: []byte("%PDF")}, Role: "r", Type: "t"})
	require.NoError(t, err)
	require.Len(t, ex.seen, 1)
	assert.Equal(t, resume.FormatPDF, ex.seen[0].Format)
	assert.Equal(t, []byte("%PDF"), ex.seen[0].Data)
}

func TestAnalyzeEmptyResumeScoresZero(t *testing.T) {
	uc, _ := newRealService(t, vacancy.NewStaticSource())
	jobs, err := uc.Analyze(context.Background(), Request{
		File: &Upload{Filename: "blank.docx", Data: resumetest.DOCX("")},
		Role: "Go Developer", Type: "Contract",
	})
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "Senior Go Developer", jobs[0].Title)
	for _, j := range jobs {
		assert.Zero(t, j.Score)
	}
}
