package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Amrit-Raj-17/Argn/api/http/presenter"
	"github.com/Amrit-Raj-17/Argn/pkg/analysis"
	"github.com/Amrit-Raj-17/Argn/pkg/resume"
	"github.com/Amrit-Raj-17/Argn/pkg/vacancy"
)

var errFileTooLarge = errors.New("File too large")

type AnalysisHandler struct {
	uc analysis.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewAnalysisHandler(uc analysis.UseCase, maxBytes int64) *AnalysisHandler {
	return &AnalysisHandler{uc: uc, maxBytes: maxBytes}
}

// AnalyzeResponse is the ranked list of postings for one resume.
type AnalyzeResponse struct {
	Success bool              `json:"success"`
	Jobs    []vacancy.Posting `json:"jobs"`
}

// Analyze scores an uploaded resume against the postings for a role and type.
// @Summary     Rank job postings by ATS match
// @Description Accepts a PDF or DOCX resume, normalizes its text and scores it against every posting with TF-IDF cosine similarity. Jobs are sorted by ats_score, highest first.
// @Tags        analysis
// @Accept      multipart/form-data
// @Produce     json
// @Param       resume   formData file   true "Resume (.pdf or .docx)"
// @Param       job_role formData string true "Job role, e.g. Python Developer"
// @Param       job_type formData string true "Employment type, e.g. Full-time"
// @Success     200 {object} AnalyzeResponse
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     413 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /analyze [post]
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	req := analysis.Request{
		Role: c.FormValue("job_role"),
		Type: c.FormValue("job_type"),
	}
	if form, err := c.MultipartForm(); err == nil {
		switch files := form.File["resume"]; {
		case len(files) > 0:
			up, err := h.readUpload(files[0])
			if errors.Is(err, errFileTooLarge) {
				return presenter.Error(c, http.StatusRequestEntityTooLarge, err.Error())
			}
			if err != nil {
				return presenter.Error(c, http.StatusBadRequest, err.Error())
			}
			req.File = up
		case form.Value["resume"] != nil:
			// an empty file input arrives as a plain field
			req.File = &analysis.Upload{}
		}
	}

	jobs, err := h.uc.Analyze(c.UserContext(), req)
	if err != nil {
		var verr *analysis.ValidationError
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Message)
		case errors.Is(err, resume.ErrUnsupportedFormat):
			return presenter.Error(c, http.StatusBadRequest, "Unsupported file format")
		case errors.Is(err, analysis.ErrValidation):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		default:
			return presenter.Error(c, http.StatusInternalServerError, err.Error())
		}
	}
	return presenter.JSON(c, http.StatusOK, AnalyzeResponse{Success: true, Jobs: jobs})
}

func (h *AnalysisHandler) readUpload(fh *multipart.FileHeader) (*analysis.Upload, error) {
	up := &analysis.Upload{Filename: fh.Filename}
	if fh.Filename == "" {
		return up, nil
	}
	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	up.Data, err = readAtMost(file, h.maxBytes)
	if err != nil {
		return nil, err
	}
	return up, nil
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, errFileTooLarge
	}
	return b, nil
}
