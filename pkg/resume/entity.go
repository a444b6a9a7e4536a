package resume

import (
	"errors"
	"path/filepath"
	"strings"
)

// Format is the declared type of an uploaded resume document.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

var (
	// ErrUnsupportedFormat is returned for anything other than pdf and docx.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrCorruptDocument is returned when the document bytes cannot be parsed.
	ErrCorruptDocument = errors.New("corrupt document")
)

// Document is an uploaded resume: raw bytes plus the declared format.
// It lives only for the duration of one request.
type Document struct {
	Format Format
	Data   []byte
}

// FormatFromFilename derives the document format from the file extension.
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}
