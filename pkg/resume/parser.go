package resume

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// Extractor pulls the plain text out of a resume document.
type Extractor interface {
	Extract(doc Document) (string, error)
}

// Parser is the Extractor for pdf and docx documents.
type Parser struct{}

// NewParser returns the default pdf/docx extractor.
func NewParser() *Parser { return &Parser{} }

// Extract returns the text content of doc in source order.
func (p *Parser) Extract(doc Document) (string, error) {
	switch doc.Format {
	case FormatPDF:
		return extractTextFromPDF(doc.Data)
	case FormatDOCX:
		return extractTextFromDocx(doc.Data)
	default:
		return "", ErrUnsupportedFormat
	}
}

// ParseResumeText extracts plain text from supported resume formats.
// Supports: .pdf and .docx
func ParseResumeText(filename string, data []byte) (string, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return "", err
	}
	return NewParser().Extract(Document{Format: format, Data: data})
}

// extractTextFromPDF concatenates page texts in page order with nothing in between.
func extractTextFromPDF(data []byte) (text string, err error) {
	// the pdf reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: pdf: %v", ErrCorruptDocument, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %w", ErrCorruptDocument, err)
	}
	var buf strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		s, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: pdf page %d: %w", ErrCorruptDocument, i, err)
		}
		// Every text object opens with a newline; pages are joined without one.
		buf.WriteString(strings.TrimPrefix(s, "\n"))
	}
	return buf.String(), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: docx: %w", ErrCorruptDocument, err)
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		docXML, err = readZipFile(f)
		if err != nil {
			return "", fmt.Errorf("%w: docx: %w", ErrCorruptDocument, err)
		}
		break
	}
	if docXML == nil {
		return "", fmt.Errorf("%w: docx: no word/document.xml", ErrCorruptDocument)
	}
	text, err := bodyParagraphs(docXML)
	if err != nil {
		return "", fmt.Errorf("%w: docx: %w", ErrCorruptDocument, err)
	}
	return text, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// bodyParagraphs walks the top-level w:p elements of w:body and emits each
// paragraph's run text followed by a newline. Paragraphs nested in tables,
// text boxes or content controls are not body paragraphs.
func bodyParagraphs(docXML []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(docXML))
	var (
		out   strings.Builder
		para  strings.Builder
		stack []string
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			if !isRunChild(stack) {
				continue
			}
			switch t.Name.Local {
			case "tab", "ptab":
				para.WriteByte('\t')
			case "cr":
				para.WriteByte('\n')
			case "br":
				if breakType(t) == "" || breakType(t) == "textWrapping" {
					para.WriteByte('\n')
				}
			case "noBreakHyphen":
				para.WriteByte('-')
			}
		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			if isBodyParagraph(stack) {
				out.WriteString(para.String())
				out.WriteByte('\n')
				para.Reset()
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 && stack[len(stack)-1] == "t" && isRunChild(stack) {
				para.Write(t)
			}
		}
	}
	return out.String(), nil
}

func isBodyParagraph(stack []string) bool {
	return len(stack) == 3 && stack[0] == "document" && stack[1] == "body" && stack[2] == "p"
}

// isRunChild reports whether the innermost element is a direct child of a run
// that belongs to a body paragraph, either directly or through a hyperlink.
func isRunChild(stack []string) bool {
	if len(stack) < 5 || !isBodyParagraph(stack[:3]) {
		return false
	}
	rest := stack[3:]
	switch len(rest) {
	case 2:
		return rest[0] == "r"
	case 3:
		return rest[0] == "hyperlink" && rest[1] == "r"
	}
	return false
}

func breakType(el xml.StartElement) string {
	for _, a := range el.Attr {
		if a.Name.Local == "type" {
			return a.Value
		}
	}
	return ""
}
