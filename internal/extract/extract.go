package extract

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"resume-ats/internal/shared/storage/object"
	"resume-ats/internal/shared/telemetry"
)

// Supported upload extensions.
const (
	ExtPDF  = "pdf"
	ExtDOCX = "docx"
)

var errEmptyDocument = errors.New("empty document")

// Supported reports whether ext (without dot, any case) can be extracted.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ExtPDF, ExtDOCX:
		return true
	default:
		return false
	}
}

// FromStore reads a scratch object and extracts its text. Only storage
// failures are returned; decode failures degrade to partial or empty text.
func FromStore(ctx context.Context, store object.ScratchStore, key string, ext string) (string, error) {
	body, err := store.Open(ctx, key)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s: %w", key, err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s: read: %w", key, err)
	}
	return Text(ctx, raw, ext), nil
}

// Text extracts best-effort plain text from a PDF or DOCX payload. It never
// fails: decoder errors and panics are logged and whatever text was collected
// before the failure is returned.
func Text(ctx context.Context, data []byte, ext string) (text string) {
	ext = strings.ToLower(ext)
	var buf strings.Builder
	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("extract.panic", map[string]any{
				"format": ext,
				"error":  fmt.Sprint(rec),
				"stack":  string(debug.Stack()),
			})
			text = buf.String()
		}
	}()

	if err := ctx.Err(); err != nil {
		return ""
	}

	var err error
	switch ext {
	case ExtPDF:
		err = extractPDF(data, &buf)
	case ExtDOCX:
		err = extractDOCX(data, &buf)
	default:
		err = fmt.Errorf("unsupported format %q", ext)
	}
	if err != nil {
		telemetry.Warn("extract.failed", map[string]any{
			"format":    ext,
			"error":     err.Error(),
			"size":      len(data),
			"collected": buf.Len(),
		})
	}
	return buf.String()
}

// extractPDF writes "Page N:\n<text>\n\n" for every page with text. Pages
// are numbered from 1.
func extractPDF(data []byte, buf *strings.Builder) error {
	if len(data) == 0 {
		return errEmptyDocument
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("open pdf: %w", err)
	}
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return fmt.Errorf("pdf page %d: %w", i, err)
		}
		if pageText == "" {
			continue
		}
		fmt.Fprintf(buf, "Page %d:\n%s\n\n", i, pageText)
	}
	return nil
}

// extractDOCX writes non-blank body paragraphs one per line, then every table
// row on its own line with non-blank cells each followed by a space.
func extractDOCX(data []byte, buf *strings.Builder) error {
	if len(data) == 0 {
		return errEmptyDocument
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("open docx: %w", err)
	}
	defer doc.Close()

	var body documentBody
	if err := xml.Unmarshal([]byte(doc.Editable().GetContent()), &body); err != nil {
		return fmt.Errorf("parse document.xml: %w", err)
	}

	for _, p := range body.Paragraphs {
		if strings.TrimSpace(p.Text) != "" {
			buf.WriteString(p.Text)
			buf.WriteString("\n")
		}
	}
	for _, tbl := range body.Tables {
		for _, row := range tbl.Rows {
			for _, cell := range row.Cells {
				if text := cell.text(); strings.TrimSpace(text) != "" {
					buf.WriteString(text)
					buf.WriteString(" ")
				}
			}
			buf.WriteString("\n")
		}
	}
	return nil
}
