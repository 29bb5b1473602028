package analyses

import (
	"context"
	"fmt"
	"io"
	"runtime/debug"
	"strings"
	"time"

	"resume-ats/internal/ats"
	"resume-ats/internal/extract"
	"resume-ats/internal/shared/metrics"
	"resume-ats/internal/shared/storage/object"
	"resume-ats/internal/shared/telemetry"
	"resume-ats/internal/shared/util"
)

// DefaultMinTextChars is the minimum trimmed length of extracted text.
const DefaultMinTextChars = 50

// Upload is one résumé file received from a client.
type Upload struct {
	RequestID string
	FileName  string
	Body      io.Reader
}

// Result carries the report plus upload details for request logging.
type Result struct {
	Report   ats.Report
	MimeType string
}

// Service runs one upload through validation, scratch storage, extraction and scoring.
type Service struct {
	Store        object.ScratchStore
	Analyzer     *ats.Analyzer
	MinTextChars int
}

// Analyze validates the upload, keeps it in scratch storage for the duration
// of extraction, and scores the extracted text. The scratch copy is deleted
// before scoring regardless of the extraction outcome.
func (s *Service) Analyze(ctx context.Context, up Upload) (Result, error) {
	start := time.Now()
	metrics.IncAnalysisStarted()

	res, err := s.analyze(ctx, up)
	switch {
	case err == nil:
		metrics.IncAnalysisCompleted()
		metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	case IsValidation(err):
		metrics.IncAnalysisRejected()
	default:
		metrics.IncAnalysisFailed()
	}
	return res, err
}

func (s *Service) analyze(ctx context.Context, up Upload) (Result, error) {
	if strings.TrimSpace(up.FileName) == "" {
		return Result{}, ErrEmptyFilename
	}
	ext := util.Extension(up.FileName)
	if !extract.Supported(ext) {
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}

	text, mimeType, err := s.extractText(ctx, up, ext)
	if err != nil {
		return Result{MimeType: mimeType}, err
	}

	minChars := s.MinTextChars
	if minChars <= 0 {
		minChars = DefaultMinTextChars
	}
	if len([]rune(strings.TrimSpace(text))) < minChars {
		return Result{MimeType: mimeType}, ErrInsufficientText
	}

	report, err := s.score(text)
	if err != nil {
		return Result{MimeType: mimeType}, err
	}
	return Result{Report: report, MimeType: mimeType}, nil
}

func (s *Service) extractText(ctx context.Context, up Upload, ext string) (string, string, error) {
	saved, err := s.Store.Save(ctx, up.RequestID, up.FileName, up.Body)
	if err != nil {
		return "", "", fmt.Errorf("%w: save upload: %v", ErrPipeline, err)
	}
	defer func() {
		if err := s.Store.Delete(context.WithoutCancel(ctx), saved.Key); err != nil {
			telemetry.Warn("scratch.delete_failed", map[string]any{
				"request_id": up.RequestID,
				"key":        saved.Key,
				"error":      err.Error(),
			})
		}
	}()

	telemetry.Debug("scratch.saved", map[string]any{
		"request_id": up.RequestID,
		"key":        saved.Key,
		"size_bytes": saved.SizeBytes,
		"mime_type":  saved.MimeType,
	})

	text, err := extract.FromStore(ctx, s.Store, saved.Key, ext)
	if err != nil {
		return "", saved.MimeType, fmt.Errorf("%w: %v", ErrPipeline, err)
	}
	return text, saved.MimeType, nil
}

// score runs the scoring core, converting a panic into ErrPipeline.
func (s *Service) score(text string) (report ats.Report, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("analysis.panic", map[string]any{
				"error": fmt.Sprint(rec),
				"stack": string(debug.Stack()),
			})
			err = fmt.Errorf("%w: %v", ErrPipeline, rec)
		}
	}()
	return s.Analyzer.Analyze(text), nil
}
