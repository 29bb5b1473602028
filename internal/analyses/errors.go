package analyses

import (
	"errors"
	"net/http"
)

var (
	ErrNoFile           = errors.New("no file uploaded")
	ErrEmptyFilename    = errors.New("empty file name")
	ErrUnsupportedType  = errors.New("unsupported file type")
	ErrFileTooLarge     = errors.New("file too large")
	ErrInsufficientText = errors.New("insufficient extracted text")
	ErrPipeline         = errors.New("analysis pipeline failed")
)

type apiError struct {
	status  int
	code    string
	message string
}

// validationErrors maps each validation sentinel to its HTTP rendering.
var validationErrors = []struct {
	err error
	api apiError
}{
	{ErrNoFile, apiError{http.StatusBadRequest, "no_file", "No file uploaded"}},
	{ErrEmptyFilename, apiError{http.StatusBadRequest, "empty_filename", "No file selected"}},
	{ErrUnsupportedType, apiError{http.StatusBadRequest, "unsupported_type", "Please upload PDF or DOCX file"}},
	{ErrFileTooLarge, apiError{http.StatusRequestEntityTooLarge, "file_too_large", "File too large (max 50MB)"}},
	{ErrInsufficientText, apiError{http.StatusBadRequest, "insufficient_text", "Could not extract enough text from file. Please ensure the file is not empty or corrupted."}},
}

// IsValidation reports whether err is a caller-facing validation failure.
func IsValidation(err error) bool {
	_, ok := validationError(err)
	return ok
}

func validationError(err error) (apiError, bool) {
	for _, v := range validationErrors {
		if errors.Is(err, v.err) {
			return v.api, true
		}
	}
	return apiError{}, false
}

func toAPIError(err error) apiError {
	if api, ok := validationError(err); ok {
		return api
	}
	return apiError{http.StatusInternalServerError, "analysis_failed", "Analysis failed: " + err.Error()}
}
