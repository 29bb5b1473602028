package analyses

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/shared/metrics"
	"resume-ats/internal/shared/server/middleware"
	"resume-ats/internal/shared/server/respond"
)

// FormField is the multipart field carrying the résumé.
const FormField = "resume"

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches the public routes. Preflight OPTIONS requests are
// answered by the CORS middleware.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/analyze", h.analyze)
	r.GET("/check_ats", h.checkATS)
	r.GET("/health", h.health)
	for _, path := range []string{"/analyze", "/check_ats", "/health"} {
		r.OPTIONS(path, func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}
}

func (h *Handler) analyze(c *gin.Context) {
	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}

	fileHeader, err := c.FormFile(FormField)
	if err != nil {
		metrics.IncAnalysisRejected()
		fail(c, uploadError(c, err))
		return
	}
	c.Set(middleware.FileNameKey, fileHeader.Filename)

	file, err := fileHeader.Open()
	if err != nil {
		metrics.IncAnalysisFailed()
		fail(c, fmt.Errorf("%w: open upload: %v", ErrPipeline, err))
		return
	}
	defer file.Close()

	res, err := h.Svc.Analyze(c.Request.Context(), Upload{
		RequestID: middleware.RequestIDFromContext(c),
		FileName:  fileHeader.Filename,
		Body:      file,
	})
	if res.MimeType != "" {
		c.Set(middleware.MimeTypeKey, res.MimeType)
	}
	if err != nil {
		fail(c, err)
		return
	}

	respond.OK(c, res.Report)
}

func (h *Handler) checkATS(c *gin.Context) {
	respond.OK(c, atsTips)
}

// HealthResponse is the body served by GET /health.
type HealthResponse struct {
	Status           string `json:"status"`
	Time             string `json:"time"`
	Message          string `json:"message"`
	ActiveGoroutines int    `json:"active_goroutines"`
}

func (h *Handler) health(c *gin.Context) {
	respond.OK(c, HealthResponse{
		Status:           "awake",
		Time:             time.Now().Format(time.RFC3339Nano),
		Message:          "Server is ready to accept uploads",
		ActiveGoroutines: runtime.NumGoroutine(),
	})
}

// uploadError classifies a multipart parsing failure. Go treats a part with an
// empty filename as a plain form value, which is how "no file selected"
// arrives.
func uploadError(c *gin.Context, err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge), strings.Contains(err.Error(), "request body too large"):
		return ErrFileTooLarge
	case errors.Is(err, http.ErrMissingFile):
		if form := c.Request.MultipartForm; form != nil {
			if _, ok := form.Value[FormField]; ok {
				return ErrEmptyFilename
			}
		}
		return ErrNoFile
	default:
		return fmt.Errorf("%w: %v", ErrNoFile, err)
	}
}

func fail(c *gin.Context, err error) {
	api := toAPIError(err)
	respond.Error(c, api.status, api.code, api.message)
}
