package analyses

import (
	"bytes"
	"encoding/json"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/ats"
	"resume-ats/internal/extract/extracttest"
	"resume-ats/internal/shared/server/middleware"
	localstore "resume-ats/internal/shared/storage/object/local"
	"resume-ats/internal/shared/telemetry"
	"resume-ats/internal/taxonomy"
)

var resumeParagraphs = []string{
	"Jane Doe",
	"jane.doe@example.com | +91 98765 43210 | linkedin.com/in/janedoe",
	"Backend engineer skilled in Python, Docker and AWS with strong communication.",
	"Developed payment APIs and led a team of five engineers.",
	"Achievements",
	"- Won 1st prize in Smart India Hackathon 2023",
}

func setupRouter(t *testing.T, maxUpload int64) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	telemetry.SetOutput(io.Discard)
	t.Cleanup(func() { telemetry.SetOutput(os.Stdout) })

	scratch := t.TempDir()
	svc := &Service{
		Store:        localstore.New(scratch),
		Analyzer:     ats.NewAnalyzer(taxonomy.Default(), ats.India()),
		MinTextChars: DefaultMinTextChars,
	}
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Recovery(), middleware.CORS([]string{"*"}))
	NewHandler(svc, maxUpload).RegisterRoutes(router)
	return router, scratch
}

func uploadRequest(t *testing.T, field, fileName string, data []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
	h.Set("Content-Type", "application/octet-stream")
	part, err := writer.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, resp.Body.String())
	}
	return body
}

func assertScratchEmpty(t *testing.T, dir string) {
	t.Helper()
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			t.Fatalf("expected scratch to be empty, found %s", path)
		}
		return nil
	})
}

func TestAnalyzeValidDOCX(t *testing.T) {
	router, scratch := setupRouter(t, 50<<20)

	req := uploadRequest(t, FormField, "resume.docx", extracttest.DOCX(resumeParagraphs, [][]string{{"Skills", "Kubernetes"}}))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, key := range []string{
		"final_score", "keyword_score", "contact_score", "length_score", "achievement_score",
		"contact_info", "achievements", "rating", "rating_description", "recommendations", "sample_keywords",
	} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing response key %q", key)
		}
	}
	contact := payload["contact_info"].(map[string]any)
	if emails := contact["email"].([]any); len(emails) != 1 || emails[0] != "jane.doe@example.com" {
		t.Fatalf("unexpected emails: %v", contact["email"])
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS header, got %q", got)
	}
	assertScratchEmpty(t, scratch)
}

func TestAnalyzeDottedFileNames(t *testing.T) {
	for _, name := range []string{"John..Doe.docx", "cv_v2..final.docx"} {
		t.Run(name, func(t *testing.T) {
			router, scratch := setupRouter(t, 50<<20)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, uploadRequest(t, FormField, name, extracttest.DOCX(resumeParagraphs, nil)))

			if resp.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
			}
			assertScratchEmpty(t, scratch)
		})
	}
}

func TestAnalyzeValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		fileName string
		data     []byte
		status   int
		message  string
	}{
		{
			name: "wrong extension", field: FormField, fileName: "resume.txt",
			data: []byte(strings.Repeat("plain text resume ", 20)), status: http.StatusBadRequest,
			message: "Please upload PDF or DOCX file",
		},
		{
			name: "corrupted pdf", field: FormField, fileName: "resume.pdf",
			data: []byte("%PDF-1.4\nthis is not really a pdf"), status: http.StatusBadRequest,
			message: "Could not extract enough text from file. Please ensure the file is not empty or corrupted.",
		},
		{
			name: "short docx", field: FormField, fileName: "resume.DOCX",
			data: extracttest.DOCX([]string{"Too short"}, nil), status: http.StatusBadRequest,
			message: "Could not extract enough text from file. Please ensure the file is not empty or corrupted.",
		},
		{
			name: "wrong field", field: "file", fileName: "resume.pdf",
			data: []byte("%PDF-1.4"), status: http.StatusBadRequest,
			message: "No file uploaded",
		},
		{
			name: "empty filename", field: FormField, fileName: "",
			data: []byte("whatever"), status: http.StatusBadRequest,
			message: "No file selected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, scratch := setupRouter(t, 50<<20)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, uploadRequest(t, tt.field, tt.fileName, tt.data))

			if resp.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, resp.Code, resp.Body.String())
			}
			if got := decodeError(t, resp)["error"]; got != tt.message {
				t.Fatalf("unexpected error message %q", got)
			}
			assertScratchEmpty(t, scratch)
		})
	}
}

func TestAnalyzeNotMultipart(t *testing.T) {
	router, _ := setupRouter(t, 50<<20)
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"resume":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if got := decodeError(t, resp); got["error"] != "No file uploaded" || got["code"] != "no_file" {
		t.Fatalf("unexpected body %v", got)
	}
}

func TestAnalyzeTooLarge(t *testing.T) {
	router, _ := setupRouter(t, 1024)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, FormField, "resume.pdf", bytes.Repeat([]byte("a"), 8192)))

	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d: %s", resp.Code, resp.Body.String())
	}
	if got := decodeError(t, resp)["code"]; got != "file_too_large" {
		t.Fatalf("unexpected code %q", got)
	}
}

func TestAnalyzePipelineFailureIs500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	telemetry.SetOutput(io.Discard)
	defer telemetry.SetOutput(os.Stdout)

	svc := &Service{Store: localstore.New(t.TempDir())}
	router := gin.New()
	NewHandler(svc, 0).RegisterRoutes(router)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, FormField, "resume.docx", extracttest.DOCX(resumeParagraphs, nil)))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", resp.Code, resp.Body.String())
	}
	if got := decodeError(t, resp)["error"]; !strings.HasPrefix(got, "Analysis failed: ") {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestHealth(t *testing.T) {
	router, _ := setupRouter(t, 0)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body HealthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "awake" || body.Message == "" || body.Time == "" || body.ActiveGoroutines < 1 {
		t.Fatalf("unexpected health body %+v", body)
	}
}

func TestCheckATS(t *testing.T) {
	router, _ := setupRouter(t, 0)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/check_ats", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body TipsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Tips) != 3 || body.Tips[2].Title != "Amazon Specific Tips" {
		t.Fatalf("unexpected tips %+v", body.Tips)
	}
}

func TestPreflight(t *testing.T) {
	router, _ := setupRouter(t, 0)
	for _, path := range []string{"/analyze", "/check_ats", "/health"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "https://mobile.example")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusNoContent {
			t.Fatalf("%s: expected 204, got %d", path, resp.Code)
		}
		if resp.Header().Get("Access-Control-Max-Age") != "3600" {
			t.Fatalf("%s: expected Max-Age 3600", path)
		}
	}
}
