package bootstrap_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/bootstrap"
	"resume-ats/internal/extract/extracttest"
	"resume-ats/internal/shared/config"
	"resume-ats/internal/shared/telemetry"
)

func baseConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"*"},
		MaxUploadBytes:  50 << 20,
		MinTextChars:    50,
		ScratchStore:    "local",
		ScratchDir:      t.TempDir(),
		TaxonomySource:  "builtin",
		PhoneRegion:     "in",
	}
}

func TestBuildServesAnalyze(t *testing.T) {
	gin.SetMode(gin.TestMode)
	telemetry.SetOutput(io.Discard)
	defer telemetry.SetOutput(os.Stdout)

	app, err := bootstrap.Build(baseConfig(t))
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("resume", "cv.docx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	doc := extracttest.DOCX([]string{
		"John Smith | john@example.com | (415) 555-0134",
		"Software engineer: Java, SQL, Kubernetes, teamwork and leadership.",
	}, nil)
	if _, err := fileWriter.Write(doc); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var report struct {
		FinalScore float64 `json:"final_score"`
		Rating     string  `json:"rating"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Rating == "" || report.FinalScore <= 0 {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestBuildWithTaxonomyFileAndNANP(t *testing.T) {
	telemetry.SetOutput(io.Discard)
	defer telemetry.SetOutput(os.Stdout)

	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	yaml := []byte(`technical_skills: [go, rust]
soft_skills: [teamwork]
action_verbs: [built]
education_keywords: [degree]
certifications: [cka]
`)
	if err := os.WriteFile(path, yaml, 0o600); err != nil {
		t.Fatalf("write taxonomy: %v", err)
	}

	cfg := baseConfig(t)
	cfg.TaxonomySource = "file"
	cfg.TaxonomyFile = path
	cfg.PhoneRegion = "nanp"

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	if app.Taxonomy.Total() != 6 {
		t.Fatalf("expected 6 phrases, got %d", app.Taxonomy.Total())
	}
	if app.Phones.Region() != "nanp" {
		t.Fatalf("expected nanp phones, got %s", app.Phones.Region())
	}
}

func TestBuildRejectsBadInputs(t *testing.T) {
	telemetry.SetOutput(io.Discard)
	defer telemetry.SetOutput(os.Stdout)

	cfg := baseConfig(t)
	cfg.TaxonomySource = "file"
	cfg.TaxonomyFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := bootstrap.Build(cfg); err == nil {
		t.Fatalf("expected missing taxonomy file to fail")
	}

	cfg = baseConfig(t)
	cfg.PhoneRegion = "mars"
	if _, err := bootstrap.Build(cfg); err == nil {
		t.Fatalf("expected unknown phone region to fail")
	}

	cfg = baseConfig(t)
	cfg.TaxonomySource = "postgres"
	cfg.DatabaseURL = ""
	if _, err := bootstrap.Build(cfg); err == nil {
		t.Fatalf("expected postgres source without DSN to fail")
	}
}
