package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"resumescan/internal/config"
	"resumescan/internal/errors"
	"resumescan/internal/observability"
	"resumescan/internal/types"
)

func newTestServer(t *testing.T) (*Server, *observability.ObservabilityManager) {
	t.Helper()

	cfg := &config.Config{
		AI: config.AIConfig{
			Provider: "gemini",
			Model:    "test-model",
		},
	}

	s := &Server{
		Version:        "test",
		AppConfig:      cfg,
		MaxRequestSize: 1 << 20,
		MaxUploadSize:  1 << 20,
		Logger:         errors.NewLogger(slog.LevelError),
	}

	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{Enabled: false}, cfg)
	if err != nil {
		t.Fatalf("NewObservabilityManager failed: %v", err)
	}

	return s, om
}

const handlerTestResume = `John Developer
john@example.com | (555) 123-4567

Summary
Software engineer with a track record of shipping reliable services.

Experience
Senior Engineer at Acme Corp
- Led migration that reduced costs by 30%
- Developed pipeline processing 5 million events daily

Education
BS Computer Science, State University

Skills
Go, Python, SQL, Kubernetes`

func TestScoreHandlerScoresResume(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createScoreHandler(om)

	body, err := json.Marshal(ScoreRequest{ResumeText: handlerTestResume})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	var report types.ScoreReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if report.OverallScore <= 0 || report.OverallScore > 100 {
		t.Errorf("expected overall score in (0, 100], got %d", report.OverallScore)
	}
	if len(report.OptimizationTips) == 0 {
		t.Error("expected optimization tips in the report")
	}
}

func TestScoreHandlerRejectsMissingResumeText(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createScoreHandler(om)

	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewReader([]byte(`{"resumeText": "  "}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.Error == "" {
		t.Error("expected error field in response")
	}
}

func TestScoreHandlerRejectsWrongContentType(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createScoreHandler(om)

	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewReader([]byte("resume text")))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAnalyzeHandlerDegradesWithoutAPIKey(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createAnalyzeHandler(om)

	body, err := json.Marshal(AnalyzeRequest{ResumeText: handlerTestResume})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	var result types.AnalyzeResumeOutput
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Report.OverallScore <= 0 {
		t.Error("expected deterministic report despite missing AI credentials")
	}
	if result.Details != nil || result.Narrative != nil || result.Insights != nil {
		t.Error("expected AI enrichment fields to be nil without an API key")
	}
}

func TestAnalyzeOptionsFromRequest(t *testing.T) {
	falseVal := false

	tests := []struct {
		name string
		req  AnalyzeRequest
		want [3]bool // details, narrative, insights
	}{
		{
			name: "defaults to all operations",
			req:  AnalyzeRequest{},
			want: [3]bool{true, true, true},
		},
		{
			name: "explicit opt-out disables a single operation",
			req:  AnalyzeRequest{Narrative: &falseVal},
			want: [3]bool{true, false, true},
		},
		{
			name: "all operations disabled",
			req:  AnalyzeRequest{Details: &falseVal, Narrative: &falseVal, Insights: &falseVal},
			want: [3]bool{false, false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := analyzeOptionsFromRequest(tt.req)
			got := [3]bool{opts.Details, opts.Narrative, opts.Insights}
			if got != tt.want {
				t.Errorf("options mismatch, got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		apiKey string
		want   string
	}{
		{"short", "****"},
		{"12345678", "****"},
		{"1234567890abcdef", "12345678****"},
	}

	for _, tt := range tests {
		if got := maskAPIKey(tt.apiKey); got != tt.want {
			t.Errorf("maskAPIKey(%q) = %q, want %q", tt.apiKey, got, tt.want)
		}
	}
}
