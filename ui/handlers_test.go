package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"gobayes/app"
	"gobayes/domain/bayes"
	"gobayes/domain/core"
	apperrors "gobayes/internal/errors"
	"gobayes/internal/testkit"
	"gobayes/models"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	kit := testkit.NewKit()
	return NewServer(kit.Service(1000), gin.TestMode)
}

func doJSON(t *testing.T, server *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Engine().ServeHTTP(rec, req)
	return rec
}

func createFixtureAnalysis(t *testing.T, server *Server) models.Analysis {
	t.Helper()
	rec := doJSON(t, server, http.MethodPost, "/api/analyses", map[string]interface{}{
		"name":       "aspirin trial",
		"counts":     [][]int{{5, 94}, {18, 188}},
		"row_labels": []string{"aspirin", "placebo"},
		"col_labels": []string{"fatal", "nonfatal"},
		"seed":       42,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", rec.Code, rec.Body.String())
	}

	var analysis models.Analysis
	if err := json.Unmarshal(rec.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return analysis
}

func TestCreateAnalysis(t *testing.T) {
	server := newTestServer()
	analysis := createFixtureAnalysis(t, server)

	if analysis.ID == "" {
		t.Error("response missing analysis ID")
	}
	if analysis.PostAlpha1 != 6 || analysis.PostBeta1 != 95 {
		t.Errorf("group 1 posterior = Beta(%v,%v), want Beta(6,95)", analysis.PostAlpha1, analysis.PostBeta1)
	}
	if analysis.Group2Label != "placebo" {
		t.Errorf("group 2 label = %q", analysis.Group2Label)
	}
}

func TestCreateAnalysis_InvalidInput(t *testing.T) {
	server := newTestServer()

	cases := []map[string]interface{}{
		{"name": "no counts"},
		{"name": "bad shape", "counts": [][]int{{1, 2}}},
		{"name": "negative", "counts": [][]int{{-1, 2}, {3, 4}}},
		{"name": "bad prior", "counts": [][]int{{1, 2}, {3, 4}},
			"priors": map[string]float64{"alpha1": 0, "beta1": 1, "alpha2": 1, "beta2": 1}},
	}
	for _, body := range cases {
		rec := doJSON(t, server, http.MethodPost, "/api/analyses", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%v: status = %d, want 400 (%s)", body["name"], rec.Code, rec.Body.String())
		}
	}
}

func TestUpdateAnalysis(t *testing.T) {
	server := newTestServer()
	analysis := createFixtureAnalysis(t, server)

	rec := doJSON(t, server, http.MethodPost, fmt.Sprintf("/api/analyses/%s/updates", analysis.ID), map[string]interface{}{
		"successes": []int{2, 3},
		"trials":    []int{50, 50},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", rec.Code, rec.Body.String())
	}

	var updated models.Analysis
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode update response: %v", err)
	}
	if updated.Revision != 2 {
		t.Errorf("revision = %d, want 2", updated.Revision)
	}
	if updated.PriorAlpha1 != 6 || updated.PostAlpha1 != 8 {
		t.Errorf("chained priors wrong: prior alpha %v, post alpha %v", updated.PriorAlpha1, updated.PostAlpha1)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	server := newTestServer()
	analysis := createFixtureAnalysis(t, server)

	rec := doJSON(t, server, http.MethodGet,
		fmt.Sprintf("/api/analyses/%s/summary?level=0.9&method=quantile", analysis.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary returned %d: %s", rec.Code, rec.Body.String())
	}

	var summary bayes.FitSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Method != bayes.MethodQuantile {
		t.Errorf("method = %q, want quantile", summary.Method)
	}
	if summary.Level != 0.9 {
		t.Errorf("level = %v, want 0.9", summary.Level)
	}
	if summary.Difference.Lower > summary.Difference.Upper {
		t.Errorf("interval out of order: [%v, %v]", summary.Difference.Lower, summary.Difference.Upper)
	}
}

func TestReportEndpoint(t *testing.T) {
	server := newTestServer()
	analysis := createFixtureAnalysis(t, server)

	rec := doJSON(t, server, http.MethodGet, fmt.Sprintf("/api/analyses/%s/report", analysis.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("report returned %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "aspirin trial") {
		t.Error("report missing analysis name")
	}
}

func TestAnalysisNotFound(t *testing.T) {
	server := newTestServer()

	rec := doJSON(t, server, http.MethodGet, "/api/analyses/00000000-0000-0000-0000-000000000000/summary", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, server, http.MethodGet, "/api/analyses/not-a-uuid", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for malformed id", rec.Code)
	}
}

func TestListAnalyses(t *testing.T) {
	server := newTestServer()
	createFixtureAnalysis(t, server)
	createFixtureAnalysis(t, server)

	rec := doJSON(t, server, http.MethodGet, "/api/analyses?limit=1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d", rec.Code)
	}

	var payload struct {
		Analyses []models.Analysis `json:"analyses"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(payload.Analyses) != 1 {
		t.Errorf("got %d analyses, want 1 (limit)", len(payload.Analyses))
	}
}

// failingRepository simulates a storage outage
type failingRepository struct{}

func (failingRepository) Create(context.Context, *models.Analysis) error {
	return apperrors.WithCode("STORAGE_FAILURE", errors.New("connection refused"))
}

func (failingRepository) Get(context.Context, core.AnalysisID) (*models.Analysis, error) {
	return nil, apperrors.WithCode("STORAGE_FAILURE", errors.New("connection refused"))
}

func (failingRepository) Save(context.Context, *models.Analysis) error {
	return apperrors.WithCode("STORAGE_FAILURE", errors.New("connection refused"))
}

func (failingRepository) List(context.Context, int) ([]*models.Analysis, error) {
	return nil, apperrors.WithCode("STORAGE_FAILURE", errors.New("connection refused"))
}

func TestStorageFailureReportsCode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	kit := testkit.NewKit()
	service := app.NewAnalysisService(failingRepository{}, kit.RNG(), 100)
	server := NewServer(service, gin.TestMode)

	rec := doJSON(t, server, http.MethodGet, "/api/analyses", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("list returned %d, want 500", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body["code"] != "STORAGE_FAILURE" {
		t.Errorf("code = %q, want STORAGE_FAILURE", body["code"])
	}
}
