package assessments

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/enrich"
	localstore "assessment-backend/internal/shared/storage/object/local"
)

func setupSurveyRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &Service{
		Repo:     NewMemoryRepo(),
		Store:    localstore.New(t.TempDir()),
		Enricher: &enrich.Enricher{},
	}

	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestSubmitSurveyJSON(t *testing.T) {
	router := setupSurveyRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/survey/submit", map[string]any{
		"repetitiveTasks":     "frequently",
		"dataTransferProcess": "fully-integrated",
		"softwareTools":       []string{"Salesforce", "Slack"},
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body["success"])
	}
	if body["assessmentId"] != float64(1) {
		t.Fatalf("assessmentId = %v", body["assessmentId"])
	}
	if body["companyProfileUploaded"] != false {
		t.Fatalf("companyProfileUploaded = %v", body["companyProfileUploaded"])
	}

	analysis, ok := body["analysis"].(map[string]any)
	if !ok {
		t.Fatalf("expected analysis object, got %v", body["analysis"])
	}
	if analysis["automationScore"] != float64(55) {
		t.Fatalf("automationScore = %v, want 55", analysis["automationScore"])
	}
	if analysis["industryInsights"] == nil {
		t.Fatal("expected industry insights in analysis")
	}
}

func TestSubmitSurveyRejectsBadFields(t *testing.T) {
	router := setupSurveyRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/survey/submit", map[string]any{
		"repetitiveTasks": 42,
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body["success"])
	}
	if body["message"] != "Invalid assessment data" {
		t.Fatalf("message = %v", body["message"])
	}
	if _, ok := body["errors"].([]any); !ok {
		t.Fatalf("expected field errors, got %v", body["errors"])
	}
}

func TestSubmitSurveyRejectsNonPDFUpload(t *testing.T) {
	router := setupSurveyRouter(t)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("repetitiveTasks", "frequently"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	part, err := form.CreateFormFile("companyProfile", "profile.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("not a pdf")); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := form.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/survey/submit", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	if body["message"] != "Only PDF files up to 10MB are allowed" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestSubmitSurveyMultipartFieldsParsed(t *testing.T) {
	router := setupSurveyRouter(t)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("dataTransferProcess", "fully-integrated"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := form.WriteField("softwareTools", "Salesforce"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := form.WriteField("softwareTools", "Slack"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := form.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/survey/submit", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	analysis, ok := body["analysis"].(map[string]any)
	if !ok {
		t.Fatalf("expected analysis object, got %v", body["analysis"])
	}
	// Baseline 50 plus the integrated data-transfer bonus.
	if analysis["automationScore"] != float64(65) {
		t.Fatalf("automationScore = %v, want 65", analysis["automationScore"])
	}
}

func TestAnalysisRequiresID(t *testing.T) {
	router := setupSurveyRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/survey/analysis", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if body := decodeBody(t, resp); body["message"] != "Assessment ID is required" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestAnalysisRejectsMalformedID(t *testing.T) {
	router := setupSurveyRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/survey/analysis?id=abc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if body := decodeBody(t, resp); body["message"] != "Invalid assessment ID format" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestAnalysisUnknownIDReturns404(t *testing.T) {
	router := setupSurveyRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/survey/analysis?id=999999", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	if body["success"] != false || body["message"] != "Assessment not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAnalysisRoundTrip(t *testing.T) {
	router := setupSurveyRouter(t)

	submitResp := doJSON(t, router, http.MethodPost, "/api/survey/submit", map[string]any{
		"repetitiveTasks": "frequently",
	})
	if submitResp.Code != http.StatusOK {
		t.Fatalf("submit failed: %d", submitResp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/survey/analysis?id=1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body["success"])
	}
	analysis, ok := body["analysis"].(map[string]any)
	if !ok {
		t.Fatalf("expected analysis object, got %v", body["analysis"])
	}
	if analysis["automationScore"] != float64(40) {
		t.Fatalf("automationScore = %v, want 40", analysis["automationScore"])
	}
}

func TestGetRecommendationsToleratesPartialData(t *testing.T) {
	router := setupSurveyRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/survey/get-recommendations", map[string]any{
		"dailyTasks":      "patient intake",
		"repetitiveTasks": 42,
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body["success"])
	}
	if _, ok := body["suggestedTools"].([]any); !ok {
		t.Fatalf("expected suggestedTools list, got %v", body["suggestedTools"])
	}
	industry, ok := body["industryInsights"].(map[string]any)
	if !ok {
		t.Fatalf("expected industryInsights for healthcare tasks, got %v", body["industryInsights"])
	}
	if industry["industryName"] != "Healthcare" {
		t.Fatalf("industryName = %v", industry["industryName"])
	}
}

func TestTestEndpoint(t *testing.T) {
	router := setupSurveyRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if body := decodeBody(t, resp); body["message"] != "APIs are working!" {
		t.Fatalf("message = %v", body["message"])
	}
}
