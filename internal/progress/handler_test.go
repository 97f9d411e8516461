package progress

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupProgressRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	NewHandler(&Service{Repo: NewMemoryRepo()}).RegisterRoutes(r.Group("/api"))
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestSaveProgressHappyPath(t *testing.T) {
	router := setupProgressRouter(t)

	resp := postJSON(t, router, "/api/survey/save-progress", map[string]any{
		"email":      "user@example.com",
		"surveyData": map[string]any{"dailyTasks": "invoicing"},
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body["success"])
	}
	if body["message"] != "Progress saved successfully" {
		t.Fatalf("message = %v", body["message"])
	}
	if body["progressId"] != float64(1) {
		t.Fatalf("progressId = %v", body["progressId"])
	}
}

func TestSaveProgressInvalidEmail(t *testing.T) {
	router := setupProgressRouter(t)

	resp := postJSON(t, router, "/api/survey/save-progress", map[string]any{
		"email": "not-an-email",
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Success || body.Message != "Invalid progress data" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if len(body.Errors) != 1 || body.Errors[0].Field != "email" {
		t.Fatalf("expected email field error, got %+v", body.Errors)
	}
}

func TestGetProgressRoundTrip(t *testing.T) {
	router := setupProgressRouter(t)

	saveResp := postJSON(t, router, "/api/survey/save-progress", map[string]any{
		"email":      "user@example.com",
		"surveyData": map[string]any{"repetitiveTasks": "frequently"},
	})
	if saveResp.Code != http.StatusCreated {
		t.Fatalf("save failed: %d", saveResp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/survey/progress/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", body["data"])
	}
	if data["email"] != "user@example.com" {
		t.Fatalf("email = %v", data["email"])
	}
	surveyData, ok := data["surveyData"].(map[string]any)
	if !ok || surveyData["repetitiveTasks"] != "frequently" {
		t.Fatalf("surveyData = %v", data["surveyData"])
	}
}

func TestGetProgressNotFound(t *testing.T) {
	router := setupProgressRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/survey/progress/999", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["success"] != false || body["message"] != "Progress not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestGetProgressMalformedID(t *testing.T) {
	router := setupProgressRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/survey/progress/abc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}
