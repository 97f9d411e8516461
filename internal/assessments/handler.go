package assessments

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/extract"
	"assessment-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches survey routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/survey/submit", h.submit)
	rg.POST("/survey/get-recommendations", h.recommendations)
	rg.GET("/survey/analysis", h.analysis)
	rg.GET("/test", h.test)
}

func (h *Handler) submit(c *gin.Context) {
	raw, profile, ok := h.readSubmission(c)
	if !ok {
		return
	}

	answers, fieldErrors := ParseAnswers(raw)
	if len(fieldErrors) > 0 {
		respond.Error(c, http.StatusBadRequest, "Invalid assessment data", toRespondErrors(fieldErrors))
		return
	}

	a, err := h.Svc.Submit(c.Request.Context(), answers, profile)
	if err != nil {
		if errors.Is(err, ErrInvalidProfile) {
			respond.Error(c, http.StatusBadRequest, "Only PDF files up to 10MB are allowed", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "An error occurred while processing your submission", nil)
		return
	}

	c.Set("assessmentId", a.ID)
	respond.OK(c, gin.H{
		"success":                true,
		"assessmentId":           a.ID,
		"analysis":               a.Analysis,
		"companyProfileUploaded": profile != nil,
	})
}

func (h *Handler) recommendations(c *gin.Context) {
	raw := map[string]any{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	// Partial data is accepted as-is; malformed fields are simply skipped.
	answers, _ := ParseAnswers(raw)
	set := h.Svc.Recommendations(c.Request.Context(), answers)

	respond.OK(c, gin.H{
		"success":            true,
		"suggestedTools":     set.SuggestedTools,
		"potentialWorkflows": set.PotentialWorkflows,
		"tailoredQuestions":  set.TailoredQuestions,
		"industryInsights":   set.IndustryInsights,
	})
}

func (h *Handler) analysis(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		respond.Error(c, http.StatusBadRequest, "Assessment ID is required", nil)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid assessment ID format", nil)
		return
	}

	analysis, err := h.Svc.Analysis(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Assessment not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to retrieve analysis", nil)
		return
	}

	c.Set("assessmentId", id)
	respond.OK(c, gin.H{"success": true, "analysis": analysis})
}

func (h *Handler) test(c *gin.Context) {
	respond.OK(c, gin.H{"message": "APIs are working!"})
}

// readSubmission decodes either a JSON body or a multipart form with an
// optional companyProfile PDF. Returns ok=false after writing the error.
func (h *Handler) readSubmission(c *gin.Context) (map[string]any, *UploadedProfile, bool) {
	raw := map[string]any{}

	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBindJSON(&raw); err != nil {
			respond.Error(c, http.StatusBadRequest, "Invalid request body", nil)
			return nil, nil, false
		}
		return raw, nil, true
	}

	// Leave headroom above the file cap for the answer fields themselves.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxProfileSize+(1<<20))
	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid form data", nil)
		return nil, nil, false
	}

	for key, vals := range form.Value {
		if len(vals) == 1 {
			raw[key] = vals[0]
		} else {
			raw[key] = vals
		}
	}

	files := form.File["companyProfile"]
	if len(files) == 0 {
		return raw, nil, true
	}

	fh := files[0]
	if fh.Size > MaxProfileSize {
		respond.Error(c, http.StatusBadRequest, "Only PDF files up to 10MB are allowed", nil)
		return nil, nil, false
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" && ct != extract.MimePDF {
		respond.Error(c, http.StatusBadRequest, "Only PDF files up to 10MB are allowed", nil)
		return nil, nil, false
	}

	file, err := fh.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Unable to read uploaded file", nil)
		return nil, nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Unable to read uploaded file", nil)
		return nil, nil, false
	}

	return raw, &UploadedProfile{FileName: fh.Filename, Data: data}, true
}

func toRespondErrors(fieldErrors []FieldError) []respond.FieldError {
	out := make([]respond.FieldError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		out = append(out, respond.FieldError{Field: fe.Field, Message: fe.Message})
	}
	return out
}
