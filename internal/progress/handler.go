package progress

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

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

// RegisterRoutes attaches progress routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/survey/save-progress", h.save)
	rg.GET("/survey/progress/:id", h.get)
}

type saveRequest struct {
	Email      string         `json:"email"`
	SurveyData map[string]any `json:"surveyData"`
}

func (h *Handler) save(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid progress data", nil)
		return
	}

	p, err := h.Svc.Save(c.Request.Context(), req.Email, req.SurveyData)
	if err != nil {
		if errors.Is(err, ErrInvalidEmail) {
			respond.Error(c, http.StatusBadRequest, "Invalid progress data", []respond.FieldError{
				{Field: "email", Message: "must be a valid email address"},
			})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to save progress", nil)
		return
	}

	c.Set("progressId", p.ID)
	respond.JSON(c, http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Progress saved successfully",
		"progressId": p.ID,
	})
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid progress ID format", nil)
		return
	}

	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Progress not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to load progress", nil)
		return
	}

	respond.OK(c, gin.H{"success": true, "data": p})
}
