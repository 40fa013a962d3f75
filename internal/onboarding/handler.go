package onboarding

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"wedding-bazaar/partner-portal/partner-portal-backend/internal/onboarding/export"
	"wedding-bazaar/partner-portal/partner-portal-backend/pkg/workflows"
)

// Handler handles HTTP requests for partner onboarding
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new onboarding handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the public onboarding routes. Submission is
// public-facing; no authorization applies here.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/partner-onboarding", h.createSubmission)
}

// RegisterAdminRoutes registers the read-only listing routes. Callers must
// wrap the group in the admin authorization middleware.
func (h *Handler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/partner-onboarding", h.listSubmissions)
	router.GET("/partner-onboarding/:id", h.getSubmission)
}

// RegisterReviewRoutes registers the status mutation route, gated on the
// review capability.
func (h *Handler) RegisterReviewRoutes(router *gin.RouterGroup) {
	router.PATCH("/partner-onboarding/:id/status", h.updateStatus)
}

// RegisterExportRoutes registers the XLSX export route, gated on the export
// capability.
func (h *Handler) RegisterExportRoutes(router *gin.RouterGroup) {
	router.GET("/partner-onboarding/export", h.exportSubmissions)
}

// createSubmission handles POST /api/v1/partner-onboarding
func (h *Handler) createSubmission(c *gin.Context) {
	var payload SubmissionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := requiredPayloadErrors(&payload); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields", "fields": errs})
		return
	}

	id, err := h.service.CreateSubmission(c.Request.Context(), &payload)
	if err != nil {
		h.logger.Error("Failed to create submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
}

// listSubmissions handles GET /api/v1/partner-onboarding
func (h *Handler) listSubmissions(c *gin.Context) {
	filter := &SubmissionFilter{
		Page:  h.getIntParam(c, "page", 1),
		Limit: h.getIntParam(c, "limit", 20),
	}

	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if bt := c.Query("businessType"); bt != "" {
		filter.BusinessType = &bt
	}

	list, err := h.service.ListSubmissions(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

// getSubmission handles GET /api/v1/partner-onboarding/:id
func (h *Handler) getSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission ID"})
		return
	}

	submission, err := h.service.GetSubmission(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
			return
		}
		h.logger.Error("Failed to get submission", zap.Error(err), zap.String("submission_id", id.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load submission"})
		return
	}

	c.JSON(http.StatusOK, submission)
}

// updateStatus handles PATCH /api/v1/partner-onboarding/:id/status
func (h *Handler) updateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission ID"})
		return
	}

	var update StatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, &update); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
		case errors.Is(err, ErrUnknownStatus), errors.Is(err, workflows.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to update submission status", zap.Error(err), zap.String("submission_id", id.String()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update submission"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// exportSubmissions handles GET /api/v1/partner-onboarding/export
func (h *Handler) exportSubmissions(c *gin.Context) {
	filter := &SubmissionFilter{}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if bt := c.Query("businessType"); bt != "" {
		filter.BusinessType = &bt
	}

	// Exports drain the full listing; the paged limits of the admin screens
	// do not apply here.
	items, err := h.service.ListAllSubmissions(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to export submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export submissions"})
		return
	}

	columns := []string{"ID", "Business Type", "Status", "Business Name", "Owner", "Owner Mobile", "Owner Email", "City", "Area", "Created At"}
	rows := make([]map[string]interface{}, 0, len(items))
	for _, s := range items {
		rows = append(rows, map[string]interface{}{
			"ID":            s.ID.String(),
			"Business Type": s.BusinessType,
			"Status":        s.Status,
			"Business Name": s.BusinessName,
			"Owner":         s.OwnerName,
			"Owner Mobile":  s.OwnerMobile,
			"Owner Email":   s.OwnerEmail,
			"City":          s.City,
			"Area":          s.Area,
			"Created At":    s.CreatedAt,
		})
	}

	exporter := export.NewExcelExporter("Submissions")
	defer exporter.Close()
	if err := exporter.WriteHeader(columns); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := exporter.WriteRows(rows, columns); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="partner-submissions.xlsx"`)
	if err := exporter.WriteTo(c.Writer); err != nil {
		h.logger.Error("Failed to write export", zap.Error(err))
	}
}

// requiredPayloadErrors checks the required top-level fields of an external
// submission. The wizard has already run ValidateAll; this guards direct
// API callers.
func requiredPayloadErrors(p *SubmissionPayload) map[string]string {
	errs := map[string]string{}

	if _, ok := InternalBusinessType(p.BusinessType); !ok {
		errs["businessType"] = "businessType is required"
	}

	required := map[string]*string{
		"ownerName":          p.OwnerName,
		"ownerMobile":        p.OwnerMobile,
		"ownerEmail":         p.OwnerEmail,
		"managerName":        p.ManagerName,
		"managerMobile":      p.ManagerMobile,
		"businessName":       p.BusinessName,
		"city":               p.City,
		"area":               p.Area,
		"address":            p.Address,
		"cancellationPolicy": p.CancellationPolicy,
	}
	for field, value := range required {
		if value == nil || strings.TrimSpace(*value) == "" {
			errs[field] = field + " is required"
		}
	}
	return errs
}

func (h *Handler) getIntParam(c *gin.Context, name string, fallback int) int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
