package admin

import (
	"errors"
	"fmt"
	"net/http"

	"axishotel/internal/domain"
	"axishotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/inquiries", h.ListInquiries)
	rg.GET("/inquiries/export", h.ExportInquiries)
	rg.PATCH("/inquiries/:id/status", h.UpdateStatus)
	rg.DELETE("/inquiries/:id", h.DeleteInquiry)
}

func (h *Handler) ListInquiries(c *gin.Context) {
	inquiries, err := h.service.ListInquiries(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED",
			"Could not load booking data")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"inquiries": inquiries,
		"total":     len(inquiries),
	})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	inq, err := h.service.ChangeStatus(c.Request.Context(), c.Param("id"), domain.InquiryStatus(req.Status))
	if err != nil {
		switch {
		case IsNotFound(err):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Inquiry not found")
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidStatusTransition):
			response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION",
				fmt.Sprintf("Cannot change status to %q", req.Status))
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED",
				"Could not update inquiry status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"inquiry": inq})
}

func (h *Handler) DeleteInquiry(c *gin.Context) {
	if err := h.service.DeleteInquiry(c.Request.Context(), c.Param("id")); err != nil {
		if IsNotFound(err) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Inquiry not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED",
			"Could not delete inquiry")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ExportInquiries(c *gin.Context) {
	data, filename, err := h.service.ExportCSV(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNoData) {
			response.Error(c, http.StatusConflict, "NO_DATA", "No data to export")
			return
		}
		response.Error(c, http.StatusInternalServerError, "EXPORT_FAILED",
			"Could not export inquiries")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
