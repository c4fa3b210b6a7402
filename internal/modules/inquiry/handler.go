package inquiry

import (
	"errors"
	"net/http"

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
	rg.POST("/inquiries", h.SubmitInquiry)
}

func (h *Handler) SubmitInquiry(c *gin.Context) {
	var req SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, fieldErrs, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.ValidationFailed(c, fieldErrs)
			return
		}

		// Persistence failed: surface the service message so the form can
		// show it and keep its field values. Nothing was stored.
		msg := err.Error()
		if msg == "" {
			msg = "Something went wrong"
		}
		response.Error(c, http.StatusBadGateway, "SERVICE_UNAVAILABLE", msg)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"inquiry":      result.Inquiry,
		"confirmation": result.Confirmation,
	})
}
