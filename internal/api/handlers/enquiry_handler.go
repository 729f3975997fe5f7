package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lkcs/lkcs-backend/internal/services"
	"github.com/lkcs/lkcs-backend/internal/validate"
)

type EnquiryHandler struct {
	svc services.EnquiryService
}

func NewEnquiryHandler(svc services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{svc: svc}
}

func (h *EnquiryHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, pg, err := h.svc.List(c.Request.Context(), page, limit)
	if err != nil {
		writeAPIError(c, err, "Failed to fetch enquiries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items, "pagination": pg})
}

type createEnquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *EnquiryHandler) Create(c *gin.Context) {
	var req createEnquiryRequest
	// whitelist the fields; anything else in the body is dropped
	_ = c.ShouldBindJSON(&req)

	created, err := h.svc.Create(c.Request.Context(), validate.EnquiryInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		writeAPIError(c, err, "Failed to submit enquiry")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Enquiry submitted", "data": created})
}

func (h *EnquiryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeAPIError(c, err, "Failed to delete enquiry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Enquiry deleted"})
}
