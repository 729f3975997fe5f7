package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lkcs/lkcs-backend/internal/services"
	"github.com/lkcs/lkcs-backend/internal/upload"
	"github.com/lkcs/lkcs-backend/internal/utils"
	"github.com/lkcs/lkcs-backend/internal/validate"
)

type ApplicationHandler struct {
	svc     services.ApplicationService
	resumes *upload.Policy
}

func NewApplicationHandler(svc services.ApplicationService, resumes *upload.Policy) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, resumes: resumes}
}

func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeAPIError(c, err, "Failed to fetch applications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(apps), "data": apps})
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	const op = "ApplicationHandler.Create"

	form, _ := c.MultipartForm()

	resume, err := h.resumes.FromMultipart(c.Request.Context(), form, "resume")
	if err != nil && !errors.Is(err, upload.ErrNoFile) {
		switch {
		case errors.Is(err, upload.ErrFileTooLarge):
			writeAPIError(c, utils.E(utils.CodePayloadTooLarge, op, "File too large", err), "")
		case errors.Is(err, upload.ErrTooManyFiles):
			writeAPIError(c, utils.E(utils.CodeInvalidArgument, op, "Only one resume file is allowed", err), "")
		case errors.Is(err, upload.ErrUnsupportedType):
			writeAPIError(c, utils.E(utils.CodeUnsupportedMedia, op, "Only PDF, DOC, and DOCX files are allowed", err), "")
		default:
			writeAPIError(c, utils.E(utils.CodeInternal, op, "", err), "Failed to submit application")
		}
		return
	}

	in := validate.ApplicationInput{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Phone:    c.PostForm("phone"),
		Position: c.PostForm("position"),
		Message:  c.PostForm("message"),
	}

	app, err := h.svc.Create(c.Request.Context(), in, resume)
	if err != nil {
		writeAPIError(c, err, "Failed to submit application")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Application submitted successfully",
		"data":    app,
	})
}

func (h *ApplicationHandler) Resume(c *gin.Context) {
	path, name, err := h.svc.Resume(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAPIError(c, err, "Failed to download resume")
		return
	}
	c.FileAttachment(path, name)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeAPIError(c, err, "Failed to delete application")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application deleted successfully"})
}
