package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lkcs/lkcs-backend/internal/services"
	"github.com/lkcs/lkcs-backend/internal/upload"
	"github.com/lkcs/lkcs-backend/internal/utils"
)

type GalleryHandler struct {
	svc    services.GalleryService
	images *upload.Policy
}

func NewGalleryHandler(svc services.GalleryService, images *upload.Policy) *GalleryHandler {
	return &GalleryHandler{svc: svc, images: images}
}

func (h *GalleryHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeMessageError(c, err, "Failed to fetch gallery items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create accepts two submission shapes: multipart image uploads and JSON
// payloads (base64 data-URI image or youtube metadata).
func (h *GalleryHandler) Create(c *gin.Context) {
	const op = "GalleryHandler.Create"

	if strings.Contains(c.ContentType(), "multipart/form-data") {
		h.createMultipart(c)
		return
	}

	var in services.GalleryJSONInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeMessageError(c, utils.E(utils.CodeInvalidArgument, op, "Invalid payload", err), "")
		return
	}

	item, err := h.svc.CreateFromJSON(c.Request.Context(), in)
	if err != nil {
		writeMessageError(c, err, "Upload failed")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *GalleryHandler) createMultipart(c *gin.Context) {
	const op = "GalleryHandler.Create"

	form, _ := c.MultipartForm()

	img, err := h.images.FromMultipart(c.Request.Context(), form, "image")
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrNoFile):
			writeMessageError(c, utils.E(utils.CodeInvalidArgument, op, "No file uploaded", err), "")
		case errors.Is(err, upload.ErrFileTooLarge):
			writeMessageError(c, utils.E(utils.CodePayloadTooLarge, op, "File too large", err), "")
		case errors.Is(err, upload.ErrTooManyFiles):
			writeMessageError(c, utils.E(utils.CodeInvalidArgument, op, "Only one image file is allowed", err), "")
		case errors.Is(err, upload.ErrUnsupportedType):
			writeMessageError(c, utils.E(utils.CodeUnsupportedMedia, op, "Unsupported file type", err), "")
		default:
			writeMessageError(c, utils.E(utils.CodeInternal, op, "", err), "Upload failed")
		}
		return
	}

	item, err := h.svc.CreateImage(c.Request.Context(), c.PostForm("name"), img)
	if err != nil {
		writeMessageError(c, err, "Upload failed")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeMessageError(c, err, "Delete failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
