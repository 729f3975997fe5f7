package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lkcs/lkcs-backend/internal/utils"
)

// The routers speak three historical wire shapes: applications/enquiries wrap
// everything in {success, ...}, events answer {error}, gallery answers
// {message}. Helpers below keep each one stable while sharing the status
// mapping and the no-leak policy for internal errors.

func unpack(c *gin.Context, err error) (status int, msg string, details []string) {
	status = utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) && status != http.StatusInternalServerError {
		return status, ae.Message, ae.Details
	}

	// Internal errors keep full detail server-side only.
	_ = c.Error(err)
	return status, "", nil
}

// writeAPIError renders the {success:false, error, details?} shape.
func writeAPIError(c *gin.Context, err error, generic string) {
	status, msg, details := unpack(c, err)
	if msg == "" {
		msg = generic
	}

	body := gin.H{"success": false, "error": msg}
	if len(details) > 0 {
		body["details"] = details
	}
	c.JSON(status, body)
}

// writeMessageError renders the gallery {message} shape.
func writeMessageError(c *gin.Context, err error, generic string) {
	status, msg, _ := unpack(c, err)
	if msg == "" {
		msg = generic
	}
	c.JSON(status, gin.H{"message": msg})
}

// writeRawError renders the events {error} shape.
func writeRawError(c *gin.Context, err error, generic string) {
	status, msg, _ := unpack(c, err)
	if msg == "" {
		msg = generic
	}
	c.JSON(status, gin.H{"error": msg})
}
