package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lkcs/lkcs-backend/internal/services"
	"github.com/lkcs/lkcs-backend/internal/utils"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	const op = "AuthHandler.Login"

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAPIError(c, utils.E(utils.CodeInvalidArgument, op, "Invalid request body", err), "")
		return
	}

	token, exp, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		writeAPIError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"token":     token,
		"expiresAt": exp.Format(time.RFC3339),
	})
}
