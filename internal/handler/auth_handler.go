package handler

import (
	"errors"
	"net/http"

	"foodist_api/internal/middleware"
	"foodist_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StatusRegistrationRejected distinguishes a store-rejected
// registration (duplicate account) from a generic server error.
const StatusRegistrationRejected = 461

// AuthHandler handles registration, login and user-info requests
type AuthHandler struct {
	service service.AuthService
	logger  *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{service: s, logger: logger}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"fullName"`
	}

	// An absent or malformed body is not rejected here: registration
	// with an empty payload is accepted as a no-op.
	_ = c.ShouldBindJSON(&req)

	err := h.service.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUserAlreadyExists):
			c.JSON(StatusRegistrationRejected, gin.H{"error": err.Error()})
		default:
			h.logger.WithError(err).Error("registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	c.Status(http.StatusOK)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrAccountDisabled) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
			return
		}
		h.logger.WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":  user.ID,
		"username": user.Username,
		"token":    token,
	})
}

func (h *AuthHandler) GetUserInfo(c *gin.Context) {
	username, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	info, err := h.service.GetUserInfo(c.Request.Context(), username)
	if err != nil {
		h.logger.WithError(err).Error("failed to load user info")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user info"})
		return
	}
	if info == nil {
		// No matching row: empty object rather than a failure status.
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, gin.H{"userInfo": info})
}

// RegisterAuthRoutes registers identity routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.GET("/user-info", middleware.RequirePrincipal(), h.GetUserInfo)
}
