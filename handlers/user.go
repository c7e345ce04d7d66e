package handlers

import (
	"errors"
	"net/http"

	"slotbook/services/user"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves registration, login and token checks.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(userService user.UserService) *UserHandler {
	return &UserHandler{UserService: userService}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userErrorStatus maps user service errors to a status and client message.
func userErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, user.ErrMissingCredentials):
		return http.StatusBadRequest, "Username and password are required"
	case errors.Is(err, user.ErrUsernameTaken):
		return http.StatusBadRequest, "Username already exists"
	case errors.Is(err, user.ErrPasswordTooLong):
		return http.StatusBadRequest, "Password is too long"
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid username or password"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// RegisterHandler handles POST /register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req credentialsRequest
	if err := bindJSON(c, &req); err != nil {
		logger.Debug("Invalid registration request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.UserService.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		status, msg := userErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Registration failed", zap.Error(err))
		}
		utils.JSONError(c, status, msg)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Registration successful"})
}

// LoginHandler handles POST /login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req credentialsRequest
	if err := bindJSON(c, &req); err != nil {
		logger.Debug("Invalid login request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.UserService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		status, msg := userErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Login failed", zap.Error(err))
		}
		utils.JSONError(c, status, msg)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Login successful",
		"username": resp.Username,
		"token":    resp.Token,
	})
}

// VerifyTokenHandler handles POST /verify-token. It always answers 200.
func (h *UserHandler) VerifyTokenHandler(c *gin.Context) {
	token, ok := utils.ExtractBearerToken(c.GetHeader("Authorization"))
	if !ok {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}

	principal, err := h.UserService.VerifyToken(c.Request.Context(), token)
	if err != nil {
		if !errors.Is(err, user.ErrTokenNotFound) && !errors.Is(err, user.ErrTokenExpired) {
			getLogger(c).Error("Token verification failed", zap.Error(err))
		}
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "username": principal.Username})
}
