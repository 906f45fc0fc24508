package handlers

import (
	"net/http"
	"strings"

	"skillswap/models"
	"skillswap/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterUser creates an account and returns an auth token.
func (h *HandlerBundle) RegisterUser(c *gin.Context) {
	var input models.UserRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	resp, err := h.Users.Register(c.Request.Context(), input)
	if err != nil {
		getLogger(c).Warn("registration failed", zap.Error(err))
		utils.JSONError(c, userStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUser exchanges email/password for an auth token.
func (h *HandlerBundle) AuthenticateUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	resp, err := h.Users.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, userStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOutUser revokes the presented token.
func (h *HandlerBundle) SignOutUser(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	if err := h.Users.SignOut(c.Request.Context(), userID, token); err != nil {
		getLogger(c).Error("sign out failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to sign out", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

// GetProfile returns the authenticated user's full record.
func (h *HandlerBundle) GetProfile(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	u, err := h.Users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, userStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, u)
}

// GetUserProfile returns the public view of another user.
func (h *HandlerBundle) GetUserProfile(c *gin.Context) {
	u, err := h.Users.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, userStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, u.Public())
}

// UpdateProfile applies a partial profile update.
func (h *HandlerBundle) UpdateProfile(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var input models.UserUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	u, err := h.Users.UpdateUser(c.Request.Context(), userID, input)
	if err != nil {
		getLogger(c).Error("profile update failed", zap.Error(err))
		utils.JSONError(c, userStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, u)
}

// DeleteAccount removes the authenticated user's account.
func (h *HandlerBundle) DeleteAccount(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	if err := h.Users.DeleteUser(c.Request.Context(), userID); err != nil {
		utils.JSONError(c, userStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetMessages lists the authenticated user's inbox, broadcasts included.
func (h *HandlerBundle) GetMessages(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	msgs, err := h.Notifications.GetUserMessages(c.Request.Context(), userID)
	if err != nil {
		getLogger(c).Error("failed to fetch messages", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch messages", "")
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// MarkMessageRead marks an inbox message as read.
func (h *HandlerBundle) MarkMessageRead(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	marked, err := h.Notifications.MarkMessageRead(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		getLogger(c).Error("failed to mark message read", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to mark message read", "")
		return
	}
	if !marked {
		utils.JSONError(c, http.StatusNotFound, "message not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}
