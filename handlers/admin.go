package handlers

import (
	"net/http"

	"skillswap/models"
	"skillswap/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminListUsers returns every registered user.
func (h *HandlerBundle) AdminListUsers(c *gin.Context) {
	users, err := h.Users.GetAllUsers(c.Request.Context())
	if err != nil {
		getLogger(c).Error("admin user listing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list users", "")
		return
	}
	c.JSON(http.StatusOK, users)
}

// AdminListConnections returns every connection for moderation review.
func (h *HandlerBundle) AdminListConnections(c *gin.Context) {
	conns, err := h.ConnectionRepo.FindAll(c.Request.Context())
	if err != nil {
		getLogger(c).Error("admin connection listing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list connections", "")
		return
	}
	c.JSON(http.StatusOK, conns)
}

// AdminBroadcast publishes a platform-wide message to every user's inbox.
func (h *HandlerBundle) AdminBroadcast(c *gin.Context) {
	adminEmail := c.GetString("adminEmail")

	var input models.BroadcastInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	msg, err := h.Notifications.Broadcast(c.Request.Context(), input, adminEmail)
	if err != nil {
		getLogger(c).Error("broadcast failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to broadcast message", "")
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// AdminDeleteUser removes a user account.
func (h *HandlerBundle) AdminDeleteUser(c *gin.Context) {
	if err := h.Users.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, userStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
