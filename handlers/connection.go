package handlers

import (
	"net/http"
	"strconv"

	"skillswap/models"
	"skillswap/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateConnection sends a connection request to another user.
func (h *HandlerBundle) CreateConnection(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var input models.ConnectionRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	conn, err := h.Connections.CreateConnectionRequest(c.Request.Context(), userID, input)
	if err != nil {
		utils.JSONError(c, connectionStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, conn)
}

// AcceptConnection accepts a pending request addressed to the caller.
func (h *HandlerBundle) AcceptConnection(c *gin.Context) {
	h.answerConnection(c, true)
}

// DeclineConnection declines a pending request addressed to the caller.
func (h *HandlerBundle) DeclineConnection(c *gin.Context) {
	h.answerConnection(c, false)
}

func (h *HandlerBundle) answerConnection(c *gin.Context, accept bool) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var conn *models.Connection
	var err error
	if accept {
		conn, err = h.Connections.AcceptConnection(c.Request.Context(), c.Param("id"), userID)
	} else {
		conn, err = h.Connections.DeclineConnection(c.Request.Context(), c.Param("id"), userID)
	}
	if err != nil {
		utils.JSONError(c, connectionStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, conn)
}

// CancelConnection cancels a connection and releases its booked slots.
func (h *HandlerBundle) CancelConnection(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	conn, err := h.Connections.CancelConnection(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		getLogger(c).Warn("connection cancel failed", zap.Error(err))
		utils.JSONError(c, connectionStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, conn)
}

// ScheduleSession books a mutual slot under an accepted connection.
func (h *HandlerBundle) ScheduleSession(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var input models.ScheduleSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	conn, err := h.Connections.ScheduleSession(c.Request.Context(), c.Param("id"), userID, input)
	if err != nil {
		getLogger(c).Warn("session scheduling failed", zap.Error(err))
		utils.JSONError(c, connectionStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, conn)
}

// CancelSession releases a scheduled session's slots on both calendars.
func (h *HandlerBundle) CancelSession(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}
	slotIndex, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid slot index", "")
		return
	}

	conn, err := h.Connections.CancelSession(c.Request.Context(), c.Param("id"), slotIndex, userID)
	if err != nil {
		utils.JSONError(c, connectionStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, conn)
}

// CompleteSession marks a scheduled session as done.
func (h *HandlerBundle) CompleteSession(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}
	slotIndex, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid slot index", "")
		return
	}

	var body struct {
		Notes string `json:"notes,omitempty"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
	}

	conn, err := h.Connections.CompleteSession(c.Request.Context(), c.Param("id"), slotIndex, userID, body.Notes)
	if err != nil {
		utils.JSONError(c, connectionStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, conn)
}

// ListConnections returns the caller's connections, optionally filtered by
// status and connection type.
func (h *HandlerBundle) ListConnections(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	conns, err := h.Connections.GetUserConnections(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		utils.JSONError(c, connectionStatus(err), err.Error(), "")
		return
	}
	if connType := c.Query("type"); connType != "" {
		filtered := conns[:0]
		for _, conn := range conns {
			if conn.ConnectionType == connType {
				filtered = append(filtered, conn)
			}
		}
		conns = filtered
	}
	c.JSON(http.StatusOK, conns)
}

// ListPendingRequests returns requests awaiting the caller's answer.
func (h *HandlerBundle) ListPendingRequests(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	conns, err := h.Connections.GetPendingRequests(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, connectionStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, conns)
}

// ListSentRequests returns the caller's still-pending outgoing requests.
func (h *HandlerBundle) ListSentRequests(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	conns, err := h.Connections.GetSentRequests(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, connectionStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, conns)
}
