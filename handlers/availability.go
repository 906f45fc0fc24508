package handlers

import (
	"net/http"

	"skillswap/models"
	"skillswap/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAvailability returns the authenticated user's full availability record.
func (h *HandlerBundle) GetAvailability(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	record, err := h.Availability.GetUserAvailability(c.Request.Context(), userID)
	if err != nil {
		getLogger(c).Error("failed to fetch availability", zap.Error(err))
		utils.JSONError(c, availabilityStatus(err), err.Error(), "")
		return
	}
	if record == nil {
		c.JSON(http.StatusOK, gin.H{"userId": userID, "availableSlots": []models.AvailabilitySlot{}})
		return
	}
	c.JSON(http.StatusOK, record)
}

// SetAvailability replaces the authenticated user's availability record.
func (h *HandlerBundle) SetAvailability(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req models.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	record, err := h.Availability.SetUserAvailability(c.Request.Context(), userID, req)
	if err != nil {
		utils.JSONError(c, availabilityStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, record)
}

// AddSlots appends one-off slots to the authenticated user's calendar.
func (h *HandlerBundle) AddSlots(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req struct {
		Slots []models.NewSlot `json:"slots" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	record, err := h.Availability.AddAvailableSlots(c.Request.Context(), userID, req.Slots)
	if err != nil {
		utils.JSONError(c, availabilityStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, record)
}

// RemoveSlot deletes a single unbooked slot.
func (h *HandlerBundle) RemoveSlot(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	date := c.Query("date")
	timeSlot := c.Query("timeSlot")
	if date == "" || timeSlot == "" {
		utils.JSONError(c, http.StatusBadRequest, "date and timeSlot query parameters are required", "")
		return
	}

	if err := h.Availability.RemoveAvailableSlot(c.Request.Context(), userID, date, timeSlot); err != nil {
		utils.JSONError(c, availabilityStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// GetUserSlots lists another user's open slots within a date window.
func (h *HandlerBundle) GetUserSlots(c *gin.Context) {
	slots, err := h.Availability.GetAvailableSlots(c.Request.Context(), c.Param("id"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		utils.JSONError(c, availabilityStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GetBookedSlots lists the authenticated user's booked slots in a window.
func (h *HandlerBundle) GetBookedSlots(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	slots, err := h.Availability.GetUserBookedSlots(c.Request.Context(), userID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		utils.JSONError(c, availabilityStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, slots)
}

// SetRecurring replaces the authenticated user's weekly templates.
func (h *HandlerBundle) SetRecurring(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req struct {
		RecurringAvailability []models.RecurringAvailability `json:"recurringAvailability" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	record, err := h.Availability.SetRecurringAvailability(c.Request.Context(), userID, req.RecurringAvailability)
	if err != nil {
		utils.JSONError(c, availabilityStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, record)
}

// GenerateFromRecurring expands weekly templates into concrete slots.
func (h *HandlerBundle) GenerateFromRecurring(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req struct {
		StartDate string `json:"startDate" binding:"required"`
		EndDate   string `json:"endDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	record, err := h.Availability.GenerateSlotsFromRecurring(c.Request.Context(), userID, req.StartDate, req.EndDate)
	if err != nil {
		utils.JSONError(c, availabilityStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, record)
}

// BulkGenerate creates slots for every weekday/time combination requested.
func (h *HandlerBundle) BulkGenerate(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var cfg models.BulkGenerateConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	record, err := h.Availability.BulkGenerateSlots(c.Request.Context(), userID, cfg)
	if err != nil {
		utils.JSONError(c, availabilityStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetCommonAvailability intersects the caller's open slots with another
// user's.
func (h *HandlerBundle) GetCommonAvailability(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	slots, err := h.Availability.GetCommonAvailability(c.Request.Context(), userID, c.Param("id"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		utils.JSONError(c, availabilityStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, slots)
}

// CheckSlot reports whether a user has a given slot open.
func (h *HandlerBundle) CheckSlot(c *gin.Context) {
	date := c.Query("date")
	timeSlot := c.Query("timeSlot")
	if date == "" || timeSlot == "" {
		utils.JSONError(c, http.StatusBadRequest, "date and timeSlot query parameters are required", "")
		return
	}

	available, err := h.Availability.IsSlotAvailable(c.Request.Context(), c.Param("id"), date, timeSlot)
	if err != nil {
		utils.JSONError(c, availabilityStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}
