package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// notificationHandler handles HTTP requests related to notifications.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{
		notificationService: ns,
	}
}

// registerNotificationRoutes registers all notification-related routes.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.GET("/:id", h.getNotification)
		notifications.POST("", h.createNotification)
		notifications.PUT("/:id", h.updateNotification)
		notifications.PUT("/:id/read", h.markNotificationRead)
		notifications.DELETE("/:id", h.deleteNotification)
	}
}

// createNotification godoc
// @Summary Create a notification
// @Tags notifications
// @Accept  json
// @Produce  json
// @Param   notification body dto.CreateNotificationRequest true "Notification details"
// @Success 201 {object} dto.NotificationResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications [post]
func (h *notificationHandler) createNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	notification, err := h.notificationService.CreateNotification(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create notification")
		return
	}

	c.JSON(http.StatusCreated, dto.ToNotificationResponse(notification))
}

// getNotification godoc
// @Summary Get a notification by ID
// @Tags notifications
// @Produce  json
// @Param   id path string true "Notification ID"
// @Success 200 {object} dto.NotificationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id} [get]
func (h *notificationHandler) getNotification(c *gin.Context) {
	notification, err := h.notificationService.GetNotificationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve notification")
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationResponse(notification))
}

// listNotifications godoc
// @Summary List notifications
// @Description Lists notifications, optionally filtered to a single user.
// @Tags notifications
// @Produce  json
// @Param   userID query string false "Filter by user"
// @Param   limit query int false "Max results" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListNotificationsResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	if userID := c.Query("userID"); userID != "" {
		notifications, err := h.notificationService.ListNotificationsByUser(c.Request.Context(), userID)
		if err != nil {
			respondServiceError(c, err, "Failed to list notifications")
			return
		}
		c.JSON(http.StatusOK, dto.ToListNotificationsResponse(notifications))
		return
	}

	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, dto.ToListNotificationsResponse(notifications))
}

// updateNotification godoc
// @Summary Update a notification
// @Tags notifications
// @Accept  json
// @Produce  json
// @Param   id path string true "Notification ID"
// @Param   notification body dto.UpdateNotificationRequest true "Fields to update"
// @Success 200 {object} dto.NotificationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id} [put]
func (h *notificationHandler) updateNotification(c *gin.Context) {
	var req dto.UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	notification, err := h.notificationService.UpdateNotification(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update notification")
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationResponse(notification))
}

// markNotificationRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce  json
// @Param   id path string true "Notification ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [put]
func (h *notificationHandler) markNotificationRead(c *gin.Context) {
	if err := h.notificationService.MarkNotificationRead(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to mark notification read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// deleteNotification godoc
// @Summary Delete a notification
// @Tags notifications
// @Param   id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id} [delete]
func (h *notificationHandler) deleteNotification(c *gin.Context) {
	if err := h.notificationService.DeleteNotification(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete notification")
		return
	}

	c.Status(http.StatusNoContent)
}
