package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// activityLogHandler handles HTTP requests related to activity logs.
type activityLogHandler struct {
	activityLogService portssvc.ActivityLogSvcFacade
}

func newActivityLogHandler(as portssvc.ActivityLogSvcFacade) *activityLogHandler {
	return &activityLogHandler{
		activityLogService: as,
	}
}

// registerActivityLogRoutes registers all activity-log routes.
func registerActivityLogRoutes(rg *gin.RouterGroup, activityLogService portssvc.ActivityLogSvcFacade) {
	h := newActivityLogHandler(activityLogService)

	logs := rg.Group("/activity-logs")
	{
		logs.GET("", h.listActivityLogs)
		logs.GET("/:id", h.getActivityLog)
		logs.POST("", h.createActivityLog)
		logs.DELETE("/:id", h.deleteActivityLog)
	}
}

// createActivityLog godoc
// @Summary Record an activity log entry
// @Tags activity-logs
// @Accept  json
// @Produce  json
// @Param   log body dto.CreateActivityLogRequest true "Log entry"
// @Success 201 {object} dto.ActivityLogResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /activity-logs [post]
func (h *activityLogHandler) createActivityLog(c *gin.Context) {
	var req dto.CreateActivityLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	log, err := h.activityLogService.CreateActivityLog(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create activity log")
		return
	}

	c.JSON(http.StatusCreated, dto.ToActivityLogResponse(log))
}

// getActivityLog godoc
// @Summary Get an activity log entry by ID
// @Tags activity-logs
// @Produce  json
// @Param   id path string true "Log ID"
// @Success 200 {object} dto.ActivityLogResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /activity-logs/{id} [get]
func (h *activityLogHandler) getActivityLog(c *gin.Context) {
	log, err := h.activityLogService.GetActivityLogByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve activity log")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityLogResponse(log))
}

// listActivityLogs godoc
// @Summary List activity log entries
// @Tags activity-logs
// @Produce  json
// @Param   limit query int false "Max results" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListActivityLogsResponse
// @Security BearerAuth
// @Router /activity-logs [get]
func (h *activityLogHandler) listActivityLogs(c *gin.Context) {
	var params dto.ListActivityLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	logs, err := h.activityLogService.ListActivityLogs(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list activity logs")
		return
	}

	c.JSON(http.StatusOK, dto.ToListActivityLogsResponse(logs))
}

// deleteActivityLog godoc
// @Summary Delete an activity log entry
// @Tags activity-logs
// @Param   id path string true "Log ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /activity-logs/{id} [delete]
func (h *activityLogHandler) deleteActivityLog(c *gin.Context) {
	if err := h.activityLogService.DeleteActivityLog(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete activity log")
		return
	}

	c.Status(http.StatusNoContent)
}
