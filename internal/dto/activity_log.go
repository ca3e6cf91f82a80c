package dto

import (
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
)

// CreateActivityLogRequest defines the data needed to record an activity log entry.
type CreateActivityLogRequest struct {
	UserID      *string `json:"userID"`
	Action      string  `json:"action" binding:"required"`
	Description string  `json:"description"`
}

// ListActivityLogsParams defines query parameters for listing activity logs.
type ListActivityLogsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ActivityLogResponse defines the data returned for an activity log entry.
type ActivityLogResponse struct {
	LogID       string    `json:"logID"`
	UserID      *string   `json:"userID,omitempty"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// ListActivityLogsResponse wraps the list of activity log entries.
type ListActivityLogsResponse struct {
	ActivityLogs []ActivityLogResponse `json:"activityLogs"`
}

// ToActivityLogResponse converts a domain.ActivityLog to ActivityLogResponse DTO.
func ToActivityLogResponse(l *domain.ActivityLog) ActivityLogResponse {
	return ActivityLogResponse{
		LogID:       l.LogID,
		UserID:      l.UserID,
		Action:      l.Action,
		Description: l.Description,
		Timestamp:   l.Timestamp,
	}
}

// ToListActivityLogsResponse converts a slice of domain.ActivityLog to its list DTO.
func ToListActivityLogsResponse(logs []domain.ActivityLog) ListActivityLogsResponse {
	responses := make([]ActivityLogResponse, len(logs))
	for i := range logs {
		responses[i] = ToActivityLogResponse(&logs[i])
	}
	return ListActivityLogsResponse{ActivityLogs: responses}
}
