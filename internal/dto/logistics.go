package dto

import (
	"time"

	"foodshare_backend/internal/models"
)

type CreateTaskRequest struct {
	ListingID     string    `json:"listing_id" validate:"required"`
	VolunteerID   string    `json:"volunteer_id" validate:"required"`
	ScheduledTime time.Time `json:"scheduled_time" validate:"required"`
}

type TaskResponse struct {
	ID            string    `json:"id"`
	ListingID     string    `json:"listing_id"`
	VolunteerID   string    `json:"volunteer_id"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewTaskResponse(task *models.PickupTask) TaskResponse {
	return TaskResponse{
		ID:            task.ID,
		ListingID:     task.ListingID,
		VolunteerID:   task.VolunteerID,
		ScheduledTime: task.ScheduledTime,
		Completed:     task.Completed,
		CreatedAt:     task.CreatedAt,
	}
}
