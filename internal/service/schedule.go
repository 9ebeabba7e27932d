package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yourname/focustimer/internal"
	"github.com/yourname/focustimer/internal/storage"
)

// ScheduleRequest carries a new reminder schedule. Only presence is checked;
// the time string and day tokens are stored as the client sent them.
type ScheduleRequest struct {
	Time   string   `json:"time" validate:"required"`
	Days   []string `json:"days" validate:"required,min=1"`
	Name   string   `json:"name" validate:"required"`
	UserID string   `json:"userId"`
}

func ValidateScheduleRequest(body *ScheduleRequest) error {
	return validate.Struct(body)
}

func CreateSchedule(ctx context.Context, scheduleRepo storage.ScheduleRepository, body *ScheduleRequest) (*internal.Schedule, error) {
	userID := body.UserID
	if userID == "" {
		userID = internal.DefaultUserID
	}
	schedule := &internal.Schedule{
		ID:        uuid.NewString(),
		UserID:    userID,
		Time:      body.Time,
		Days:      body.Days,
		Enabled:   true,
		Name:      body.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := scheduleRepo.SaveSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func ListSchedules(ctx context.Context, scheduleRepo storage.ScheduleRepository, userID string) ([]internal.Schedule, error) {
	if userID == "" {
		userID = internal.DefaultUserID
	}
	return scheduleRepo.ListSchedules(ctx, userID)
}

func DeleteSchedule(ctx context.Context, scheduleRepo storage.ScheduleRepository, id string) error {
	return scheduleRepo.DeleteSchedule(ctx, id)
}

// ToggleSchedule flips the enabled flag and returns the new value.
func ToggleSchedule(ctx context.Context, scheduleRepo storage.ScheduleRepository, id string) (bool, error) {
	schedule, err := scheduleRepo.GetSchedule(ctx, id)
	if err != nil {
		return false, err
	}
	schedule.Enabled = !schedule.Enabled
	if err := scheduleRepo.UpdateSchedule(ctx, schedule); err != nil {
		return false, err
	}
	return schedule.Enabled, nil
}
