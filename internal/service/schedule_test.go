package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yourname/focustimer/internal"
	"github.com/yourname/focustimer/internal/storage"
)

func TestCreateAndListSchedules(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	created, err := CreateSchedule(ctx, s, &ScheduleRequest{
		Time: "08:30", Days: []string{"Mon", "Wed"}, Name: "Morning focus", UserID: "u1",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Enabled)

	schedules, err := ListSchedules(ctx, s, "u1")
	assert.NoError(t, err)
	assert.Len(t, schedules, 1)
	assert.Equal(t, "Morning focus", schedules[0].Name)
	assert.Equal(t, []string{"Mon", "Wed"}, schedules[0].Days)
}

func TestCreateSchedule_DefaultsUser(t *testing.T) {
	s := setupTestStorage(t)

	created, err := CreateSchedule(context.Background(), s, &ScheduleRequest{
		Time: "21:00", Days: []string{"Fri"}, Name: "Wind down",
	})
	assert.NoError(t, err)
	assert.Equal(t, internal.DefaultUserID, created.UserID)
}

func TestDeleteSchedule(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	created, err := CreateSchedule(ctx, s, &ScheduleRequest{
		Time: "08:30", Days: []string{"Mon"}, Name: "Morning", UserID: "u1",
	})
	assert.NoError(t, err)

	assert.NoError(t, DeleteSchedule(ctx, s, created.ID))

	schedules, err := ListSchedules(ctx, s, "u1")
	assert.NoError(t, err)
	assert.Empty(t, schedules)
}

func TestDeleteSchedule_UnknownID(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	created, err := CreateSchedule(ctx, s, &ScheduleRequest{
		Time: "08:30", Days: []string{"Mon"}, Name: "Morning", UserID: "u1",
	})
	assert.NoError(t, err)

	err = DeleteSchedule(ctx, s, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Collection untouched
	schedules, err := ListSchedules(ctx, s, "u1")
	assert.NoError(t, err)
	assert.Len(t, schedules, 1)
	assert.Equal(t, created.ID, schedules[0].ID)
}

func TestToggleSchedule(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	created, err := CreateSchedule(ctx, s, &ScheduleRequest{
		Time: "08:30", Days: []string{"Mon"}, Name: "Morning", UserID: "u1",
	})
	assert.NoError(t, err)

	enabled, err := ToggleSchedule(ctx, s, created.ID)
	assert.NoError(t, err)
	assert.False(t, enabled)

	enabled, err = ToggleSchedule(ctx, s, created.ID)
	assert.NoError(t, err)
	assert.True(t, enabled)
}

func TestToggleSchedule_UnknownID(t *testing.T) {
	s := setupTestStorage(t)

	_, err := ToggleSchedule(context.Background(), s, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestValidateScheduleRequest(t *testing.T) {
	assert.Error(t, ValidateScheduleRequest(&ScheduleRequest{Time: "08:30"}))
	assert.Error(t, ValidateScheduleRequest(&ScheduleRequest{Time: "08:30", Days: []string{}, Name: "x"}))
	assert.NoError(t, ValidateScheduleRequest(&ScheduleRequest{Time: "08:30", Days: []string{"Mon"}, Name: "x"}))
}
