package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yourname/focustimer/internal"
	"go.uber.org/zap"
)

func newTestFileStorage(t *testing.T, dir string) *FileStorage {
	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	s, err := NewFileStorage(
		filepath.Join(dir, "sessions.json"),
		filepath.Join(dir, "stats.json"),
		filepath.Join(dir, "schedules.json"),
		logger,
	)
	assert.NoError(t, err)
	return s
}

func TestFileStorage_SessionRoundTrip(t *testing.T) {
	s := newTestFileStorage(t, t.TempDir())
	defer s.Close()
	ctx := context.Background()

	session := &internal.FocusSession{
		ID:        "s1",
		UserID:    "u1",
		StartTime: time.Now().UTC(),
		Duration:  25,
		Quote:     "Stay focused",
		CreatedAt: time.Now().UTC(),
	}
	assert.NoError(t, s.SaveSession(ctx, session))

	got, err := s.GetSession(ctx, "s1")
	assert.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.False(t, got.Completed)

	end := time.Now().UTC()
	got.EndTime = &end
	got.Completed = true
	assert.NoError(t, s.UpdateSession(ctx, got))

	updated, err := s.GetSession(ctx, "s1")
	assert.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.NotNil(t, updated.EndTime)
}

func TestFileStorage_GetSession_NotFound(t *testing.T) {
	s := newTestFileStorage(t, t.TempDir())
	defer s.Close()

	_, err := s.GetSession(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStorage_ListSessions_OrderAndLimit(t *testing.T) {
	s := newTestFileStorage(t, t.TempDir())
	defer s.Close()
	ctx := context.Background()

	base := time.Now().UTC()
	for i, id := range []string{"a", "b", "c"} {
		assert.NoError(t, s.SaveSession(ctx, &internal.FocusSession{
			ID:        id,
			UserID:    "u1",
			StartTime: base.Add(time.Duration(i) * time.Minute),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	sessions, err := s.ListSessions(ctx, "u1", 2)
	assert.NoError(t, err)
	assert.Len(t, sessions, 2)
	assert.Equal(t, "c", sessions[0].ID)
	assert.Equal(t, "b", sessions[1].ID)
}

func TestFileStorage_PersistsAcrossReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s := newTestFileStorage(t, dir)
	now := time.Now().UTC()
	assert.NoError(t, s.SaveSession(ctx, &internal.FocusSession{ID: "s1", UserID: "u1", StartTime: now, CreatedAt: now}))
	last := now
	assert.NoError(t, s.UpsertStats(ctx, &internal.UserStats{
		UserID:          "u1",
		TotalHours:      1.5,
		SessionsCount:   1,
		CurrentStreak:   1,
		LastSessionDate: &last,
		WeeklyData:      []float64{1.5, 0, 0, 0, 0, 0, 0},
	}))
	assert.NoError(t, s.SaveSchedule(ctx, &internal.Schedule{ID: "sch1", UserID: "u1", Time: "08:00", Days: []string{"Mon"}, Enabled: true, Name: "Morning", CreatedAt: now}))
	assert.NoError(t, s.Close())

	reloaded := newTestFileStorage(t, dir)
	defer reloaded.Close()

	got, err := reloaded.GetSession(ctx, "s1")
	assert.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	stats, err := reloaded.GetStats(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, 1.5, stats.TotalHours)
	assert.Len(t, stats.WeeklyData, 7)

	schedules, err := reloaded.ListSchedules(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, schedules, 1)
	assert.Equal(t, "Morning", schedules[0].Name)
}

func TestFileStorage_UpsertStatsReplaces(t *testing.T) {
	s := newTestFileStorage(t, t.TempDir())
	defer s.Close()
	ctx := context.Background()

	assert.NoError(t, s.UpsertStats(ctx, &internal.UserStats{UserID: "u1", TotalHours: 1, SessionsCount: 1, WeeklyData: make([]float64, 7)}))
	assert.NoError(t, s.UpsertStats(ctx, &internal.UserStats{UserID: "u1", TotalHours: 2, SessionsCount: 2, WeeklyData: make([]float64, 7)}))

	stats, err := s.GetStats(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, 2.0, stats.TotalHours)
	assert.Equal(t, 2, stats.SessionsCount)
}

func TestFileStorage_DeleteSchedule(t *testing.T) {
	s := newTestFileStorage(t, t.TempDir())
	defer s.Close()
	ctx := context.Background()

	assert.NoError(t, s.SaveSchedule(ctx, &internal.Schedule{ID: "sch1", UserID: "u1", Time: "08:00", Days: []string{"Mon"}, Enabled: true, Name: "Morning", CreatedAt: time.Now().UTC()}))
	assert.NoError(t, s.DeleteSchedule(ctx, "sch1"))
	assert.ErrorIs(t, s.DeleteSchedule(ctx, "sch1"), ErrNotFound)

	schedules, err := s.ListSchedules(ctx, "u1")
	assert.NoError(t, err)
	assert.Empty(t, schedules)
}
