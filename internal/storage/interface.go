package storage

import (
	"context"
	"errors"

	"github.com/yourname/focustimer/internal"
)

// ErrNotFound is returned when a referenced session or schedule id does not
// exist. Handlers map it to a 404.
var ErrNotFound = errors.New("storage: not found")

type SessionRepository interface {
	SaveSession(ctx context.Context, session *internal.FocusSession) error
	GetSession(ctx context.Context, id string) (*internal.FocusSession, error)
	UpdateSession(ctx context.Context, session *internal.FocusSession) error
	ListSessions(ctx context.Context, userID string, limit int) ([]internal.FocusSession, error)
}

type StatsRepository interface {
	GetStats(ctx context.Context, userID string) (*internal.UserStats, error)
	UpsertStats(ctx context.Context, stats *internal.UserStats) error
}

type ScheduleRepository interface {
	SaveSchedule(ctx context.Context, schedule *internal.Schedule) error
	GetSchedule(ctx context.Context, id string) (*internal.Schedule, error)
	UpdateSchedule(ctx context.Context, schedule *internal.Schedule) error
	DeleteSchedule(ctx context.Context, id string) error
	ListSchedules(ctx context.Context, userID string) ([]internal.Schedule, error)
}

// Backend is the full persistence surface a storage implementation provides.
type Backend interface {
	SessionRepository
	StatsRepository
	ScheduleRepository
	Close() error
}
