package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourname/focustimer/internal"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// --- SessionRepository ---

func (p *PostgresStorage) SaveSession(ctx context.Context, session *internal.FocusSession) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO focus_sessions (id, user_id, start_time, end_time, duration, completed, quote, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		session.ID, session.UserID, session.StartTime, session.EndTime, session.Duration, session.Completed, session.Quote, session.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert session: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) GetSession(ctx context.Context, id string) (*internal.FocusSession, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, user_id, start_time, end_time, duration, completed, quote, created_at FROM focus_sessions WHERE id = $1`, id)
	var s internal.FocusSession
	if err := row.Scan(&s.ID, &s.UserID, &s.StartTime, &s.EndTime, &s.Duration, &s.Completed, &s.Quote, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.logger.Errorf("failed to scan session: %v", err)
		return nil, err
	}
	return &s, nil
}

func (p *PostgresStorage) UpdateSession(ctx context.Context, session *internal.FocusSession) error {
	tag, err := p.pool.Exec(ctx, `UPDATE focus_sessions SET end_time = $2, completed = $3 WHERE id = $1`,
		session.ID, session.EndTime, session.Completed)
	if err != nil {
		p.logger.Errorf("failed to update session: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStorage) ListSessions(ctx context.Context, userID string, limit int) ([]internal.FocusSession, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, start_time, end_time, duration, completed, quote, created_at FROM focus_sessions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		p.logger.Errorf("failed to query sessions: %v", err)
		return nil, err
	}
	defer rows.Close()

	sessions := []internal.FocusSession{}
	for rows.Next() {
		var s internal.FocusSession
		err := rows.Scan(&s.ID, &s.UserID, &s.StartTime, &s.EndTime, &s.Duration, &s.Completed, &s.Quote, &s.CreatedAt)
		if err != nil {
			p.logger.Errorf("failed to scan session: %v", err)
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// --- StatsRepository ---

func (p *PostgresStorage) GetStats(ctx context.Context, userID string) (*internal.UserStats, error) {
	row := p.pool.QueryRow(ctx, `SELECT user_id, total_hours, sessions_count, current_streak, last_session_date, weekly_data FROM user_stats WHERE user_id = $1`, userID)
	var st internal.UserStats
	if err := row.Scan(&st.UserID, &st.TotalHours, &st.SessionsCount, &st.CurrentStreak, &st.LastSessionDate, &st.WeeklyData); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.logger.Errorf("failed to scan stats: %v", err)
		return nil, err
	}
	return &st, nil
}

func (p *PostgresStorage) UpsertStats(ctx context.Context, stats *internal.UserStats) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO user_stats (user_id, total_hours, sessions_count, current_streak, last_session_date, weekly_data)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			total_hours = EXCLUDED.total_hours,
			sessions_count = EXCLUDED.sessions_count,
			current_streak = EXCLUDED.current_streak,
			last_session_date = EXCLUDED.last_session_date,
			weekly_data = EXCLUDED.weekly_data`,
		stats.UserID, stats.TotalHours, stats.SessionsCount, stats.CurrentStreak, stats.LastSessionDate, stats.WeeklyData)
	if err != nil {
		p.logger.Errorf("failed to upsert stats: %v", err)
		return err
	}
	return nil
}

// --- ScheduleRepository ---

func (p *PostgresStorage) SaveSchedule(ctx context.Context, schedule *internal.Schedule) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO schedules (id, user_id, time, days, enabled, name, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		schedule.ID, schedule.UserID, schedule.Time, schedule.Days, schedule.Enabled, schedule.Name, schedule.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert schedule: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) GetSchedule(ctx context.Context, id string) (*internal.Schedule, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, user_id, time, days, enabled, name, created_at FROM schedules WHERE id = $1`, id)
	var sched internal.Schedule
	if err := row.Scan(&sched.ID, &sched.UserID, &sched.Time, &sched.Days, &sched.Enabled, &sched.Name, &sched.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.logger.Errorf("failed to scan schedule: %v", err)
		return nil, err
	}
	return &sched, nil
}

func (p *PostgresStorage) UpdateSchedule(ctx context.Context, schedule *internal.Schedule) error {
	tag, err := p.pool.Exec(ctx, `UPDATE schedules SET time = $2, days = $3, enabled = $4, name = $5 WHERE id = $1`,
		schedule.ID, schedule.Time, schedule.Days, schedule.Enabled, schedule.Name)
	if err != nil {
		p.logger.Errorf("failed to update schedule: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStorage) DeleteSchedule(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		p.logger.Errorf("failed to delete schedule: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStorage) ListSchedules(ctx context.Context, userID string) ([]internal.Schedule, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, time, days, enabled, name, created_at FROM schedules WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		p.logger.Errorf("failed to query schedules: %v", err)
		return nil, err
	}
	defer rows.Close()

	schedules := []internal.Schedule{}
	for rows.Next() {
		var sched internal.Schedule
		err := rows.Scan(&sched.ID, &sched.UserID, &sched.Time, &sched.Days, &sched.Enabled, &sched.Name, &sched.CreatedAt)
		if err != nil {
			p.logger.Errorf("failed to scan schedule: %v", err)
			return nil, err
		}
		schedules = append(schedules, sched)
	}
	return schedules, rows.Err()
}

// --- Compile-time assertions ---
var _ Backend = (*PostgresStorage)(nil)
