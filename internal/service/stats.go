package service

import (
	"context"
	"errors"
	"time"

	"github.com/yourname/focustimer/internal"
	"github.com/yourname/focustimer/internal/storage"
)

// WeekdayIndex maps a timestamp to a Monday-based weekday index
// (0 = Monday ... 6 = Sunday).
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// daysBetween returns the calendar-day difference b - a, ignoring time of day.
func daysBetween(a, b time.Time) int {
	a, b = a.UTC(), b.UTC()
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}

// ApplyCompletion folds one completed session into the user's stats and
// persists the result. Inputs are trusted: a negative duration or an
// out-of-order timestamp is applied as-is, and the read-modify-write is
// last-writer-wins across concurrent requests.
//
// Streak rules relative to the previous completion's calendar date:
// same day keeps the streak, the next day increments it, anything else
// (including going backwards) resets it to 1.
func ApplyCompletion(ctx context.Context, statsRepo storage.StatsRepository, userID string, actualHours float64, completedAt time.Time) (*internal.UserStats, error) {
	stats, err := statsRepo.GetStats(ctx, userID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		stats = internal.NewUserStats(userID)
		stats.TotalHours = actualHours
		stats.SessionsCount = 1
		stats.CurrentStreak = 1
	} else {
		if stats.LastSessionDate != nil {
			switch daysBetween(*stats.LastSessionDate, completedAt) {
			case 0:
				// same calendar day, streak unchanged
			case 1:
				stats.CurrentStreak++
			default:
				stats.CurrentStreak = 1
			}
		} else {
			stats.CurrentStreak = 1
		}
		stats.TotalHours += actualHours
		stats.SessionsCount++
	}

	if len(stats.WeeklyData) != 7 {
		weekly := make([]float64, 7)
		copy(weekly, stats.WeeklyData)
		stats.WeeklyData = weekly
	}
	stats.WeeklyData[WeekdayIndex(completedAt)] += actualHours

	completed := completedAt
	stats.LastSessionDate = &completed

	if err := statsRepo.UpsertStats(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetStats returns the persisted stats for a user, or a transient zero-value
// record when none exists yet. The default is never written to storage.
func GetStats(ctx context.Context, statsRepo storage.StatsRepository, userID string) (*internal.UserStats, error) {
	if userID == "" {
		userID = internal.DefaultUserID
	}
	stats, err := statsRepo.GetStats(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return internal.NewUserStats(userID), nil
		}
		return nil, err
	}
	return stats, nil
}
