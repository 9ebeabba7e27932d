package internal

import "time"

// DefaultUserID is used whenever a request omits userId. There is no
// authentication; every client shares this identity unless it sends its own.
const DefaultUserID = "default_user"

type FocusSession struct {
	ID        string     `json:"id" bson:"_id"`
	UserID    string     `json:"userId" bson:"user_id"`
	StartTime time.Time  `json:"startTime" bson:"start_time"`
	EndTime   *time.Time `json:"endTime,omitempty" bson:"end_time,omitempty"`
	Duration  int        `json:"duration" bson:"duration"` // requested length in minutes
	Completed bool       `json:"completed" bson:"completed"`
	Quote     string     `json:"quote" bson:"quote"`
	CreatedAt time.Time  `json:"createdAt" bson:"created_at"`
}

type UserStats struct {
	UserID          string     `json:"userId" bson:"user_id"`
	TotalHours      float64    `json:"totalHours" bson:"total_hours"`
	SessionsCount   int        `json:"sessionsCount" bson:"sessions_count"`
	CurrentStreak   int        `json:"currentStreak" bson:"current_streak"`
	LastSessionDate *time.Time `json:"lastSessionDate,omitempty" bson:"last_session_date,omitempty"`
	WeeklyData      []float64  `json:"weeklyData" bson:"weekly_data"` // hours per weekday, Monday first
}

// NewUserStats returns a zero-value stats record with a 7-slot weekly series.
func NewUserStats(userID string) *UserStats {
	return &UserStats{UserID: userID, WeeklyData: make([]float64, 7)}
}

type Schedule struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"userId" bson:"user_id"`
	Time      string    `json:"time" bson:"time"` // wall-clock "HH:MM"
	Days      []string  `json:"days" bson:"days"` // ["Mon", "Wed", ...]
	Enabled   bool      `json:"enabled" bson:"enabled"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}
