package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yourname/focustimer/internal"
	"github.com/yourname/focustimer/internal/storage"
)

var validate = validator.New()

// DefaultHistoryLimit caps history queries when the client sends no limit.
const DefaultHistoryLimit = 50

type StartSessionRequest struct {
	Duration int    `json:"duration" validate:"required,gt=0"`
	UserID   string `json:"userId"`
}

type CompleteSessionRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	UserID    string `json:"userId"`
}

func ValidateStartSessionRequest(body *StartSessionRequest) error {
	return validate.Struct(body)
}

func ValidateCompleteSessionRequest(body *CompleteSessionRequest) error {
	return validate.Struct(body)
}

func StartSession(ctx context.Context, sessionRepo storage.SessionRepository, body *StartSessionRequest) (*internal.FocusSession, error) {
	userID := body.UserID
	if userID == "" {
		userID = internal.DefaultUserID
	}
	now := time.Now().UTC()
	session := &internal.FocusSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartTime: now,
		Duration:  body.Duration,
		Quote:     RandomQuote(),
		CreatedAt: now,
	}
	if err := sessionRepo.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CompleteSession stamps the end time, marks the session completed and folds
// the elapsed hours into the user's stats. Completion is not idempotent: a
// second call restamps the end time and counts the session again, matching
// the behavior clients already depend on.
func CompleteSession(ctx context.Context, sessionRepo storage.SessionRepository, statsRepo storage.StatsRepository, body *CompleteSessionRequest) (float64, error) {
	userID := body.UserID
	if userID == "" {
		userID = internal.DefaultUserID
	}

	session, err := sessionRepo.GetSession(ctx, body.SessionID)
	if err != nil {
		return 0, err
	}

	endTime := time.Now().UTC()
	session.EndTime = &endTime
	session.Completed = true
	if err := sessionRepo.UpdateSession(ctx, session); err != nil {
		return 0, err
	}

	actualHours := endTime.Sub(session.StartTime).Hours()
	if _, err := ApplyCompletion(ctx, statsRepo, userID, actualHours, endTime); err != nil {
		return 0, err
	}
	return actualHours, nil
}

func ListHistory(ctx context.Context, sessionRepo storage.SessionRepository, userID string, limit int) ([]internal.FocusSession, error) {
	if userID == "" {
		userID = internal.DefaultUserID
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return sessionRepo.ListSessions(ctx, userID, limit)
}
