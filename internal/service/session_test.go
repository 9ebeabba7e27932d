package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yourname/focustimer/internal"
	"github.com/yourname/focustimer/internal/storage"
)

func TestStartSession(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	session, err := StartSession(ctx, s, &StartSessionRequest{Duration: 25, UserID: "u1"})
	assert.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, 25, session.Duration)
	assert.False(t, session.Completed)
	assert.Nil(t, session.EndTime)
	assert.Contains(t, MotivationalQuotes, session.Quote)

	got, err := s.GetSession(ctx, session.ID)
	assert.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
}

func TestStartSession_DefaultsUser(t *testing.T) {
	s := setupTestStorage(t)

	session, err := StartSession(context.Background(), s, &StartSessionRequest{Duration: 25})
	assert.NoError(t, err)
	assert.Equal(t, internal.DefaultUserID, session.UserID)
}

func TestCompleteSession(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	session, err := StartSession(ctx, s, &StartSessionRequest{Duration: 25, UserID: "u1"})
	assert.NoError(t, err)

	duration, err := CompleteSession(ctx, s, s, &CompleteSessionRequest{SessionID: session.ID, UserID: "u1"})
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, duration, 0.0)

	got, err := s.GetSession(ctx, session.ID)
	assert.NoError(t, err)
	assert.True(t, got.Completed)
	assert.NotNil(t, got.EndTime)

	stats, err := s.GetStats(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.SessionsCount)
	assert.Equal(t, 1, stats.CurrentStreak)
}

func TestCompleteSession_UnknownID(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	_, err := CompleteSession(ctx, s, s, &CompleteSessionRequest{SessionID: "missing", UserID: "u1"})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// No stats mutation on failure
	_, err = s.GetStats(ctx, "u1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListHistory_NewestFirstWithLimit(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	first, err := StartSession(ctx, s, &StartSessionRequest{Duration: 25, UserID: "u1"})
	assert.NoError(t, err)
	second, err := StartSession(ctx, s, &StartSessionRequest{Duration: 50, UserID: "u1"})
	assert.NoError(t, err)

	sessions, err := ListHistory(ctx, s, "u1", 1)
	assert.NoError(t, err)
	assert.Len(t, sessions, 1)
	assert.Equal(t, second.ID, sessions[0].ID)

	sessions, err = ListHistory(ctx, s, "u1", 10)
	assert.NoError(t, err)
	assert.Len(t, sessions, 2)
	assert.Equal(t, first.ID, sessions[1].ID)
}

func TestListHistory_EmptyUser(t *testing.T) {
	s := setupTestStorage(t)

	sessions, err := ListHistory(context.Background(), s, "nobody", 10)
	assert.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestValidateStartSessionRequest(t *testing.T) {
	assert.Error(t, ValidateStartSessionRequest(&StartSessionRequest{}))
	assert.NoError(t, ValidateStartSessionRequest(&StartSessionRequest{Duration: 25}))
}
