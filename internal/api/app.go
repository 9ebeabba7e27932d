package api

import (
	"github.com/yourname/focustimer/internal"
	"github.com/yourname/focustimer/internal/storage"
)

type App interface {
	Logger() internal.Logger
	SessionRepo() storage.SessionRepository
	StatsRepo() storage.StatsRepository
	ScheduleRepo() storage.ScheduleRepository
}

type Server struct {
	logger    internal.Logger
	sessions  storage.SessionRepository
	stats     storage.StatsRepository
	schedules storage.ScheduleRepository
}

func NewServer(logger internal.Logger, sessions storage.SessionRepository, stats storage.StatsRepository, schedules storage.ScheduleRepository) *Server {
	return &Server{logger: logger, sessions: sessions, stats: stats, schedules: schedules}
}

func (s *Server) Logger() internal.Logger                  { return s.logger }
func (s *Server) SessionRepo() storage.SessionRepository   { return s.sessions }
func (s *Server) StatsRepo() storage.StatsRepository       { return s.stats }
func (s *Server) ScheduleRepo() storage.ScheduleRepository { return s.schedules }

var _ App = (*Server)(nil)
