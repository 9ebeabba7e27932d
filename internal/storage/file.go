package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/yourname/focustimer/internal"
)

type FileStorage struct {
	sessions          map[string]*internal.FocusSession // id -> session
	userSessionIndex  map[string][]*internal.FocusSession
	stats             map[string]*internal.UserStats // userID -> stats
	schedules         map[string]*internal.Schedule  // id -> schedule
	userScheduleIndex map[string][]*internal.Schedule
	mu                sync.RWMutex
	sessionsFile      string
	statsFile         string
	schedulesFile     string
	saveSessionsChan  chan struct{}
	saveStatsChan     chan struct{}
	saveSchedulesChan chan struct{}
	shutdownChan      chan struct{}
	saveDelay         time.Duration
	logger            internal.Logger
}

func NewFileStorage(sessionsFile, statsFile, schedulesFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		sessions:          make(map[string]*internal.FocusSession),
		userSessionIndex:  make(map[string][]*internal.FocusSession),
		stats:             make(map[string]*internal.UserStats),
		schedules:         make(map[string]*internal.Schedule),
		userScheduleIndex: make(map[string][]*internal.Schedule),
		sessionsFile:      sessionsFile,
		statsFile:         statsFile,
		schedulesFile:     schedulesFile,
		saveSessionsChan:  make(chan struct{}, 1),
		saveStatsChan:     make(chan struct{}, 1),
		saveSchedulesChan: make(chan struct{}, 1),
		shutdownChan:      make(chan struct{}),
		saveDelay:         500 * time.Millisecond,
		logger:            logger,
	}

	for _, f := range []string{sessionsFile, statsFile, schedulesFile} {
		if dir := filepath.Dir(f); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, err
			}
		}
	}

	if err := s.loadSessions(); err != nil {
		logger.Errorf("storage: failed to load sessions: %v", err)
		return nil, err
	}
	if err := s.loadStats(); err != nil {
		logger.Errorf("storage: failed to load stats: %v", err)
		return nil, err
	}
	if err := s.loadSchedules(); err != nil {
		logger.Errorf("storage: failed to load schedules: %v", err)
		return nil, err
	}

	go s.saveWorker(s.saveSessionsChan, s.saveSessions)
	go s.saveWorker(s.saveStatsChan, s.saveStats)
	go s.saveWorker(s.saveSchedulesChan, s.saveSchedules)

	return s, nil
}

func (s *FileStorage) loadSessions() error {
	file, err := os.Open(s.sessionsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var sessions []*internal.FocusSession
	if err := json.NewDecoder(file).Decode(&sessions); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range sessions {
		s.sessions[sess.ID] = sess
		s.userSessionIndex[sess.UserID] = append(s.userSessionIndex[sess.UserID], sess)
	}

	// Sort each user's sessions newest first
	for userID := range s.userSessionIndex {
		sort.Slice(s.userSessionIndex[userID], func(i, j int) bool {
			return s.userSessionIndex[userID][i].CreatedAt.After(s.userSessionIndex[userID][j].CreatedAt)
		})
	}

	return nil
}

func (s *FileStorage) loadStats() error {
	file, err := os.Open(s.statsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var stats []*internal.UserStats
	if err := json.NewDecoder(file).Decode(&stats); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range stats {
		s.stats[st.UserID] = st
	}
	return nil
}

func (s *FileStorage) loadSchedules() error {
	file, err := os.Open(s.schedulesFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var schedules []*internal.Schedule
	if err := json.NewDecoder(file).Decode(&schedules); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sched := range schedules {
		s.schedules[sched.ID] = sched
		s.userScheduleIndex[sched.UserID] = append(s.userScheduleIndex[sched.UserID], sched)
	}
	for userID := range s.userScheduleIndex {
		sort.Slice(s.userScheduleIndex[userID], func(i, j int) bool {
			return s.userScheduleIndex[userID][i].CreatedAt.Before(s.userScheduleIndex[userID][j].CreatedAt)
		})
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveSessions() error {
	s.mu.RLock()
	sessions := make([]*internal.FocusSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.sessionsFile, sessions)
}

func (s *FileStorage) saveStats() error {
	s.mu.RLock()
	stats := make([]*internal.UserStats, 0, len(s.stats))
	for _, st := range s.stats {
		stats = append(stats, st)
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.statsFile, stats)
}

func (s *FileStorage) saveSchedules() error {
	s.mu.RLock()
	schedules := make([]*internal.Schedule, 0, len(s.schedules))
	for _, sched := range s.schedules {
		schedules = append(schedules, sched)
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.schedulesFile, schedules)
}

// saveWorker batches save signals so bursts of writes hit the disk once.
func (s *FileStorage) saveWorker(trigger <-chan struct{}, save func() error) {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-trigger:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := save(); err != nil {
				s.logger.Errorf("storage: save failed: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// Close stops the background workers and flushes pending data synchronously.
func (s *FileStorage) Close() error {
	close(s.shutdownChan)

	if err := s.saveSessions(); err != nil {
		return err
	}
	if err := s.saveStats(); err != nil {
		return err
	}
	return s.saveSchedules()
}

// --- SessionRepository ---

func (s *FileStorage) SaveSession(ctx context.Context, session *internal.FocusSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *session
	s.sessions[cp.ID] = &cp

	// Insert maintaining newest-first order
	sessions := s.userSessionIndex[cp.UserID]
	inserted := false
	for i, existing := range sessions {
		if existing.CreatedAt.Before(cp.CreatedAt) {
			sessions = append(sessions[:i], append([]*internal.FocusSession{&cp}, sessions[i:]...)...)
			inserted = true
			break
		}
	}
	if !inserted {
		sessions = append(sessions, &cp)
	}
	s.userSessionIndex[cp.UserID] = sessions

	signal(s.saveSessionsChan)
	return nil
}

func (s *FileStorage) GetSession(ctx context.Context, id string) (*internal.FocusSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *sess
	return &cp, nil
}

func (s *FileStorage) UpdateSession(ctx context.Context, session *internal.FocusSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.sessions[session.ID]
	if !ok {
		return ErrNotFound
	}
	// CreatedAt never changes, so the index order is preserved
	*existing = *session

	signal(s.saveSessionsChan)
	return nil
}

func (s *FileStorage) ListSessions(ctx context.Context, userID string, limit int) ([]internal.FocusSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessionsPtr, ok := s.userSessionIndex[userID]
	if !ok {
		return []internal.FocusSession{}, nil
	}
	if limit > 0 && limit < len(sessionsPtr) {
		sessionsPtr = sessionsPtr[:limit]
	}

	sessions := make([]internal.FocusSession, len(sessionsPtr))
	for i, sess := range sessionsPtr {
		sessions[i] = *sess
	}
	return sessions, nil
}

// --- StatsRepository ---

func (s *FileStorage) GetStats(ctx context.Context, userID string) (*internal.UserStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.stats[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *st
	cp.WeeklyData = append([]float64(nil), st.WeeklyData...)
	return &cp, nil
}

func (s *FileStorage) UpsertStats(ctx context.Context, stats *internal.UserStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *stats
	cp.WeeklyData = append([]float64(nil), stats.WeeklyData...)
	s.stats[cp.UserID] = &cp

	signal(s.saveStatsChan)
	return nil
}

// --- ScheduleRepository ---

func (s *FileStorage) SaveSchedule(ctx context.Context, schedule *internal.Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *schedule
	s.schedules[cp.ID] = &cp
	s.userScheduleIndex[cp.UserID] = append(s.userScheduleIndex[cp.UserID], &cp)

	signal(s.saveSchedulesChan)
	return nil
}

func (s *FileStorage) GetSchedule(ctx context.Context, id string) (*internal.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sched, ok := s.schedules[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *sched
	return &cp, nil
}

func (s *FileStorage) UpdateSchedule(ctx context.Context, schedule *internal.Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.schedules[schedule.ID]
	if !ok {
		return ErrNotFound
	}
	*existing = *schedule

	signal(s.saveSchedulesChan)
	return nil
}

func (s *FileStorage) DeleteSchedule(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sched, ok := s.schedules[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.schedules, id)

	index := s.userScheduleIndex[sched.UserID]
	for i, existing := range index {
		if existing.ID == id {
			s.userScheduleIndex[sched.UserID] = append(index[:i], index[i+1:]...)
			break
		}
	}

	signal(s.saveSchedulesChan)
	return nil
}

func (s *FileStorage) ListSchedules(ctx context.Context, userID string) ([]internal.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schedulesPtr, ok := s.userScheduleIndex[userID]
	if !ok {
		return []internal.Schedule{}, nil
	}
	schedules := make([]internal.Schedule, len(schedulesPtr))
	for i, sched := range schedulesPtr {
		schedules[i] = *sched
	}
	return schedules, nil
}

// --- Compile-time assertions ---
var _ Backend = (*FileStorage)(nil)
