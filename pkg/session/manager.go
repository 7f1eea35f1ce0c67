package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"pokertrainer-server/pkg/action"
	"pokertrainer-server/pkg/puzzle"
	"pokertrainer-server/pkg/table"
)

// Manager deals and grades puzzles for sessions held in a Store
type Manager struct {
	store     Store
	assembler *puzzle.Assembler

	// serializes read-modify-write cycles on the store
	mu sync.Mutex

	now func() time.Time
}

// NewManager returns a session manager
func NewManager(store Store, assembler *puzzle.Assembler) *Manager {
	return &Manager{
		store:     store,
		assembler: assembler,
		now:       time.Now,
	}
}

// Start creates a session and deals its first puzzle
func (m *Manager) Start(ctx context.Context, settings table.Settings) (*Session, error) {
	p, err := m.assembler.Create(settings)
	if err != nil {
		return nil, err
	}

	now := m.now()
	s := &Session{
		UUID:     uuid.New().String(),
		Settings: settings,
		Created:  now,
		Updated:  now,
	}
	s.deal(p)

	if err := m.store.Create(ctx, s); err != nil {
		return nil, err
	}

	m.log(s).Info("session: started")
	return s, nil
}

// Get returns the session
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	return m.store.Get(ctx, id)
}

// Answer grades the user's action on the current puzzle
func (m *Manager) Answer(ctx context.Context, id string, a action.Action) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	res, err := s.grade(a)
	if err != nil {
		return nil, err
	}

	s.Updated = m.now()
	if err := m.store.Save(ctx, s); err != nil {
		return nil, err
	}

	m.log(s).WithFields(logrus.Fields{
		"action":  a,
		"correct": res.Correct,
	}).Debug("session: answered")

	return res, nil
}

// Next deals a new puzzle with the session's settings
func (m *Manager) Next(ctx context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return m.redeal(ctx, s)
}

// UpdateSettings replaces the session's settings and deals a puzzle for them right away.
// The running score is kept.
func (m *Manager) UpdateSettings(ctx context.Context, id string, settings table.Settings) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	s.Settings = settings
	return m.redeal(ctx, s)
}

func (m *Manager) redeal(ctx context.Context, s *Session) (*Session, error) {
	p, err := m.assembler.Create(s.Settings)
	if err != nil {
		return nil, err
	}

	s.deal(p)
	s.Updated = m.now()
	if err := m.store.Save(ctx, s); err != nil {
		return nil, err
	}

	m.log(s).Debug("session: dealt")
	return s, nil
}

func (m *Manager) log(s *Session) *logrus.Entry {
	fields := logrus.Fields{
		"session":     s.UUID,
		"playerCount": s.Settings.PlayerCount,
		"position":    s.Settings.UserPosition,
		"bigBlinds":   s.Settings.BigBlinds,
	}

	if s.Puzzle != nil {
		fields["puzzleID"] = s.Puzzle.ID
	}

	return logrus.WithFields(fields)
}
