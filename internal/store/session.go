package store

import (
	"context"
	"sync"

	"github.com/Varun5711/mealcounter/internal/logger"
	"github.com/Varun5711/mealcounter/internal/models/user"
	"github.com/Varun5711/mealcounter/internal/storage"
)

// SessionState is a point-in-time copy of the session.
type SessionState struct {
	Token           string
	User            *user.Profile
	IsAuthenticated bool
}

// persistedSession is the on-disk shape. A nil token is written as null.
type persistedSession struct {
	Token           *string       `json:"token"`
	User            *user.Profile `json:"user"`
	IsAuthenticated bool          `json:"isAuthenticated"`
}

// Session holds the single active credential. It never inspects the token.
type Session struct {
	mu     sync.Mutex
	st     storage.Storage
	log    *logger.Logger
	token  string
	user   *user.Profile
	authed bool
}

// NewSession restores the session persisted in st, if any.
func NewSession(ctx context.Context, st storage.Storage, log *logger.Logger) (*Session, error) {
	if log == nil {
		log = logger.Nop()
	}
	s := &Session{st: st, log: log}

	var p persistedSession
	found, err := load(ctx, st, SessionNamespace, &p)
	if err != nil {
		return nil, err
	}
	if found {
		if p.Token != nil {
			s.token = *p.Token
		}
		s.user = p.User
		s.authed = s.token != ""
		log.Debug("restored session (authenticated=%t)", s.authed)
	}

	return s, nil
}

// SetToken replaces the token. An empty token means signed out.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.authed = token != ""
	return s.persistLocked()
}

// SetUser replaces the profile without touching the token.
func (s *Session) SetUser(profile *user.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = cloneProfile(profile)
	return s.persistLocked()
}

// Logout clears the token and profile together.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil
	s.authed = false
	return s.persistLocked()
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) User() *user.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProfile(s.user)
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authed
}

func (s *Session) Snapshot() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionState{
		Token:           s.token,
		User:            cloneProfile(s.user),
		IsAuthenticated: s.authed,
	}
}

// persistLocked writes the current state through. The in-memory update is
// kept even when the write fails.
func (s *Session) persistLocked() error {
	p := persistedSession{User: s.user, IsAuthenticated: s.authed}
	if s.token != "" {
		token := s.token
		p.Token = &token
	}

	if err := save(context.Background(), s.st, SessionNamespace, p); err != nil {
		s.log.Error("Failed to persist session: %v", err)
		return err
	}
	return nil
}

func cloneProfile(p *user.Profile) *user.Profile {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
