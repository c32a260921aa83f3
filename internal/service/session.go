package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/forgo/clubhive/api/internal/model"
)

// SessionIdentityRepository defines the identity lookups used for sign-in
type SessionIdentityRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.Identity, error)
	FirstWithRole(ctx context.Context, role model.Role) (*model.Identity, error)
}

// SessionRepository persists the signed-in identity
type SessionRepository interface {
	Load(ctx context.Context) (*model.Identity, error)
	Save(ctx context.Context, identity *model.Identity) error
	Clear(ctx context.Context) error
}

// SessionService signs identities in and out
type SessionService struct {
	identities      SessionIdentityRepository
	sessions        SessionRepository
	allowRoleSwitch bool
}

// SessionServiceConfig holds configuration for the session service
type SessionServiceConfig struct {
	Identities      SessionIdentityRepository
	Sessions        SessionRepository
	AllowRoleSwitch bool
}

// NewSessionService creates a new session service
func NewSessionService(cfg SessionServiceConfig) *SessionService {
	return &SessionService{
		identities:      cfg.Identities,
		sessions:        cfg.Sessions,
		allowRoleSwitch: cfg.AllowRoleSwitch,
	}
}

// Restore builds a session from the persisted identity.
// An absent or unreadable record yields an anonymous session.
func (s *SessionService) Restore(ctx context.Context) (*model.Session, error) {
	identity, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	return model.NewSession(identity), nil
}

// Login signs in the identity whose email matches case-insensitively.
// It returns false and leaves the session unchanged when nothing matches.
func (s *SessionService) Login(ctx context.Context, sess *model.Session, email string) (bool, error) {
	if strings.TrimSpace(email) == "" {
		return false, nil
	}

	identity, err := s.identities.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if identity == nil {
		slog.Info("login rejected", slog.String("reason", "unknown email"))
		return false, nil
	}

	if err := s.sessions.Save(ctx, identity); err != nil {
		return false, err
	}
	sess.Set(identity)
	slog.Info("login", slog.String("user_id", identity.ID), slog.String("role", string(identity.Role)))
	return true, nil
}

// Logout clears the session and the persisted identity
func (s *SessionService) Logout(ctx context.Context, sess *model.Session) error {
	sess.Clear()
	return s.sessions.Clear(ctx)
}

// SwitchRole replaces the signed-in identity with the first identity holding
// role. It returns false when anonymous or when no identity has the role.
func (s *SessionService) SwitchRole(ctx context.Context, sess *model.Session, role model.Role) (bool, error) {
	if !s.allowRoleSwitch {
		return false, ErrRoleSwitchDisabled
	}
	if !sess.IsAuthenticated() {
		return false, nil
	}

	identity, err := s.identities.FirstWithRole(ctx, role)
	if err != nil {
		return false, err
	}
	if identity == nil {
		return false, nil
	}

	if err := s.sessions.Save(ctx, identity); err != nil {
		return false, err
	}
	sess.Set(identity)
	return true, nil
}

// Current returns the signed-in identity, or nil when anonymous
func (s *SessionService) Current(sess *model.Session) *model.Identity {
	return sess.Current()
}
