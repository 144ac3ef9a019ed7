package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/fintrack/internal"
)

// Gateway is the slice of the remote API the user flows need. Users are
// looked up by username; the resource has no dedicated login endpoint.
type Gateway interface {
	CreateUser(ctx context.Context, rec *Record) (*Record, error)
	FindUsersByUsername(ctx context.Context, username string) ([]Record, error)
}

// SessionStore is where the authenticated profile is kept and persisted.
type SessionStore interface {
	Set(ctx context.Context, u *User) error
	Current() *User
}

// Service implements signup, login and logout against the remote API.
//
// The remote API performs no hashing and no token auth: registration stores
// the plaintext password and login compares plaintext against what the lookup
// returns. A bcrypt utility exists under internal/auth but is intentionally
// not wired here, to preserve the behavior the backend actually exhibits.
type Service struct {
	gateway  Gateway
	sessions SessionStore
	logger   *slog.Logger
}

func NewService(gateway Gateway, sessions SessionStore, logger *slog.Logger) *Service {
	return &Service{
		gateway:  gateway,
		sessions: sessions,
		logger:   logger,
	}
}

// Register validates the form, creates the remote user and establishes the
// session with the password stripped from the stored profile.
func (s *Service) Register(ctx context.Context, dto RegistrationDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("registration validation failed", "error", err)
		return nil, err
	}

	rec := &Record{
		User: User{
			FirstName: dto.FirstName,
			LastName:  dto.LastName,
			Username:  dto.Username,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		},
		Password: dto.Password,
	}

	created, err := s.gateway.CreateUser(ctx, rec)
	if err != nil {
		s.logger.Error("registration failed", "error", err, "username", dto.Username)
		return nil, err
	}

	u := created.Stripped()
	s.persistSession(ctx, &u)

	s.logger.Info("user registered", "user_id", u.ID, "username", u.Username)
	return &u, nil
}

// Login looks the username up, compares the plaintext password and persists
// the stripped profile as the active session. An unknown username writes
// nothing to storage.
func (s *Service) Login(ctx context.Context, username, password string) (*User, error) {
	records, err := s.gateway.FindUsersByUsername(ctx, username)
	if err != nil {
		s.logger.Error("login lookup failed", "error", err, "username", username)
		return nil, err
	}
	if len(records) == 0 {
		s.logger.Warn("login failed: user not found", "username", username)
		return nil, internal.ErrUserNotFound
	}

	rec := records[0]
	if rec.Password != password {
		s.logger.Warn("login failed: invalid password", "username", username)
		return nil, internal.ErrInvalidPassword
	}

	u := rec.Stripped()
	s.persistSession(ctx, &u)

	s.logger.Info("user logged in", "user_id", u.ID, "username", u.Username)
	return &u, nil
}

// Logout removes the persisted session and clears the in-memory value.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Set(ctx, nil); err != nil {
		s.logger.Error("logout failed to clear session", "error", err)
		return err
	}
	s.logger.Info("user logged out")
	return nil
}

// persistSession is availability-over-durability: a storage failure is
// logged, the auth flow still succeeds, and the session just won't survive a
// restart.
func (s *Service) persistSession(ctx context.Context, u *User) {
	if err := s.sessions.Set(ctx, u); err != nil {
		s.logger.Warn("session not persisted, login will not survive restart", "error", err)
	}
}
