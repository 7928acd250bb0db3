package services

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/serdvr66/orderQPro/api"
	"github.com/serdvr66/orderQPro/configs"
	"github.com/serdvr66/orderQPro/pkg/session"
	"github.com/serdvr66/orderQPro/repository"
	"github.com/serdvr66/orderQPro/utils"
)

var ErrMissingCredentials = errors.New("email and password are required")

// AuthService owns the session lifecycle: login fills the shared session
// object and persists it, restore replays a stored login across restarts,
// logout tears both down with a best-effort push-token unregistration.
type AuthService struct {
	api  *api.Client
	sess *session.Session
	repo *repository.SessionRepository
	cfg  *configs.Config
	log  zerolog.Logger

	mu        sync.Mutex
	pushToken string
}

func NewAuthService(client *api.Client, sess *session.Session, repo *repository.SessionRepository, cfg *configs.Config, log zerolog.Logger) *AuthService {
	return &AuthService{api: client, sess: sess, repo: repo, cfg: cfg, log: log}
}

func (s *AuthService) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	user, token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.sess.Begin(user, token)
	if err := s.repo.Save(user, token); err != nil {
		// the login itself stands; only the restart convenience is lost
		s.log.Warn().Err(err).Msg("could not persist session")
	}
	s.log.Info().Str("email", user.Email).Msg("logged in")
	return nil
}

// Restore replays a persisted session. Tokens whose JWT expiry has passed
// are discarded on the spot.
func (s *AuthService) Restore() bool {
	user, token, err := s.repo.Load()
	if err != nil {
		if !errors.Is(err, repository.ErrNoSession) {
			s.log.Warn().Err(err).Msg("could not read stored session")
		}
		return false
	}
	if utils.TokenExpired(token) {
		s.log.Info().Msg("stored session expired, discarding")
		if err := s.repo.Clear(); err != nil {
			s.log.Warn().Err(err).Msg("could not clear stored session")
		}
		return false
	}
	s.sess.Begin(user, token)
	s.log.Info().Str("email", user.Email).Msg("session restored")
	return true
}

// Logout unregisters the device push token first (best effort, a failure
// never blocks the logout), then clears the session in memory and on disk.
func (s *AuthService) Logout(ctx context.Context) {
	s.mu.Lock()
	token := s.pushToken
	s.pushToken = ""
	s.mu.Unlock()

	if token != "" {
		if err := s.api.UnregisterPushToken(ctx, token); err != nil {
			s.log.Warn().Err(err).Msg("push token unregistration failed")
		}
	}
	s.sess.End()
	if err := s.repo.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("could not clear stored session")
	}
	s.log.Info().Msg("logged out")
}

func (s *AuthService) Authenticated() bool { return s.sess.Active() }

func (s *AuthService) HasPermission(permission string) bool {
	return s.sess.User().Can(permission)
}

func (s *AuthService) HasRole(role string) bool {
	return s.sess.User().HasRole(role)
}

func (s *AuthService) HasAnyPermission(permissions ...string) bool {
	for _, p := range permissions {
		if s.HasPermission(p) {
			return true
		}
	}
	return false
}

func (s *AuthService) HasAllPermissions(permissions ...string) bool {
	for _, p := range permissions {
		if !s.HasPermission(p) {
			return false
		}
	}
	return true
}

// RegisterPushToken registers the device token for the logged-in company
// and remembers it for unregistration at logout.
func (s *AuthService) RegisterPushToken(ctx context.Context, token string) error {
	user := s.sess.User()
	if err := s.api.RegisterPushToken(ctx, token, s.cfg.DeviceID, s.cfg.Platform, user.CompanyID); err != nil {
		return err
	}
	s.mu.Lock()
	s.pushToken = token
	s.mu.Unlock()
	return nil
}
