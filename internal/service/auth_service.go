package service

import (
	"context"
	"strings"

	"github.com/Varun5711/mealcounter/internal/logger"
	"github.com/Varun5711/mealcounter/internal/models/user"
	"github.com/Varun5711/mealcounter/internal/store"
	"github.com/Varun5711/mealcounter/internal/validation"
)

type RegisterForm struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

type LoginForm struct {
	Email    string
	Password string
}

type AuthService struct {
	gw      Authenticator
	session *store.Session
	log     *logger.Logger
}

func NewAuthService(gw Authenticator, session *store.Session, log *logger.Logger) *AuthService {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthService{
		gw:      gw,
		session: session,
		log:     log,
	}
}

// Register creates an account and signs in with the returned token. The
// profile kept in the session is the one entered in the form.
func (s *AuthService) Register(ctx context.Context, form RegisterForm) (*user.Profile, error) {
	req := user.RegisterRequest{
		FirstName: strings.TrimSpace(form.FirstName),
		LastName:  strings.TrimSpace(form.LastName),
		Email:     strings.TrimSpace(form.Email),
		Password:  form.Password,
	}
	if err := validation.ValidateRegistration(req, form.ConfirmPassword); err != nil {
		return nil, err
	}

	resp, err := s.gw.Register(ctx, req)
	if err != nil {
		s.log.Warn("Registration failed for %s: %v", req.Email, err)
		return nil, err
	}

	profile := req.Profile()
	s.signIn(resp.Token, &profile)
	s.log.Info("Registered and signed in as %s", req.Email)
	return &profile, nil
}

// Login signs in. The service returns no profile on login, so the one kept
// in the session is derived from the email address.
func (s *AuthService) Login(ctx context.Context, form LoginForm) (*user.Profile, error) {
	req := user.LoginRequest{
		Email:    strings.TrimSpace(form.Email),
		Password: form.Password,
	}
	if err := validation.ValidateLogin(req); err != nil {
		return nil, err
	}

	resp, err := s.gw.Login(ctx, req)
	if err != nil {
		s.log.Warn("Login failed for %s: %v", req.Email, err)
		return nil, err
	}

	profile := user.ProfileFromEmail(req.Email)
	s.signIn(resp.Token, &profile)
	s.log.Info("Signed in as %s", req.Email)
	return &profile, nil
}

func (s *AuthService) Logout() error {
	return s.session.Logout()
}

func (s *AuthService) CurrentUser() *user.Profile {
	return s.session.User()
}

// RequireAuth returns ErrNoSession unless a token is held.
func (s *AuthService) RequireAuth() error {
	if !s.session.IsAuthenticated() {
		return ErrNoSession
	}
	return nil
}

// signIn stores the credential. A failed write-through is logged by the
// store; the session stays usable for this run.
func (s *AuthService) signIn(token string, profile *user.Profile) {
	_ = s.session.SetToken(token)
	_ = s.session.SetUser(profile)
}
