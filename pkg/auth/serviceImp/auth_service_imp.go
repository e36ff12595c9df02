package serviceImp

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"potager/entities"
	"potager/pkg/apperr"
	"potager/pkg/auth/service"
	"potager/pkg/auth/token"
	"potager/pkg/logger"
	userrepo "potager/pkg/user/repository"
)

const (
	adminName         = "Administrateur Plant Wellness"
	minPasswordLength = 6
)

type AdminAccount struct {
	Email    string
	Password string
}

type authSvc struct {
	users  userrepo.UserRepository
	tokens *token.Issuer
	admin  AdminAccount
	log    *logger.Logger
	now    func() time.Time
}

func NewAuthService(users userrepo.UserRepository, tokens *token.Issuer, admin AdminAccount, log *logger.Logger) service.AuthService {
	return &authSvc{users: users, tokens: tokens, admin: admin, log: log, now: time.Now}
}

func (s *authSvc) Register(ctx context.Context, in service.RegisterInput) (*service.Session, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(in.Email))
	if err != nil {
		return nil, apperr.BadRequest("Invalid email address")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.BadRequest("name is required")
	}
	if len(in.Password) < minPasswordLength {
		return nil, apperr.BadRequest("password must be at least 6 characters")
	}

	if _, err := s.users.FindByEmail(ctx, addr.Address); err == nil {
		return nil, apperr.BadRequest("Email already registered")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("hash password", err)
	}
	u := &entities.User{
		Email:        addr.Address,
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: string(hash),
		IsActive:     true,
	}
	// a concurrent registration can win between the lookup and the insert
	if err := s.users.Create(ctx, u); errors.Is(err, apperr.ErrConflict) {
		return nil, apperr.BadRequest("Email already registered")
	} else if err != nil {
		return nil, err
	}
	s.log.WithField("user_id", u.ID).Info("user registered")
	return s.session(u)
}

func (s *authSvc) Login(ctx context.Context, in service.LoginInput) (*service.Session, error) {
	bad := apperr.Unauthorized("Incorrect email or password")

	u, err := s.users.FindByEmail(ctx, in.Email)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, bad
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return nil, bad
	}
	if !u.IsActive {
		return nil, apperr.Unauthorized("Account deactivated")
	}

	now := s.now().UTC()
	if err := s.users.Update(ctx, u.ID, map[string]any{"last_login": now}); err != nil {
		return nil, err
	}
	u.LastLogin = &now
	return s.session(u)
}

// AdminLogin creates the fixed admin account on first use and promotes it
// to premium on every later call.
func (s *authSvc) AdminLogin(ctx context.Context) (*service.Session, error) {
	now := s.now().UTC()

	u, err := s.users.FindByEmail(ctx, s.admin.Email)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		hash, herr := bcrypt.GenerateFromPassword([]byte(s.admin.Password), bcrypt.DefaultCost)
		if herr != nil {
			return nil, apperr.Internal("hash password", herr)
		}
		u = &entities.User{
			Email:        s.admin.Email,
			Name:         adminName,
			PasswordHash: string(hash),
			IsPremium:    true,
			IsAdmin:      true,
			IsActive:     true,
			LastLogin:    &now,
		}
		if err := s.users.Create(ctx, u); err != nil {
			return nil, err
		}
		s.log.WithField("user_id", u.ID).Warn("admin account created")
	case err != nil:
		return nil, err
	default:
		fields := map[string]any{"is_premium": true, "is_admin": true, "is_active": true, "last_login": now}
		if err := s.users.Update(ctx, u.ID, fields); err != nil {
			return nil, err
		}
		u.IsPremium, u.IsAdmin, u.IsActive, u.LastLogin = true, true, true, &now
	}
	return s.session(u)
}

func (s *authSvc) Authenticate(ctx context.Context, rawToken string) (*entities.User, error) {
	email, err := s.tokens.Parse(rawToken)
	if err != nil {
		return nil, apperr.Unauthorized("Could not validate credentials")
	}
	// no session cache: deactivation takes effect on the next request
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.Unauthorized("Could not validate credentials")
	}
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, apperr.Unauthorized("Account deactivated")
	}
	return u, nil
}

func (s *authSvc) session(u *entities.User) (*service.Session, error) {
	raw, exp, err := s.tokens.Issue(u.Email)
	if err != nil {
		return nil, apperr.Internal("issue token", err)
	}
	return &service.Session{AccessToken: raw, TokenType: "bearer", ExpiresAt: exp, User: u}, nil
}
