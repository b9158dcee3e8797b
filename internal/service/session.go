package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Harshitk-cp/landlord/internal/auth"
	"github.com/Harshitk-cp/landlord/internal/domain"
	"github.com/Harshitk-cp/landlord/internal/store"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginResult struct {
	Token   string
	OrgName string
	Email   string
}

type SessionService struct {
	registry domain.Registry
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenService
	logger   *zap.Logger
}

func NewSessionService(r domain.Registry, h *auth.PasswordHasher, t *auth.TokenService, logger *zap.Logger) *SessionService {
	return &SessionService{
		registry: r,
		hasher:   h,
		tokens:   t,
		logger:   logger,
	}
}

// Login verifies admin credentials and issues a session token. Unknown email
// and wrong password return the same error so callers cannot tell which
// addresses are registered.
func (s *SessionService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	admin, err := s.registry.FindAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	org, err := s.registry.FindOrgByAdminID(ctx, admin.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("login by admin with no organization",
				zap.String("admin_id", admin.ID.Hex()),
			)
			return nil, ErrOrgNotFound
		}
		return nil, err
	}

	token, err := s.tokens.Issue(admin.ID.Hex(), org.ID.Hex(), org.Name)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, OrgName: org.Name, Email: email}, nil
}
