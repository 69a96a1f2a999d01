package services

import (
	"net/http"
	"time"

	"autobuy_backend/internal/auth"
	"autobuy_backend/internal/logger"
	"autobuy_backend/internal/models"
	"autobuy_backend/internal/repositories"
	"autobuy_backend/internal/services/dto"
	"autobuy_backend/pkg/apperrors"
)

type AuthService interface {
	// Register creates an unapproved account and, for non-admin roles,
	// dispatches a verification code and returns a session token for
	// the verification step. Admin accounts register approved and skip
	// the code entirely.
	Register(role models.Role, req *dto.RegisterRequest) (*models.Account, string, error)

	// Login probes roles in order and returns the account plus a
	// session token on success.
	Login(req *dto.LoginRequest) (*models.Account, string, error)
}

type AuthServiceImpl struct {
	accountRepo repositories.AccountRepository
	otpService  OTPService
	tokens      *auth.TokenService
	sessionTTL  time.Duration
	now         func() time.Time
}

func NewAuthService(
	accountRepo repositories.AccountRepository,
	otpService OTPService,
	tokens *auth.TokenService,
	sessionTTL time.Duration,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		accountRepo: accountRepo,
		otpService:  otpService,
		tokens:      tokens,
		sessionTTL:  sessionTTL,
		now:         time.Now,
	}
}

func (s *AuthServiceImpl) WithClock(now func() time.Time) *AuthServiceImpl {
	s.now = now
	return s
}

func (s *AuthServiceImpl) Register(role models.Role, req *dto.RegisterRequest) (*models.Account, string, error) {
	if err := s.checkRequired(role, req); err != nil {
		return nil, "", err
	}

	taken, err := s.accountRepo.ExistsByEmail(role, req.Email)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}
	if taken {
		return nil, "", apperrors.ErrEmailTaken
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, "", err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	account := &models.Account{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Username:            req.Username,
		Email:               req.Email,
		PasswordHash:        hash,
		Role:                role,
		Approved:            !role.RequiresApproval(),
		Active:              true,
		LastChangedPassword: s.now().Truncate(time.Second),
	}
	if err := s.accountRepo.Create(account); err != nil {
		if apperrors.Is(err, repositories.ErrAccountExists) {
			return nil, "", apperrors.ErrEmailTaken
		}
		return nil, "", apperrors.InternalError(err)
	}

	logger.Info("account registered", "email", account.Email, "role", string(role))

	if !role.RequiresApproval() {
		return account, "", nil
	}

	token, err := s.tokens.IssueAccountToken(account.ID, s.sessionTTL)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	if err := s.otpService.SendCode(account, PurposeVerification); err != nil {
		return nil, "", err
	}

	return account, token, nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*models.Account, string, error) {
	account, err := s.accountRepo.ProbeByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return nil, "", apperrors.ErrAuthFailed
		}
		return nil, "", apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, account.PasswordHash) {
		return nil, "", apperrors.ErrAuthFailed
	}

	// Admin skips the approved and active checks.
	if account.Role.RequiresApproval() {
		if !account.Approved {
			return nil, "", apperrors.ErrNotVerified
		}
		if !account.Active {
			return nil, "", apperrors.ErrDeactivated
		}
	}

	token, err := s.tokens.IssueAccountToken(account.ID, s.sessionTTL)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	logger.Info("login", "email", account.Email, "role", string(account.Role))
	return account, token, nil
}

func (s *AuthServiceImpl) checkRequired(role models.Role, req *dto.RegisterRequest) error {
	missing := req.Email == "" || req.Password == ""
	if role != models.RoleAdmin {
		missing = missing || req.FirstName == "" || req.LastName == ""
	}
	if missing {
		return apperrors.ErrMissingFields("Please provide all fields", http.StatusBadRequest)
	}
	return nil
}
