package services

import (
	"time"

	"autobuy_backend/internal/auth"
	"autobuy_backend/internal/logger"
	"autobuy_backend/internal/models"
	"autobuy_backend/internal/pkg/email"
	"autobuy_backend/internal/repositories"
	"autobuy_backend/pkg/apperrors"
)

// OTPPurpose selects the template and TTL for a code.
type OTPPurpose string

const (
	PurposeVerification OTPPurpose = "verification"
	PurposeRecovery     OTPPurpose = "recovery"
)

type OTPService interface {
	// SendCode hashes a fresh 4-digit code, replaces any pending record
	// for the account and mails the code. Persist or dispatch failures
	// surface as DispatchFailed.
	SendCode(account *models.Account, purpose OTPPurpose) error

	// Verify resolves the pending record by account id or email,
	// checks expiry and the code, then flips Approved and deletes the
	// record. An expired record is deleted before reporting expiry.
	Verify(role models.Role, accountID, emailAddr, code string) error

	// Resend probes roles in order for the email, drops the pending
	// record and sends a fresh verification code. It returns an
	// email-scoped token for the follow-up verification call.
	Resend(emailAddr string) (string, error)

	// RecoverPassword probes roles for the email and sends a recovery
	// code. It returns an email-scoped token for the change-password
	// call.
	RecoverPassword(emailAddr string) (string, error)

	// ChangePassword consumes a recovery code and persists the new
	// password, refreshing LastChangedPassword so older sessions die.
	ChangePassword(emailAddr, code, password, confirm string) error
}

type OTPServiceImpl struct {
	otpRepo     repositories.OTPRepository
	accountRepo repositories.AccountRepository
	tokens      *auth.TokenService
	mailer      email.Mailer

	verificationTTL time.Duration
	recoveryTTL     time.Duration
	tokenTTL        time.Duration

	now      func() time.Time
	generate func() (string, error)
}

func NewOTPService(
	otpRepo repositories.OTPRepository,
	accountRepo repositories.AccountRepository,
	tokens *auth.TokenService,
	mailer email.Mailer,
	verificationTTL, recoveryTTL, tokenTTL time.Duration,
) *OTPServiceImpl {
	return &OTPServiceImpl{
		otpRepo:         otpRepo,
		accountRepo:     accountRepo,
		tokens:          tokens,
		mailer:          mailer,
		verificationTTL: verificationTTL,
		recoveryTTL:     recoveryTTL,
		tokenTTL:        tokenTTL,
		now:             time.Now,
		generate:        auth.GenerateOTPCode,
	}
}

// WithClock overrides the time source, for expiry tests.
func (s *OTPServiceImpl) WithClock(now func() time.Time) *OTPServiceImpl {
	s.now = now
	return s
}

// WithGenerator overrides the code source, for deterministic tests.
func (s *OTPServiceImpl) WithGenerator(generate func() (string, error)) *OTPServiceImpl {
	s.generate = generate
	return s
}

func (s *OTPServiceImpl) SendCode(account *models.Account, purpose OTPPurpose) error {
	code, err := s.generate()
	if err != nil {
		return apperrors.DispatchFailed(err)
	}

	hash, err := auth.HashOTP(code)
	if err != nil {
		return apperrors.DispatchFailed(err)
	}

	ttl := s.verificationTTL
	if purpose == PurposeRecovery {
		ttl = s.recoveryTTL
	}

	record := &models.OTPRecord{
		AccountID: account.ID,
		Role:      account.Role,
		Email:     account.Email,
		OTPHash:   hash,
		ExpiresAt: s.now().Add(ttl),
	}
	if err := s.otpRepo.Replace(record); err != nil {
		return apperrors.DispatchFailed(err)
	}

	ttlMinutes := int(ttl.Minutes())
	if purpose == PurposeRecovery {
		err = s.mailer.SendRecoveryOTP(account.Email, code, ttlMinutes)
	} else {
		err = s.mailer.SendVerificationOTP(account.Email, code, ttlMinutes)
	}
	if err != nil {
		logger.Error("otp email dispatch failed", "email", account.Email, "error", err)
		return apperrors.DispatchFailed(err)
	}

	logger.Info("otp code sent", "email", account.Email, "purpose", string(purpose))
	return nil
}

func (s *OTPServiceImpl) Verify(role models.Role, accountID, emailAddr, code string) error {
	record, err := s.findRecord(role, accountID, emailAddr)
	if err != nil {
		return err
	}

	if record.Expired(s.now()) {
		if err := s.otpRepo.DeleteByAccount(record.AccountID); err != nil {
			return apperrors.InternalError(err)
		}
		return apperrors.ErrOTPExpired
	}

	if !auth.CheckPasswordHash(code, record.OTPHash) {
		return apperrors.ErrOTPInvalidCode
	}

	account, err := s.resolveAccount(role, record)
	if err != nil {
		return err
	}

	if err := s.accountRepo.SetApproved(account.ID, true); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.otpRepo.DeleteByAccount(record.AccountID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("account verified", "email", account.Email, "role", string(account.Role))
	return nil
}

func (s *OTPServiceImpl) Resend(emailAddr string) (string, error) {
	account, err := s.accountRepo.ProbeByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return "", apperrors.ErrAccountNotFound
		}
		return "", apperrors.InternalError(err)
	}

	if err := s.SendCode(account, PurposeVerification); err != nil {
		return "", err
	}

	token, err := s.tokens.IssueEmailToken(account.Email, s.tokenTTL)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return token, nil
}

func (s *OTPServiceImpl) RecoverPassword(emailAddr string) (string, error) {
	account, err := s.accountRepo.ProbeByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return "", apperrors.ErrAccountNotFound
		}
		return "", apperrors.InternalError(err)
	}

	if !account.Active {
		return "", apperrors.ErrDeactivated
	}

	if err := s.SendCode(account, PurposeRecovery); err != nil {
		return "", err
	}

	token, err := s.tokens.IssueEmailToken(account.Email, s.tokenTTL)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return token, nil
}

func (s *OTPServiceImpl) ChangePassword(emailAddr, code, password, confirm string) error {
	if password != confirm {
		return apperrors.ErrPasswordMismatch
	}
	if err := auth.ValidatePassword(password); err != nil {
		return err
	}

	record, err := s.otpRepo.ProbeByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOTPNotFound) {
			return apperrors.ErrOTPNoRecord
		}
		return apperrors.InternalError(err)
	}

	if record.Expired(s.now()) {
		if err := s.otpRepo.DeleteByAccount(record.AccountID); err != nil {
			return apperrors.InternalError(err)
		}
		return apperrors.ErrOTPExpired
	}

	if !auth.CheckPasswordHash(code, record.OTPHash) {
		return apperrors.ErrOTPInvalidCode
	}

	account, err := s.accountRepo.FindByEmail(record.Role, record.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return apperrors.InternalError(err)
	}
	// JWT iat carries whole seconds, so the change timestamp drops
	// sub-second precision too. A token issued in the same second as
	// the change stays valid.
	if err := s.accountRepo.UpdatePassword(account.ID, hash, s.now().Truncate(time.Second)); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.otpRepo.DeleteByAccount(record.AccountID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("password changed", "email", account.Email, "role", string(account.Role))
	return nil
}

// findRecord looks the pending code up by account id first, falling
// back to the denormalized email for email-scoped tokens. A record
// belonging to another role is invisible here so a token from one
// role endpoint cannot consume a code issued for another.
func (s *OTPServiceImpl) findRecord(role models.Role, accountID, emailAddr string) (*models.OTPRecord, error) {
	if accountID != "" {
		record, err := s.otpRepo.FindByAccount(accountID)
		if err == nil {
			if record.Role != role {
				return nil, apperrors.ErrOTPNoRecord
			}
			return record, nil
		}
		if !apperrors.Is(err, repositories.ErrOTPNotFound) {
			return nil, apperrors.InternalError(err)
		}
	}
	if emailAddr != "" {
		record, err := s.otpRepo.FindByEmail(role, emailAddr)
		if err == nil {
			return record, nil
		}
		if !apperrors.Is(err, repositories.ErrOTPNotFound) {
			return nil, apperrors.InternalError(err)
		}
	}
	return nil, apperrors.ErrOTPNoRecord
}

func (s *OTPServiceImpl) resolveAccount(role models.Role, record *models.OTPRecord) (*models.Account, error) {
	if record.AccountID != "" {
		account, err := s.accountRepo.FindByID(record.AccountID)
		if err == nil {
			if account.Role != role {
				return nil, apperrors.ErrAccountNotFound
			}
			return account, nil
		}
		if !apperrors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.InternalError(err)
		}
	}
	account, err := s.accountRepo.FindByEmail(role, record.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return account, nil
}
