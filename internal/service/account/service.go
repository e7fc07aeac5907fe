package account

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/chirosmith/portal-api/internal/email"
	"github.com/chirosmith/portal-api/internal/model"
	"github.com/chirosmith/portal-api/internal/repository"
)

// accountKeyBytes yields a 16-hex-character opaque key. No uniqueness check
// is performed; collisions are negligible at expected volumes.
const accountKeyBytes = 8

type AccountServicer interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, *model.AccountInfo, error)
}

type Service struct {
	repo     repository.AccountRepository
	emailSvc email.Service
}

func NewService(repo repository.AccountRepository, emailSvc email.Service) *Service {
	return &Service{repo: repo, emailSvc: emailSvc}
}

// Signup creates the account row and then the profile row. The two inserts
// are deliberately not wrapped in one transaction: if the profile insert
// fails the account row stays behind, matching the deployed system. Callers
// see any store failure as a single opaque error.
func (s *Service) Signup(ctx context.Context, req *model.SignupRequest) (*model.Account, error) {
	key, err := generateAccountKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate account key: %w", err)
	}

	account := &model.Account{
		AccountKey:     key,
		Email:          req.Email,
		AccountType:    model.AccountTypePractitioner,
		AccountSubtype: model.AccountSubtypeChiropractor,
	}

	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("invalid date of birth: %w", err)
	}

	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	info := &model.AccountInfo{
		AccountID:   account.ID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		DateOfBirth: dob,
	}

	if err := s.repo.CreateAccountInfo(ctx, info); err != nil {
		return nil, fmt.Errorf("failed to create account info: %w", err)
	}

	// Best effort; a mail failure never fails the signup.
	if err := s.emailSvc.SendWelcome(ctx, account.Email, info.FirstName); err != nil {
		log.Warn().Err(err).Str("email", account.Email).Msg("welcome email failed")
	}

	return account, nil
}

func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, *model.AccountInfo, error) {
	account, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get account: %w", err)
	}

	info, err := s.repo.GetAccountInfo(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get account info: %w", err)
	}

	return account, info, nil
}

func generateAccountKey() (string, error) {
	buf := make([]byte, accountKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// parseDateOfBirth accepts the date input format the signup form submits.
// An absent value stores NULL; a malformed one fails the signup the same
// way a store rejection would.
func parseDateOfBirth(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
