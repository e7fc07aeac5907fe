package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chirosmith/portal-api/internal/model"
)

// AccountRepository persists practitioner accounts. The account and profile
// inserts are separate operations on purpose: the signup flow runs them
// sequentially and a profile failure leaves the account row in place.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account *model.Account) error
	CreateAccountInfo(ctx context.Context, info *model.AccountInfo) error
	GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, error)
	GetAccountInfo(ctx context.Context, id uuid.UUID) (*model.AccountInfo, error)
}

// Diagnostics exposes the store checks behind the health and test-db routes.
type Diagnostics interface {
	Now(ctx context.Context) (time.Time, error)
	Ping(ctx context.Context) error
}
