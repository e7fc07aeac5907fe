package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/chirosmith/portal-api/internal/model"
	"github.com/chirosmith/portal-api/internal/repository"
)

// accountRepository writes the two-table practitioner identity. There is no
// uniqueness check on email; whether duplicate signups should be rejected is
// an open product decision, so the store takes whatever it is given.
type accountRepository struct {
	BaseRepository
}

func NewAccountRepository(base BaseRepository) repository.AccountRepository {
	return &accountRepository{base}
}

func (r *accountRepository) CreateAccount(ctx context.Context, account *model.Account) error {
	query := `
		INSERT INTO tbl_account (
			str_account_key, str_email, str_account_type, str_account_subtype
		) VALUES ($1, $2, $3, $4)
		RETURNING uuid_account_id
	`
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx, query,
			account.AccountKey,
			account.Email,
			account.AccountType,
			account.AccountSubtype,
		).Scan(&account.ID)
	})
}

func (r *accountRepository) CreateAccountInfo(ctx context.Context, info *model.AccountInfo) error {
	query := `
		INSERT INTO tbl_account_info (
			uuid_account_id, str_first_name, str_last_name, str_phone, dtm_date_of_birth
		) VALUES ($1, $2, $3, $4, $5)
	`
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, query,
			info.AccountID,
			info.FirstName,
			info.LastName,
			info.Phone,
			info.DateOfBirth,
		)
		return err
	})
}

func (r *accountRepository) GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	query := `
		SELECT uuid_account_id, str_account_key, str_email, str_account_type, str_account_subtype
		FROM tbl_account
		WHERE uuid_account_id = $1
	`
	var account model.Account
	if err := r.db.GetContext(ctx, &account, query, id); err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) GetAccountInfo(ctx context.Context, id uuid.UUID) (*model.AccountInfo, error) {
	query := `
		SELECT uuid_account_id, str_first_name, str_last_name, str_phone, dtm_date_of_birth
		FROM tbl_account_info
		WHERE uuid_account_id = $1
	`
	var info model.AccountInfo
	if err := r.db.GetContext(ctx, &info, query, id); err != nil {
		return nil, fmt.Errorf("failed to get account info: %w", err)
	}
	return &info, nil
}
