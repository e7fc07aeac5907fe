package model

import (
	"time"

	"github.com/google/uuid"
)

// Account type constants written on every signup.
const (
	AccountTypePractitioner    = "Practitioner"
	AccountSubtypeChiropractor = "Chiropractor"
)

type Account struct {
	ID             uuid.UUID `json:"account_id" db:"uuid_account_id"`
	AccountKey     string    `json:"-" db:"str_account_key"`
	Email          string    `json:"email" db:"str_email"`
	AccountType    string    `json:"account_type" db:"str_account_type"`
	AccountSubtype string    `json:"account_subtype" db:"str_account_subtype"`
}

type AccountInfo struct {
	AccountID   uuid.UUID  `json:"account_id" db:"uuid_account_id"`
	FirstName   string     `json:"first_name" db:"str_first_name"`
	LastName    string     `json:"last_name" db:"str_last_name"`
	Phone       string     `json:"phone" db:"str_phone"`
	DateOfBirth *time.Time `json:"date_of_birth" db:"dtm_date_of_birth"`
}

// SignupRequest carries the wire field names the portal frontend sends.
// The endpoint deliberately performs no validation of its own; anything the
// store rejects surfaces as a server error, matching the deployed behavior.
type SignupRequest struct {
	Email       string `json:"str_email"`
	FirstName   string `json:"str_first_name"`
	LastName    string `json:"str_last_name"`
	Phone       string `json:"str_phone"`
	DateOfBirth string `json:"dtm_date_of_birth"`
}
