package models

import (
	"fmt"
	"strings"

	"github.com/fundunity/cmsdash/internal/common"
	"github.com/fundunity/cmsdash/internal/validation"
)

// TransactionStatus is the settlement state of a donation.
type TransactionStatus string

const (
	StatusPending TransactionStatus = "pending"
	StatusSuccess TransactionStatus = "berhasil"
	StatusFailed  TransactionStatus = "gagal"
)

var transactionStatuses = []string{string(StatusPending), string(StatusSuccess), string(StatusFailed)}

// ParseTransactionStatus accepts the wire value, case-insensitively.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	st := TransactionStatus(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusSuccess, StatusFailed:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown transaction status %q", common.ErrorValidation, s)
}

// Transaction has no image and is always sent as JSON.
type Transaction struct {
	ID     int64             `json:"id"`
	Nama   string            `json:"nama"`
	Email  string            `json:"email"`
	Notes  string            `json:"notes"`
	Amount float64           `json:"amount"`
	Status TransactionStatus `json:"status"`
}

func (t Transaction) GetID() int64 { return t.ID }

type transactionBody struct {
	Nama   string            `json:"nama"`
	Email  string            `json:"email"`
	Notes  string            `json:"notes"`
	Amount float64           `json:"amount"`
	Status TransactionStatus `json:"status"`
}

// RequestBody is the create and update payload. The id only travels in the
// URL.
func (t Transaction) RequestBody() any {
	return transactionBody{Nama: t.Nama, Email: t.Email, Notes: t.Notes, Amount: t.Amount, Status: t.Status}
}

func (t Transaction) SearchFields() []string {
	return []string{t.Nama, t.Email, t.Notes, string(t.Status)}
}

func (t Transaction) Validate() error {
	return validation.New().
		Required("nama", t.Nama).
		Required("email", t.Email).
		Email("email", t.Email).
		Positive("amount", t.Amount).
		OneOf("status", string(t.Status), transactionStatuses).
		Err()
}
