package userRepo

import (
	"context"
	"errors"

	"quickmed/models"
)

var (
	// ErrNotFound reports an operation on a missing user.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidID reports a lookup with a malformed object id.
	ErrInvalidID = errors.New("invalid user id")
)

// UserRepository defines data access for portal accounts.
type UserRepository interface {
	// Upsert creates or updates the account document for an email.
	Upsert(ctx context.Context, email string, user *models.User) error
	// GetByEmail retrieves an account; returns (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByID retrieves an account by its object id hex string.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetAll retrieves every account.
	GetAll(ctx context.Context) ([]models.User, error)
	// SetRole sets the role field, creating the document if needed
	// (admin promotion keeps the source's upsert semantics).
	SetRole(ctx context.Context, email, role string) error
	// SetWallet attaches wallet data to an account.
	SetWallet(ctx context.Context, email string, data *models.WalletData) error
	// Delete removes an account; returns ErrNotFound when absent.
	Delete(ctx context.Context, email string) error
}
