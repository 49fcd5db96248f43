package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/davidmartinii-sketch/ai-business-assistant/internal/auth"
)

// Accounts is the bun backed auth.AccountStore.
type Accounts struct {
	db *bun.DB
}

var _ auth.AccountStore = (*Accounts)(nil)

// NewAccounts creates the accounts repository.
func NewAccounts(db *bun.DB) *Accounts {
	return &Accounts{db: db}
}

// FindByEmail returns the account registered under email. Emails compare
// byte for byte; casing policy is the unique index's collation.
func (r *Accounts) FindByEmail(ctx context.Context, email string) (*auth.Account, error) {
	account := new(auth.Account)
	err := r.db.NewSelect().
		Model(account).
		Where("email = ?", email).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("account")
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to query account by email")
	}
	return account, nil
}

// FindByID returns the account with the given identifier.
func (r *Accounts) FindByID(ctx context.Context, id uuid.UUID) (*auth.Account, error) {
	account := new(auth.Account)
	err := r.db.NewSelect().
		Model(account).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("account")
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to query account by id")
	}
	return account, nil
}

// Create inserts the account, assigning its identifier and creation time.
// A unique constraint violation on email reports auth.ErrDuplicateEmail,
// so the check and the insert are atomic at the database.
func (r *Accounts) Create(ctx context.Context, account *auth.Account) (*auth.Account, error) {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	if _, err := r.db.NewInsert().Model(account).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, auth.ErrDuplicateEmail
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to insert account")
	}

	return account, nil
}

// DeleteAll wipes every account. Test isolation hook, not part of the
// serving surface.
func (r *Accounts) DeleteAll(ctx context.Context) error {
	_, err := r.db.NewDelete().
		Model((*auth.Account)(nil)).
		Where("1 = 1").
		Exec(ctx)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete accounts")
	}
	return nil
}
