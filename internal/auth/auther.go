package auth

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// AuthResult is what register and login hand back to the client.
type AuthResult struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Token string    `json:"token"`
}

// Auther orchestrates registration and login: uniqueness checks,
// credential hashing and verification, and token issuance.
type Auther struct {
	store  AccountStore
	tokens *TokenService
	logger Logger
}

// NewAuthenticator returns a new Auther
func NewAuthenticator(store AccountStore, cfg Config) *Auther {
	return &Auther{
		store:  store,
		tokens: NewTokenService(cfg, defLogger{}),
		logger: defLogger{},
	}
}

func (a *Auther) WithLogger(logger Logger) *Auther {
	a.logger = logger
	a.tokens.logger = logger
	return a
}

// TokenService returns the TokenService instance used by this Auther
func (a *Auther) TokenService() *TokenService {
	return a.tokens
}

// Register hashes the password, creates the account, and issues a token.
// A reused email fails with ErrDuplicateEmail; the store's unique
// constraint backs the lookup so two concurrent registrations cannot
// both succeed.
func (a *Auther) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	if _, err := a.store.FindByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !goerrors.IsNotFound(err) {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check for existing account")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	account, err := a.store.Create(ctx, &Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if IsDuplicateEmail(err) {
			return nil, err
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to create account")
	}

	token, err := a.tokens.Generate(account)
	if err != nil {
		return nil, err
	}

	a.logger.Info("account registered", "id", account.ID)

	return &AuthResult{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
		Token: token,
	}, nil
}

// Login verifies the credentials and issues a token. Unknown email and
// wrong password both return ErrInvalidCredentials so callers cannot
// tell whether the account exists.
func (a *Auther) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	account, err := a.store.FindByEmail(ctx, email)
	if err != nil {
		if goerrors.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve account during login")
	}

	if err := ComparePasswordAndHash(password, account.PasswordHash); err != nil {
		a.logger.Debug("login password mismatch", "id", account.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := a.tokens.Generate(account)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
		Token: token,
	}, nil
}

// ResolveIdentity looks up the account behind a verified token. A token
// can outlive its account, in which case this fails with
// ErrAccountNotFound rather than trusting the claims alone.
func (a *Auther) ResolveIdentity(ctx context.Context, id uuid.UUID) (*Account, error) {
	account, err := a.store.FindByID(ctx, id)
	if err != nil {
		if goerrors.IsNotFound(err) {
			return nil, ErrAccountNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to resolve identity")
	}
	return account, nil
}
