package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
)

// TokenService issues and verifies the signed bearer tokens handed out at
// register and login time. The signing key and expiration are fixed at
// construction and shared by every request.
type TokenService struct {
	signingKey []byte
	expiration time.Duration
	logger     Logger
}

// NewTokenService creates a new TokenService instance
func NewTokenService(cfg Config, logger Logger) *TokenService {
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenService{
		signingKey: []byte(cfg.GetSigningKey()),
		expiration: cfg.GetTokenExpiration(),
		logger:     logger,
	}
}

// Generate creates an HS256 signed token for the account using the
// configured expiration.
func (ts *TokenService) Generate(account *Account) (string, error) {
	return ts.GenerateWithTTL(account, ts.expiration)
}

// GenerateWithTTL creates a token with an explicit time to live.
func (ts *TokenService) GenerateWithTTL(account *Account, ttl time.Duration) (string, error) {
	if account == nil {
		return "", goerrors.New("account must not be nil", goerrors.CategoryInternal)
	}

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UID:   account.ID.String(),
		Email: account.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to sign JWT")
	}

	return signed, nil
}

// Validate parses and verifies a token string. Every failure mode, bad
// signature, malformed structure, unexpected algorithm, or elapsed expiry,
// collapses into ErrTokenInvalid so callers cannot probe why a token was
// rejected. The underlying cause is only logged.
func (ts *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	})

	if err != nil {
		ts.logger.Debug("token validation failed", "error", err)
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		ts.logger.Debug("token claims could not be decoded")
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
