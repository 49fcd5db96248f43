package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidmartinii-sketch/ai-business-assistant/internal/auth"
)

type testConfig struct {
	signingKey string
	expiration time.Duration
}

func (c testConfig) GetSigningKey() string             { return c.signingKey }
func (c testConfig) GetTokenExpiration() time.Duration { return c.expiration }

func newTestAccount() *auth.Account {
	return &auth.Account{
		ID:    uuid.New(),
		Name:  "John Doe",
		Email: "john@example.com",
	}
}

func TestTokenServiceRoundTrip(t *testing.T) {
	ts := auth.NewTokenService(testConfig{signingKey: "test-secret", expiration: time.Hour}, nil)
	account := newTestAccount()

	token, err := ts.Generate(account)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, account.ID.String(), claims.UserID())
	assert.Equal(t, account.Email, claims.Email)

	id, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, account.ID, id)

	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.Expires(), time.Minute)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt(), time.Minute)
}

func TestTokenServiceTokensDiffer(t *testing.T) {
	ts := auth.NewTokenService(testConfig{signingKey: "test-secret", expiration: time.Hour}, nil)
	account := newTestAccount()

	first, err := ts.GenerateWithTTL(account, time.Hour)
	require.NoError(t, err)
	second, err := ts.GenerateWithTTL(account, 2*time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenServiceValidateRejections(t *testing.T) {
	ts := auth.NewTokenService(testConfig{signingKey: "test-secret", expiration: time.Hour}, nil)
	other := auth.NewTokenService(testConfig{signingKey: "other-secret", expiration: time.Hour}, nil)
	account := newTestAccount()

	valid, err := ts.Generate(account)
	require.NoError(t, err)

	expired, err := ts.GenerateWithTTL(account, -time.Minute)
	require.NoError(t, err)

	foreign, err := other.Generate(account)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "Tampered signature", token: tamper(t, valid)},
		{name: "Expired", token: expired},
		{name: "Wrong signing key", token: foreign},
		{name: "Garbage", token: "invalid.token.here"},
		{name: "Empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ts.Validate(tt.token)
			assert.Nil(t, claims)
			// every failure mode collapses to the same sentinel
			assert.True(t, auth.IsTokenInvalid(err))
		})
	}
}

// tamper flips one byte of the signature segment.
func tamper(t *testing.T, token string) string {
	t.Helper()

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	require.NotEmpty(t, sig)
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	parts[2] = string(sig)

	return strings.Join(parts, ".")
}
