package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/SscSPs/finance_ledger/internal/core/services"
	"github.com/SscSPs/finance_ledger/internal/platform/config"
	"github.com/SscSPs/finance_ledger/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "finance-ledger-test",
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := services.NewTokenService(testConfig())
	ctx := context.Background()

	token, expiresAt, err := svc.GenerateAccessToken(ctx, aliceID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	identity, err := svc.ParseAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, aliceID, identity)
}

func TestTokenService_RejectsEmptyIdentity(t *testing.T) {
	svc := services.NewTokenService(testConfig())

	_, _, err := svc.GenerateAccessToken(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTokenService_RejectsForeignTokens(t *testing.T) {
	cfg := testConfig()
	svc := services.NewTokenService(cfg)
	ctx := context.Background()

	wrongSecret, err := utils.GenerateJWT("GALICE", "other-secret", time.Hour, cfg.JWTIssuer)
	require.NoError(t, err)
	_, err = svc.ParseAccessToken(ctx, wrongSecret)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	wrongIssuer, err := utils.GenerateJWT("GALICE", cfg.JWTSecret, time.Hour, "someone-else")
	require.NoError(t, err)
	_, err = svc.ParseAccessToken(ctx, wrongIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	expired, err := utils.GenerateJWT("GALICE", cfg.JWTSecret, -time.Minute, cfg.JWTIssuer)
	require.NoError(t, err)
	_, err = svc.ParseAccessToken(ctx, expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestAPIKeyService_ValidateAPIKey(t *testing.T) {
	hash, err := utils.HashSecret("s3cret")
	require.NoError(t, err)

	svc := services.NewAPIKeyService(map[string]string{
		"GALICE":         hash,
		"ops.bot.ledger": hash,
	})
	ctx := context.Background()

	identity, err := svc.ValidateAPIKey(ctx, "GALICE.s3cret")
	require.NoError(t, err)
	assert.Equal(t, domain.Identity("GALICE"), identity)

	identity, err = svc.ValidateAPIKey(ctx, "ops.bot.ledger.s3cret")
	require.NoError(t, err)
	assert.Equal(t, domain.Identity("ops.bot.ledger"), identity)

	for _, bad := range []string{"", "GALICE", "GALICE.", ".s3cret", "GALICE.wrong", "GBOB.s3cret"} {
		_, err := svc.ValidateAPIKey(ctx, bad)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized, "key %q", bad)
	}
}
