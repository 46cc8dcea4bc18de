package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesapi/config"
)

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{TokenTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	token, err := svc.Generate("ana")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	login, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "ana", login)
}

func TestJWTService_VerifyRejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	for _, token := range []string{"", "null", "not.a.jwt", "aaaa.bbbb.cccc"} {
		_, err := svc.Verify(token)
		assert.Error(t, err, "expected rejection for token %q", token)
	}
}

func TestJWTService_VerifyRejectsExpired(t *testing.T) {
	svc := newTestJWTService(t, -time.Minute)

	token, err := svc.Generate("ana")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, time.Hour)
	verifier := &jwtService{secret: "other-secret", ttl: time.Hour}

	token, err := issuer.Generate("ana")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}
