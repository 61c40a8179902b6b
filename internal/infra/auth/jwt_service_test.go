package auth

import (
	"testing"
	"time"

	"lostfound/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := svc.IssueAccessToken("firebase-uid-1", "finder@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid-1", claims.Subject)
	assert.Equal(t, "finder@example.com", claims.Email)
	assert.Equal(t, "lostfound", claims.Issuer)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuerSvc, err := NewJWTService(newTestConfig("secret-one"))
	require.NoError(t, err)
	verifierSvc, err := NewJWTService(newTestConfig("secret-two"))
	require.NoError(t, err)

	token, err := issuerSvc.IssueAccessToken("uid", "", time.Hour)
	require.NoError(t, err)

	_, err = verifierSvc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	jwtSvc := svc.(*jwtService)
	jwtSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.IssueAccessToken("uid", "", time.Hour)
	require.NoError(t, err)

	jwtSvc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "uid",
		Issuer:    "lostfound",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_RequiresSubject(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	_, err = svc.IssueAccessToken("", "x@example.com", time.Hour)
	assert.Error(t, err)
}
