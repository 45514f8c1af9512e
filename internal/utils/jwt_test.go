package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("secret")
	token, err := issuer.Issue("abc")
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "abc", claims.SessionID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("one").Issue("abc")
	require.NoError(t, err)

	_, err = NewTokenIssuer("two").Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("secret")
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return start }
	token, err := issuer.Issue("abc")
	require.NoError(t, err)

	issuer.now = func() time.Time { return start.Add(tokenLifetime + time.Minute) }
	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsOtherAlgorithms(t *testing.T) {
	claims := SessionClaims{SessionID: "abc"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret").Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokenIssuer("secret").Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
