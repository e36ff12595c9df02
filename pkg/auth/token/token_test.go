package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	iss := NewIssuer("s3cret", time.Hour)

	raw, exp, err := iss.Issue("jardinier@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	sub, err := iss.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "jardinier@example.com", sub)
}

func TestParseRejectsExpired(t *testing.T) {
	iss := NewIssuer("s3cret", time.Minute)
	iss.now = func() time.Time { return time.Now().Add(-time.Hour) }
	raw, _, err := iss.Issue("a@b.fr")
	require.NoError(t, err)

	iss.now = time.Now
	_, err = iss.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	raw, _, err := NewIssuer("one", time.Hour).Issue("a@b.fr")
	require.NoError(t, err)

	_, err = NewIssuer("two", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseRejectsNoneAlg(t *testing.T) {
	claims := jwt.RegisteredClaims{Subject: "a@b.fr", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewIssuer("s3cret", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseGarbage(t *testing.T) {
	_, err := NewIssuer("s3cret", time.Hour).Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalid)
}
