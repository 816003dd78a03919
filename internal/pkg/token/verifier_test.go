package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	v := NewHMACVerifier("test-secret", time.Hour)

	in := Identity{
		UserID:   uuid.New(),
		Email:    "alice@example.com",
		Username: "Alice Smith",
		Role:     "user",
		Company:  "Acme",
	}

	tokenStr, err := v.Issue(in)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	out, err := v.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, in.UserID, out.UserID)
	assert.Equal(t, in.Email, out.Email)
	assert.Equal(t, in.Username, out.Username)
	assert.Equal(t, in.Role, out.Role)
	assert.Equal(t, in.Company, out.Company)
}

func TestVerifyRejectsEmptyToken(t *testing.T) {
	v := NewHMACVerifier("test-secret", time.Hour)

	_, err := v.Verify("")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewHMACVerifier("secret-a", time.Hour)
	verifier := NewHMACVerifier("secret-b", time.Hour)

	tokenStr, err := issuer.Issue(Identity{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = verifier.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	v := NewHMACVerifier("test-secret", -time.Minute)

	tokenStr, err := v.Issue(Identity{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = v.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	v := NewHMACVerifier("test-secret", time.Hour)

	_, err := v.Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
