package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify(t *testing.T) {
	tokens := NewTokens("s3cret", time.Hour)

	tok, err := tokens.Issue("student-1")
	require.NoError(t, err)

	user, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "student-1", user)
}

func TestIssue_RequiresUser(t *testing.T) {
	_, err := NewTokens("s3cret", time.Hour).Issue("  ")
	assert.Error(t, err)
}

func TestVerify_Rejects(t *testing.T) {
	tokens := NewTokens("s3cret", time.Hour)
	good, err := tokens.Issue("student-1")
	require.NoError(t, err)

	expired := NewTokens("s3cret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	old, err := expired.Issue("student-1")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "student-1"}})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	tests := map[string]struct {
		verifier *Tokens
		token    string
	}{
		"garbage":      {tokens, "not.a.token"},
		"wrong secret": {NewTokens("other", time.Hour), good},
		"expired":      {tokens, old},
		"alg none":     {tokens, unsigned},
		"no subject":   {tokens, noSubject},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tt.verifier.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestUserContext(t *testing.T) {
	assert.Equal(t, "", UserFrom(context.Background()))
	assert.Equal(t, "u1", UserFrom(WithUser(context.Background(), "u1")))
}
