package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIDTokenVerifier struct {
	token *auth.Token
	err   error
}

func (f *fakeIDTokenVerifier) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return f.token, f.err
}

func TestFirebaseVerifier(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	v := &FirebaseVerifier{client: &fakeIDTokenVerifier{token: &auth.Token{
		UID:     "u123",
		Expires: exp,
		Claims:  map[string]interface{}{"email": "client@example.com"},
	}}}

	id, err := v.Verify(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "u123", id.ID)
	assert.Equal(t, "client@example.com", id.Email)
	assert.Equal(t, exp, id.ExpiresAt.Unix())
}

func TestFirebaseVerifierErrors(t *testing.T) {
	v := &FirebaseVerifier{client: &fakeIDTokenVerifier{err: errors.New("ID token has expired")}}
	_, err := v.Verify(context.Background(), "id-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	v = &FirebaseVerifier{client: &fakeIDTokenVerifier{token: &auth.Token{}}}
	_, err = v.Verify(context.Background(), "id-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
