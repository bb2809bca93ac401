package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestTokenRoundtrip(t *testing.T) {
	identity := Identity{UserID: "user-1", Username: "alice"}

	token, err := GenerateToken(identity, testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, identity, resolved)
}

func TestTokenWithoutExpiry(t *testing.T) {
	token, err := GenerateToken(Identity{UserID: "user-1", Username: "alice"}, testSecret, 0)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.NoError(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken(Identity{UserID: "user-1", Username: "alice"}, testSecret, time.Hour)
	require.NoError(t, err)

	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	_, err = ParseToken(tampered, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongKeyRejected(t *testing.T) {
	token, err := GenerateToken(Identity{UserID: "user-1", Username: "alice"}, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("another-secret"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken(Identity{UserID: "user-1", Username: "alice"}, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedTokenRejected(t *testing.T) {
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := ParseToken(token, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestAuthorizeOwner(t *testing.T) {
	owner := Identity{UserID: "user-a", Username: "alice"}
	other := Identity{UserID: "user-b", Username: "bob"}

	assert.NoError(t, AuthorizeOwner(owner, "user-a", ActionEdit, "post"))
	assert.NoError(t, AuthorizeOwner(owner, "user-a", ActionDelete, "comment"))

	err := AuthorizeOwner(other, "user-a", ActionEdit, "comment")
	require.Error(t, err)
	var forbidden *ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "you can only edit your own comments", err.Error())

	err = AuthorizeOwner(other, "user-a", ActionDelete, "post")
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "you can only delete your own posts", err.Error())
}

func TestAuthorizeOwnerIgnoresUsername(t *testing.T) {
	// same username, different id: still denied
	impostor := Identity{UserID: "user-b", Username: "alice"}
	err := AuthorizeOwner(impostor, "user-a", ActionEdit, "post")
	assert.Error(t, err)
}
