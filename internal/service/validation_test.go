package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldMessages(t *testing.T, err error) []string {
	t.Helper()
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	msgs := make([]string, 0, len(validationErr.Fields))
	for _, f := range validationErr.Fields {
		msgs = append(msgs, f.Message)
	}
	return msgs
}

func TestValidateRegistrationAccepts(t *testing.T) {
	for _, tc := range []struct{ username, password string }{
		{"alice", "Passw0rd!"},
		{"a", "xX!aaaaa"},
		{"Bob-the_2nd", `Tr1cky"pass`},
	} {
		assert.NoError(t, validateRegistration(tc.username, tc.password), tc.username)
	}
}

func TestValidateRegistrationUsernameRules(t *testing.T) {
	err := validateRegistration("bad name", "Passw0rd!")
	msgs := fieldMessages(t, err)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "start with a letter")

	err = validateRegistration("1leading", "Passw0rd!")
	assert.Error(t, err)

	err = validateRegistration("", "Passw0rd!")
	msgs = fieldMessages(t, err)
	assert.Equal(t, []string{"username is required"}, msgs)
}

func TestValidateRegistrationPasswordRules(t *testing.T) {
	// missing uppercase must cite the uppercase rule specifically
	err := validateRegistration("alice", "alllowercase1!")
	msgs := fieldMessages(t, err)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "uppercase")

	err = validateRegistration("alice", "ALLUPPERCASE1!")
	msgs = fieldMessages(t, err)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "lowercase")

	err = validateRegistration("alice", "NoSpecial1")
	msgs = fieldMessages(t, err)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "special")
}

func TestValidateRegistrationAggregatesAllViolations(t *testing.T) {
	// short, no uppercase, no special, plus a bad username: all reported at once
	err := validateRegistration("bad name", "abc")
	msgs := fieldMessages(t, err)
	assert.Len(t, msgs, 4)
}

func TestValidateCommentBody(t *testing.T) {
	assert.NoError(t, validateCommentBody("nice post"))
	assert.Error(t, validateCommentBody(""))
	assert.Error(t, validateCommentBody("   "))

	long := make([]byte, 251)
	for i := range long {
		long[i] = 'x'
	}
	err := validateCommentBody(string(long))
	msgs := fieldMessages(t, err)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "250")
}

func TestValidatePostInput(t *testing.T) {
	assert.NoError(t, validatePostInput("title", "body"))

	err := validatePostInput("", "")
	msgs := fieldMessages(t, err)
	assert.Len(t, msgs, 2)
}
