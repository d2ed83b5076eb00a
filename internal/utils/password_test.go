package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	assert.False(t, CheckPassword("not-a-bcrypt-hash", "anything"))
}

func TestPasswordFits(t *testing.T) {
	t.Parallel()

	assert.True(t, PasswordFits(strings.Repeat("a", MaxPasswordBytes)))
	assert.False(t, PasswordFits(strings.Repeat("a", MaxPasswordBytes+1)))
	// 25 runes, 75 bytes
	assert.False(t, PasswordFits(strings.Repeat("€", 25)))
}

func TestValidator_PasswordBytesTag(t *testing.T) {
	InitValidator()

	type form struct {
		Password string `validate:"required,pwbytes"`
	}
	assert.NoError(t, Validate.Struct(form{Password: strings.Repeat("a", 72)}))
	assert.Error(t, Validate.Struct(form{Password: strings.Repeat("a", 73)}))
	assert.Error(t, Validate.Struct(form{Password: strings.Repeat("€", 25)}))
}
