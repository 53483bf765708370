package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("uid-42", "owner@laptopzone.lb", "secret", time.Hour)
	require.NoError(t, err)

	uid, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "uid-42", uid)
}

func TestParseJWTRejects(t *testing.T) {
	token, err := GenerateJWT("uid-42", "", "secret", time.Hour)
	require.NoError(t, err)
	_, err = ParseJWT(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := GenerateJWT("uid-42", "", "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(expired, "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseJWT("not-a-token", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = GenerateJWT("uid", "", "", time.Hour)
	assert.Error(t, err)
}

func TestPasswords(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NoError(t, ComparePasswords(hash, "correct horse"))
	assert.Error(t, ComparePasswords(hash, "battery staple"))
}
