package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "unit-test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("user-123", testSecret, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("user-123", testSecret, time.Hour)
	assert.NoError(t, err)

	_, err = ParseToken(token, "another-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("user-123", testSecret, -time.Minute)
	assert.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	assert.NoError(t, err)
	assert.True(t, CheckPasswordHash("correct horse battery", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}
