package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseSessionToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.Must(uuid.NewV7())
	token, err := IssueSessionToken(userID, "priya@example.com", "Priya")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "priya@example.com", claims.Email)
	assert.Equal(t, "Priya", claims.Name)
	assert.Equal(t, "sadhana-storefront-api", claims.Issuer)
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := IssueSessionToken(uuid.Must(uuid.NewV7()), "a@example.com", "A")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ParseSessionToken(token)
	assert.Error(t, err)
}

func TestIssueSessionTokenMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := IssueSessionToken(uuid.Must(uuid.NewV7()), "a@example.com", "A")
	assert.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	token, err := BearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = BearerToken("")
	assert.Error(t, err)

	_, err = BearerToken("Basic abc123")
	assert.Error(t, err)

	_, err = BearerToken("Bearer ")
	assert.Error(t, err)
}
