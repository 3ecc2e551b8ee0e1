package services

import (
	"errors"
	"testing"

	"github.com/fittrackhq/fittrack-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims map[string]*IdentityClaims
}

func (v *stubVerifier) Verify(token string) (*IdentityClaims, error) {
	if claims, ok := v.claims[token]; ok {
		return claims, nil
	}
	return nil, errors.New("signature verification failed")
}

func TestAuthorize_CreatesUserOnFirstLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, &stubVerifier{claims: map[string]*IdentityClaims{
		"tok": {Email: "ada@example.com", GivenName: "Ada"},
	}})

	result, err := svc.Authorize("tok")
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.NotEmpty(t, result.UserID)

	var user models.User
	require.NoError(t, db.Where("email = ?", "ada@example.com").First(&user).Error)
	assert.Equal(t, result.UserID, user.ID)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Len(t, user.ID, 36)
}

func TestAuthorize_RepeatLoginReturnsSameUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, &stubVerifier{claims: map[string]*IdentityClaims{
		"tok1": {Email: "ada@example.com", GivenName: "Ada"},
		"tok2": {Email: "ada@example.com", GivenName: "Adaline"},
	}})

	first, err := svc.Authorize("tok1")
	require.NoError(t, err)
	second, err := svc.Authorize("tok2")
	require.NoError(t, err)

	assert.True(t, first.Created)
	assert.False(t, second.Created)
	assert.Equal(t, first.UserID, second.UserID)

	// The first-seen name is preserved on repeat logins.
	var user models.User
	require.NoError(t, db.First(&user, "id = ?", first.UserID).Error)
	assert.Equal(t, "Ada", user.FirstName)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAuthorize_VerificationFailureIsInvalidToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, &stubVerifier{})

	_, err := svc.Authorize("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}
