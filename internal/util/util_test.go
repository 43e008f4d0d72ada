package util

import (
	"errors"
	"testing"
	"time"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	tok, err := GenerateJWT("u1", model.Company, "acme", "u1@acme.test", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, model.Company, claims.Role)
	assert.Equal(t, "acme", claims.CompanyID)

	_, err = ParseJWT(tok, "other")
	assert.Error(t, err)
}

func TestValidationMessages(t *testing.T) {
	type request struct {
		CourseID string `validate:"required"`
		Email    string `validate:"required,email"`
	}

	err := validator.New().Struct(request{Email: "nope"})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"courseID": "required",
		"email":    "email",
	}, ValidationMessages(err))

	assert.Nil(t, ValidationMessages(errors.New("plain")))
}
