package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithToken(t *testing.T, svc Service, tokenString string) context.Context {
	t.Helper()
	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestCompanyIDFromContext(t *testing.T) {
	svc := NewJWTService("test-secret")
	companyID := "11111111-1111-1111-1111-111111111111"

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", nil, &companyID, "manager", time.Hour)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	got, err := CompanyIDFromContext(contextWithToken(t, svc, tokenString))
	require.NoError(t, err)
	assert.Equal(t, companyID, got)
}

func TestCompanyIDFromContext_Missing(t *testing.T) {
	svc := NewJWTService("test-secret")

	tokenString, _, err := svc.GenerateAccessToken("user-1", nil, nil, "pending", time.Hour)
	require.NoError(t, err)

	_, err = CompanyIDFromContext(contextWithToken(t, svc, tokenString))
	assert.ErrorIs(t, err, ErrCompanyIDRequired)
}

func TestCompanyIDFromContext_NoToken(t *testing.T) {
	_, err := CompanyIDFromContext(context.Background())
	assert.Error(t, err)
}

func TestRoleFromContext(t *testing.T) {
	svc := NewJWTService("test-secret")
	companyID := "11111111-1111-1111-1111-111111111111"

	tokenString, _, err := svc.GenerateAccessToken("user-1", nil, &companyID, string(RoleOwner), time.Hour)
	require.NoError(t, err)

	assert.Equal(t, RoleOwner, RoleFromContext(contextWithToken(t, svc, tokenString)))
	assert.Equal(t, Role(""), RoleFromContext(context.Background()))
}

func TestContextWithCompany(t *testing.T) {
	ctx, err := ContextWithCompany(context.Background(), "c-1")
	require.NoError(t, err)

	got, err := CompanyIDFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c-1", got)
}
