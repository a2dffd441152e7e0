package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var (
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrCompanyIDRequired = errors.New("company_id claim is required")
	ErrRoleNotAllowed    = errors.New("role is not allowed to access this resource")
)

type Role string

const (
	RoleOwner    Role = "owner"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Access tokens are issued by the HR auth service. This service verifies
// them with the shared secret and reads the company scope from the claims.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	GenerateAccessToken(userID string, employeeID *string, companyID *string, role string, ttl time.Duration) (token string, expiresAt int64, err error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// GenerateAccessToken mints a token with the same claim layout as the auth
// service. Used by local tooling and tests.
func (j *JWTService) GenerateAccessToken(userID string, employeeID *string, companyID *string, role string, ttl time.Duration) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(ttl).Unix()

	claims := map[string]interface{}{
		"user_id":     userID,
		"employee_id": returnValueOrNil(employeeID),
		"company_id":  returnValueOrNil(companyID),
		"role":        role,
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

// CompanyIDFromContext extracts company_id from JWT claims
func CompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", ErrCompanyIDRequired
	}
	return companyID, nil
}

// RoleFromContext extracts the role claim, empty when absent
func RoleFromContext(ctx context.Context) Role {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return Role(role)
}

// ContextWithCompany returns ctx carrying a verified-token equivalent scoped
// to companyID, for callers outside the HTTP stack.
func ContextWithCompany(ctx context.Context, companyID string) (context.Context, error) {
	token := jwt.New()
	if err := token.Set("company_id", companyID); err != nil {
		return nil, err
	}
	if err := token.Set("type", "access"); err != nil {
		return nil, err
	}
	return jwtauth.NewContext(ctx, token, nil), nil
}
