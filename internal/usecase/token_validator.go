package usecase

import (
	"token-storefront/internal/pkg/jwt"
)

// Principal is the authenticated storefront account behind a request.
type Principal struct {
	UserID string
	Email  string
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Principal{}, err
	}

	return Principal{UserID: claims.UserID, Email: claims.Email}, nil
}
