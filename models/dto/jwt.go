package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// JwtClaims token payload, Subject carries the user id and ID the token id
type JwtClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserID returns the id of the authenticated user
func (a *JwtClaims) UserID() string {
	return a.Subject
}
