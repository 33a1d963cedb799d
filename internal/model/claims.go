package model

import "github.com/golang-jwt/jwt/v5"

// AccessClaims is the payload of the access token the backend issues on
// login. Subject carries the user id.
type AccessClaims struct {
	jwt.RegisteredClaims

	Name  string `json:"name"`
	Email string `json:"email"`
}
