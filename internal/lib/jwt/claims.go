package jwt

import "github.com/golang-jwt/jwt/v5"

// UserClaims carries the opaque owner identity issued by the identity
// provider. UID is the only claim the service itself consumes.
type UserClaims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}
