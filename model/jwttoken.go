package model

import "github.com/golang-jwt/jwt/v5"

// RefreshTokenRecord is the stored form of an issued refresh token. The
// token itself is never persisted, only its hash.
type RefreshTokenRecord struct {
	UserID    string `firestore:"userid"`
	TokenHash string `firestore:"tokenhash"`
	CreatedAt int64  `firestore:"createdat"` // creation time in seconds
	Revoked   bool   `firestore:"revoked"`
	ExpiresIn int64  `firestore:"expiresin"` // lifetime in seconds
}

type AccessClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
