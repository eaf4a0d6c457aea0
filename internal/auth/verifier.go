package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is the expected "iss" of tokens accepted by the backend.
const Issuer = "pokehub"

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   string `json:"user_id" example:"ash"`
	Username string `json:"username" example:"Ash Ketchum"`
	jwt.RegisteredClaims
}

// Verifier checks HMAC-signed tokens issued by the account service. Token
// issuance itself lives outside this backend.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a verifier for tokens signed with secret
func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, errors.New("JWT secret is required")
	}
	return &Verifier{secret: []byte(secret)}, nil
}

// ValidateJWT validates and parses a JWT token. The acting user is the
// user_id claim, or the subject when user_id is absent.
func (v *Verifier) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("token has no user")
	}
	return claims, nil
}
