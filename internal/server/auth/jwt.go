// Package auth implements the session token service and the password
// hashing policy.
//
// Session tokens are self-contained HS256 JWTs carrying the user id plus
// issued-at/expires-at claims. There is no server-side revocation list:
// logout only clears the delivery cookie, so a raw token that was captured
// before logout stays cryptographically valid until its natural expiry.
// That is an accepted limitation of the design, not a defect.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/linkkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set: the registered claims plus the user id the
// token is bound to.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken issues a signed token binding userID for validityDuration.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
	})

	return token.SignedString(secretKey)
}

// GetUserIDFromToken verifies tokenString and returns the embedded user id.
// An expired token yields common.ErrTokenExpired; every other failure
// (bad signature, malformed payload, missing user id) yields
// common.ErrInvalidToken. Callers treating all failures as "no identity"
// can simply check err != nil.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
