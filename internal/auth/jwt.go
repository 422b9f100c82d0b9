package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenExpired is returned when a token's exp claim is in the past.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid is returned for any other verification failure: bad
// signature, wrong algorithm, malformed payload.
var ErrTokenInvalid = errors.New("invalid token")

// Claims represents the JWT payload. Roll identifies the student.
type Claims struct {
	Roll string `json:"roll"`
	jwt.RegisteredClaims
}

// Issue signs an HS256 token binding roll to an expiry of now+ttl.
func Issue(roll, key string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ttl)
	claims := Claims{
		Roll: roll,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   roll,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// Parse validates signature and expiry and returns the claims.
func Parse(tokenStr, key string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(key), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Roll == "" {
		return Claims{}, ErrTokenInvalid
	}
	return *claims, nil
}
