package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenExp  = 24 * time.Hour
	refreshTokenExp = 7 * 24 * time.Hour
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

// Claims is the identity claim set embedded in every issued token.
type Claims struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	RoleName string `json:"roleName"`
	RoleID   string `json:"role_id"`
	UserID   string `json:"id"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a short-lived token with the access secret.
func GenerateAccessToken(claims Claims, secret string) (string, error) {
	return generateToken(claims, secret, accessTokenExp)
}

// GenerateRefreshToken signs a long-lived token with the refresh secret. The
// secret must differ from the access secret so the two classes can never
// cross-validate.
func GenerateRefreshToken(claims Claims, secret string) (string, error) {
	return generateToken(claims, secret, refreshTokenExp)
}

func generateToken(claims Claims, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(expiry))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken validates the signature and expiry of a token and returns its
// claims. Tokens are stateless: there is no server-side record and no
// revocation, expiry is the only bound on their lifetime.
func VerifyToken(token, secret string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	return claims, nil
}
