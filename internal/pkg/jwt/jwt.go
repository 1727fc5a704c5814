package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// ErrInvalidToken is returned for tokens that decode but are not dashboard
// access tokens.
var ErrInvalidToken = errors.New("invalid token")

const TokenTypeAccess = "access"

type Service interface {
	// GenerateAccessToken issues an access token for an operator of the
	// dashboard. ttl falls back to the configured expiration when zero.
	GenerateAccessToken(subject string, ttl time.Duration) (token string, expiresAt int64, err error)
	// Validate decodes a token and checks it is an access token.
	Validate(tokenString string) (subject string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpiration time.Duration) Service {
	return &JWTService{
		accessTokenExpiration: accessTokenExpiration,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(subject string, ttl time.Duration) (token string, expiresAt int64, err error) {
	if ttl <= 0 {
		ttl = j.accessTokenExpiration
	}
	now := time.Now()
	expiresAt = now.Add(ttl).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"sub":  subject,
		"type": TokenTypeAccess,
		"iat":  now.Unix(),
		"exp":  expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

func (j *JWTService) Validate(tokenString string) (subject string, err error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != TokenTypeAccess {
		return "", ErrInvalidToken
	}

	return token.Subject(), nil
}
