package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	internal_errors "github.com/itchan-dev/forum-api/internal/errors"
	"github.com/itchan-dev/forum-api/internal/logger"
)

type JwtService interface {
	NewToken(userId, username string) (string, error)
	DecodeToken(jwtStr string) (*jwt.Token, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey, ttl}
}

// NewToken issues an HS256 access token with uid, username and exp claims.
func (j *Jwt) NewToken(userId, username string) (string, error) {
	claims := jwt.MapClaims{}
	claims["uid"] = userId
	claims["username"] = username
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("can't create token")
	}
	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (*jwt.Token, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, internal_errors.Unauthorized(fmt.Sprintf("unexpected signing method: %v", token.Header["alg"]))
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		logger.Log.Debug("token rejected", "error", err)
		return nil, internal_errors.Unauthorized("invalid token signature")
	}
	if !token.Valid {
		return nil, internal_errors.Unauthorized("invalid access token")
	}
	return token, nil
}
