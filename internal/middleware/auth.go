package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	internal_errors "github.com/itchan-dev/forum-api/internal/errors"
	jwt_internal "github.com/itchan-dev/forum-api/internal/jwt"
	"github.com/itchan-dev/forum-api/internal/logger"
	"github.com/itchan-dev/forum-api/internal/utils"
)

// User is the identity resolved from an access token.
type User struct {
	Id       string
	Username string
}

// Key to store the user in the request context
type key int

const UserClaimsKey key = 0

type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth rejects requests without a valid Bearer token with 401.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *Auth) extractUser(r *http.Request) (*User, error) {
	tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || tokenString == "" {
		return nil, internal_errors.Unauthorized("Missing authentication")
	}

	token, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		logger.Log.Error("invalid jwt claims type")
		return nil, internal_errors.Unauthorized("invalid token")
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		logger.Log.Error("invalid jwt claims", "claim", "uid")
		return nil, internal_errors.Unauthorized("invalid token")
	}
	username, _ := claims["username"].(string)

	return &User{Id: uid, Username: username}, nil
}

func GetUserFromContext(r *http.Request) *User {
	user, ok := r.Context().Value(UserClaimsKey).(*User)
	if !ok {
		return nil
	}
	return user
}
