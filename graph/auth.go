package graph

import (
	"context"
	"errors"

	"github.com/sahilchouksey/todo-graphql-api/model"
	"github.com/sahilchouksey/todo-graphql-api/utils/auth"
	"github.com/sahilchouksey/todo-graphql-api/utils/gqlerror"
	"github.com/sahilchouksey/todo-graphql-api/utils/middleware"
	"go.appointy.com/jaal/schemabuilder"
)

// loginAllowedFields names the alternate identifying fields accepted by
// tokenAuth alongside the password.
var loginAllowedFields = []string{"email", "username"}

// TokenAuthArgs model the login request as a password plus exactly one of
// the allowed identifying fields. Requests matching neither shape are
// rejected at the boundary.
type TokenAuthArgs struct {
	Password string
	Email    *string
	Username *string
}

// VerifyTokenArgs are the arguments of the verifyToken mutation.
type VerifyTokenArgs struct {
	Token string
}

// RefreshTokenArgs are the arguments of the refreshToken mutation.
type RefreshTokenArgs struct {
	Token string
}

func (r *Resolver) registerAuthMutations(sb *schemabuilder.Schema) {
	m := sb.Mutation()
	m.FieldFunc("tokenAuth", r.TokenAuth)
	m.FieldFunc("verifyToken", r.VerifyToken)
	m.FieldFunc("refreshToken", r.RefreshToken)
}

// TokenAuth resolves the identifying field to a user, verifies the password
// and issues a signed token. Lookup and credential failures collapse into one
// generic message so a caller cannot probe which field was wrong.
func (r *Resolver) TokenAuth(ctx context.Context, args TokenAuthArgs) (*AuthPayload, error) {
	ip, _ := middleware.ClientIPFromContext(ctx)
	if locked, retryAfter := r.loginGuard.IsLocked(ctx, ip); locked {
		return nil, gqlerror.TooManyAttempts("Too many failed login attempts. Try again in %d seconds", retryAfter)
	}

	if (args.Email == nil) == (args.Username == nil) {
		return nil, gqlerror.Validation("Must login with password and one of the following fields %v.", loginAllowedFields)
	}

	var (
		user *model.User
		err  error
	)
	if args.Email != nil {
		user, err = r.store.GetUserByEmail(*args.Email)
	} else {
		user, err = r.store.GetUserByUsername(*args.Username)
	}
	if err != nil {
		r.loginGuard.RecordFailedAttempt(ctx, ip)
		return nil, errInvalidCredentials()
	}

	if err := auth.VerifyPassword(user.PasswordHash, args.Password); err != nil {
		r.loginGuard.RecordFailedAttempt(ctx, ip)
		return nil, errInvalidCredentials()
	}

	r.loginGuard.RecordSuccessfulAttempt(ctx, ip)

	token, err := r.jwt.GenerateToken(user.ID, user.Username, user.TokenVersion)
	if err != nil {
		return nil, err
	}

	return &AuthPayload{
		Token: token,
		User:  newUser(user),
	}, nil
}

// VerifyToken checks a token's signature and expiry and returns its payload.
func (r *Resolver) VerifyToken(ctx context.Context, args VerifyTokenArgs) (*TokenPayload, error) {
	claims, err := r.jwt.ValidateToken(args.Token)
	if err != nil {
		return nil, tokenError(err)
	}
	return newTokenPayload(claims), nil
}

// RefreshToken issues a fresh token for a still-refreshable one. Tokens
// issued before the user's last password change are rejected.
func (r *Resolver) RefreshToken(ctx context.Context, args RefreshTokenArgs) (*RefreshPayload, error) {
	claims, err := r.jwt.ValidateToken(args.Token)
	if err != nil {
		return nil, tokenError(err)
	}

	user, err := r.store.GetUserByID(claims.UserID)
	if err != nil {
		return nil, errInvalidCredentials()
	}
	if user.TokenVersion != claims.TokenVersion {
		return nil, gqlerror.Unauthenticated("Token has been invalidated")
	}

	token, refreshed, err := r.jwt.RefreshToken(args.Token, user.TokenVersion)
	if err != nil {
		if errors.Is(err, auth.ErrRefreshExpired) {
			return nil, gqlerror.Validation("Refresh has expired")
		}
		return nil, tokenError(err)
	}

	return &RefreshPayload{
		Token:   token,
		Payload: newTokenPayload(refreshed),
	}, nil
}

func newTokenPayload(claims *auth.Claims) *TokenPayload {
	payload := &TokenPayload{
		Username: claims.Username,
		OrigIat:  claims.OrigIat,
	}
	if claims.ExpiresAt != nil {
		payload.Exp = claims.ExpiresAt.Unix()
	}
	return payload
}

func errInvalidCredentials() error {
	return gqlerror.Unauthenticated("Please enter valid credentials.")
}

func tokenError(err error) error {
	if errors.Is(err, auth.ErrExpiredToken) {
		return gqlerror.Validation("Signature has expired")
	}
	return gqlerror.Validation("Error decoding signature")
}
