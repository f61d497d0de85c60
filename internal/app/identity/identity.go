/*
Package identity resolves opaque session tokens to anonymous users.

An anonymous user is an identity record with no authentication, derived solely
from possession of a session token. Resolution either finds the existing user
for a token or mints a fresh identity; it never fails for an unknown token.
*/
package identity

import (
	"context"
	"errors"

	"anonchat/internal/app/db"
	"anonchat/internal/app/store"
	"anonchat/internal/pkg/errs"
	"anonchat/internal/pkg/logx"
	"anonchat/internal/pkg/randx"
)

// Identity is the resolved anonymous identity attached to a request.
type Identity struct {
	UserID       int32
	Username     string
	AvatarLetter string

	// SessionToken is the token now bound to this identity. For a recognized
	// token it is the caller's token unchanged; for an absent token it is a
	// freshly minted one the client must persist.
	SessionToken string
}

// UserStore is the subset of the store the resolver needs.
type UserStore interface {
	GetUserBySessionToken(ctx context.Context, token string) (store.AnonymousUser, error)
	CreateUser(ctx context.Context, username, avatarLetter, token string) (int32, error)
	TouchUser(ctx context.Context, id int32) error
}

// Resolver implements derive-or-create identity resolution over a user store.
type Resolver struct {
	users UserStore
}

// NewResolver creates a Resolver backed by the given user store.
func NewResolver(users UserStore) *Resolver {
	return &Resolver{users: users}
}

// ResolveOrCreate returns the identity bound to sessionToken, creating one when needed.
//
// An empty token mints a new token and a new user. A recognized token refreshes
// the user's activity and returns it unchanged. An unrecognized token is silently
// adopted: a fresh identity is created and bound to the caller-supplied token.
// Exactly one row insert or one row update happens per call.
func (r *Resolver) ResolveOrCreate(ctx context.Context, sessionToken string) (Identity, *errs.CustomError) {
	if sessionToken == "" {
		return r.create(ctx, randx.SessionToken())
	}

	user, err := r.users.GetUserBySessionToken(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, store.ErrNoRows) {
			return r.create(ctx, sessionToken)
		}
		return Identity{}, errs.NewStorageError(err)
	}

	if err := r.users.TouchUser(ctx, user.ID); err != nil {
		return Identity{}, errs.NewStorageError(err)
	}

	return Identity{
		UserID:       user.ID,
		Username:     user.Username,
		AvatarLetter: user.AvatarLetter,
		SessionToken: sessionToken,
	}, nil
}

func (r *Resolver) create(ctx context.Context, sessionToken string) (Identity, *errs.CustomError) {
	username := randx.DisplayName()
	avatarLetter := randx.AvatarLetter(username)

	id, err := r.users.CreateUser(ctx, username, avatarLetter, sessionToken)
	if err != nil {
		// Two concurrent first requests with the same token race on the unique
		// session_token constraint; the loser adopts the winner's identity.
		if db.IsUniqueViolation(err) {
			logx.Warn("Concurrent session creation detected, re-resolving token")
			user, lookupErr := r.users.GetUserBySessionToken(ctx, sessionToken)
			if lookupErr != nil {
				return Identity{}, errs.NewStorageError(lookupErr)
			}
			return Identity{
				UserID:       user.ID,
				Username:     user.Username,
				AvatarLetter: user.AvatarLetter,
				SessionToken: sessionToken,
			}, nil
		}
		return Identity{}, errs.NewStorageError(err)
	}

	return Identity{
		UserID:       id,
		Username:     username,
		AvatarLetter: avatarLetter,
		SessionToken: sessionToken,
	}, nil
}
