/*
Package message implements listing and appending of channel messages.

Listing returns the newest messages of a channel in chat-scrollback order
(oldest first); appending attributes the message to the resolved anonymous
identity and bumps the channel's denormalized counter atomically.
*/
package message

import (
	"context"
	"strings"
	"time"

	"anonchat/internal/app/identity"
	"anonchat/internal/app/store"
	"anonchat/internal/pkg/errs"
)

const (
	// DefaultLimit is the number of messages returned when the client does not ask for one.
	DefaultLimit = 50

	// MaxLimit caps how many messages a single list request may return.
	MaxLimit = 100
)

// View is the client-facing shape of a single message.
type View struct {
	ID      int32  `json:"id"`
	User    string `json:"user"`
	Avatar  string `json:"avatar"`
	Message string `json:"message"`

	// Time is the creation time formatted as HH:MM, server-local.
	Time string `json:"time"`
}

// Store is the subset of the store the message service needs.
type Store interface {
	ListMessages(ctx context.Context, channelID int32, limit int) ([]store.MessageRow, error)
	AppendMessage(ctx context.Context, channelID, userID int32, content string) (int32, time.Time, error)
}

// Resolver resolves a session token to an anonymous identity, creating one when needed.
type Resolver interface {
	ResolveOrCreate(ctx context.Context, sessionToken string) (identity.Identity, *errs.CustomError)
}

// Service wires the message store and identity resolver together.
type Service struct {
	store Store
	ids   Resolver
}

// NewService creates a message Service.
func NewService(st Store, ids Resolver) *Service {
	return &Service{store: st, ids: ids}
}

// List returns up to limit messages of the channel, oldest first. A limit below
// zero is rejected; a limit above MaxLimit is clamped. Zero is honored and
// returns nothing; the handler substitutes DefaultLimit when the client did not
// ask for a limit at all.
func (s *Service) List(ctx context.Context, channelID int32, limit int) ([]View, *errs.CustomError) {
	switch {
	case limit < 0:
		return nil, errs.NewError(errs.ErrInvalidParams)
	case limit > MaxLimit:
		limit = MaxLimit
	}

	rows, err := s.store.ListMessages(ctx, channelID, limit)
	if err != nil {
		return nil, errs.NewStorageError(err)
	}

	// Rows come back newest first; flip them so old messages scroll on top.
	views := make([]View, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		views = append(views, rowToView(rows[i]))
	}
	return views, nil
}

// Append stores a new message in the channel, attributed to the identity behind
// sessionToken (which is created on the fly when unknown or absent). It returns
// the created message and the session token now in effect.
func (s *Service) Append(ctx context.Context, channelID int32, text, sessionToken string) (View, string, *errs.CustomError) {
	content := strings.TrimSpace(text)
	if content == "" {
		return View{}, "", errs.NewError(errs.ErrEmptyMessage)
	}

	who, customErr := s.ids.ResolveOrCreate(ctx, sessionToken)
	if customErr != nil {
		return View{}, "", customErr
	}

	id, createdAt, err := s.store.AppendMessage(ctx, channelID, who.UserID, content)
	if err != nil {
		return View{}, "", errs.NewStorageError(err)
	}

	view := View{
		ID:      id,
		User:    who.Username,
		Avatar:  who.AvatarLetter,
		Message: content,
		Time:    createdAt.Local().Format("15:04"),
	}
	return view, who.SessionToken, nil
}

func rowToView(row store.MessageRow) View {
	return View{
		ID:      row.ID,
		User:    row.Username,
		Avatar:  row.AvatarLetter,
		Message: row.Content,
		Time:    row.CreatedAt.Local().Format("15:04"),
	}
}
