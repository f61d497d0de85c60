/*
Package catalog lists the chat servers (communities) and their channels,
joined with the denormalized member, online, and message counters.
*/
package catalog

import (
	"context"
	"strconv"

	"anonchat/internal/app/store"
	"anonchat/internal/pkg/errs"
)

// Store is the subset of the store the catalog service needs.
type Store interface {
	ListServers(ctx context.Context) ([]store.Server, error)
	ListChannels(ctx context.Context) ([]store.Channel, error)
	ListServerChannels(ctx context.Context, serverID int32) ([]store.Channel, error)
}

// Service reads the server/channel catalog.
type Service struct {
	store Store
}

// NewService creates a catalog Service.
func NewService(st Store) *Service {
	return &Service{store: st}
}

// Servers lists every server ordered by member count, largest first.
func (s *Service) Servers(ctx context.Context) ([]store.Server, *errs.CustomError) {
	servers, err := s.store.ListServers(ctx)
	if err != nil {
		return nil, errs.NewStorageError(err)
	}
	return servers, nil
}

// Channels lists channels. With an empty serverID it returns all channels,
// busiest first; with a numeric serverID it returns that server's channels
// ordered by name.
func (s *Service) Channels(ctx context.Context, serverID string) ([]store.Channel, *errs.CustomError) {
	if serverID == "" {
		channels, err := s.store.ListChannels(ctx)
		if err != nil {
			return nil, errs.NewStorageError(err)
		}
		return channels, nil
	}

	id, err := strconv.ParseInt(serverID, 10, 32)
	if err != nil {
		return nil, errs.NewError(errs.ErrInvalidParams)
	}

	channels, listErr := s.store.ListServerChannels(ctx, int32(id))
	if listErr != nil {
		return nil, errs.NewStorageError(listErr)
	}
	return channels, nil
}
