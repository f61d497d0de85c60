package handler

import (
	"context"

	"anonchat/internal/app/catalog"
	"anonchat/internal/app/message"
	"anonchat/internal/app/presence"
	"anonchat/internal/app/store"
	"anonchat/internal/configs"
	"anonchat/internal/pkg/errs"
)

// MessageService lists and appends channel messages.
type MessageService interface {
	List(ctx context.Context, channelID int32, limit int) ([]message.View, *errs.CustomError)
	Append(ctx context.Context, channelID int32, text, sessionToken string) (message.View, string, *errs.CustomError)
}

// PresenceService computes online statistics and records heartbeats.
type PresenceService interface {
	Stats(ctx context.Context) (presence.Stats, *errs.CustomError)
	Heartbeat(ctx context.Context, sessionToken string) (presence.HeartbeatResult, *errs.CustomError)
}

// CatalogService lists servers and channels.
type CatalogService interface {
	Servers(ctx context.Context) ([]store.Server, *errs.CustomError)
	Channels(ctx context.Context, serverID string) ([]store.Channel, *errs.CustomError)
}

// AppDeps bundles the dependencies the HTTP handlers need.
type AppDeps struct {
	Config   *configs.AppConfig
	Messages MessageService
	Presence PresenceService
	Catalog  CatalogService
}

var (
	_ MessageService  = (*message.Service)(nil)
	_ PresenceService = (*presence.Service)(nil)
	_ CatalogService  = (*catalog.Service)(nil)
)
