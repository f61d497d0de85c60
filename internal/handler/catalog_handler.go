/*
Package handler provides HTTP handler functions for the anonymous chat API.

This file contains the catalog endpoint serving both server and channel listings,
switched by the "type" query parameter.
*/
package handler

import (
	"net/http"

	"anonchat/internal/app/store"
	"anonchat/internal/pkg/errs"
	"anonchat/internal/pkg/resp"
)

// ServersResponse is the payload of GET /api/servers?type=servers.
type ServersResponse struct {
	Servers []store.Server `json:"servers"`
}

// ChannelsResponse is the payload of GET /api/servers?type=channels.
type ChannelsResponse struct {
	Channels []store.Channel `json:"channels"`
}

// HandleCatalog lists servers (default) or channels, optionally filtered to one
// server via server_id. Any other "type" value is rejected.
func HandleCatalog(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dataType := r.URL.Query().Get("type")
		if dataType == "" {
			dataType = "servers"
		}

		switch dataType {
		case "servers":
			servers, customErr := deps.Catalog.Servers(r.Context())
			if customErr != nil {
				resp.RespondError(w, r, customErr)
				return
			}
			if servers == nil {
				servers = []store.Server{}
			}
			resp.RespondSuccess(w, r, ServersResponse{Servers: servers})

		case "channels":
			channels, customErr := deps.Catalog.Channels(r.Context(), r.URL.Query().Get("server_id"))
			if customErr != nil {
				resp.RespondError(w, r, customErr)
				return
			}
			if channels == nil {
				channels = []store.Channel{}
			}
			resp.RespondSuccess(w, r, ChannelsResponse{Channels: channels})

		default:
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknownCatalogType))
		}
	}
}
