/*
Package handler provides HTTP handler functions for the anonymous chat API.

This file contains the message endpoints: listing a channel's recent history
and posting a new message.
*/
package handler

import (
	"net/http"
	"strconv"

	"anonchat/internal/app/message"
	"anonchat/internal/pkg/errs"
	"anonchat/internal/pkg/req"
	"anonchat/internal/pkg/resp"
)

// ListMessagesResponse is the payload of GET /api/messages.
type ListMessagesResponse struct {
	Messages  []message.View `json:"messages"`
	ChannelID int32          `json:"channel_id"`
}

// HandleListMessages returns the most recent messages of a channel, oldest first.
// Query parameters: channel_id (default "1") and limit (default 50, capped at 100).
func HandleListMessages(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		channelID, customErr := queryInt32(r, "channel_id", 1)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		limit := message.DefaultLimit
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil {
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
				return
			}
			limit = parsed
		}

		messages, customErr := deps.Messages.List(r.Context(), channelID, limit)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		if messages == nil {
			messages = []message.View{}
		}

		resp.RespondSuccess(w, r, ListMessagesResponse{
			Messages:  messages,
			ChannelID: channelID,
		})
	}
}

// AppendMessageInput is the body of POST /api/messages.
type AppendMessageInput struct {
	Message   string `json:"message"`
	ChannelID int32  `json:"channel_id"`
}

// AppendMessageResponse is the payload of a successful POST /api/messages.
type AppendMessageResponse struct {
	Success      bool   `json:"success"`
	Message      any    `json:"message"`
	SessionToken string `json:"session_token"`
}

// HandleAppendMessage stores a new message, creating an anonymous identity for
// the caller when the X-Session-Token header is absent or unrecognized.
func HandleAppendMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input AppendMessageInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.ChannelID == 0 {
			input.ChannelID = 1
		}

		view, token, customErr := deps.Messages.Append(r.Context(), input.ChannelID, input.Message, req.SessionToken(r))
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondCreated(w, r, AppendMessageResponse{
			Success:      true,
			Message:      view,
			SessionToken: token,
		})
	}
}

// queryInt32 parses an int32 query parameter, falling back to def when absent.
func queryInt32(r *http.Request, name string, def int32) (int32, *errs.CustomError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	parsed, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, errs.NewError(errs.ErrInvalidParams)
	}
	return int32(parsed), nil
}
