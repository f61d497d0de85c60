/*
Package handler provides HTTP handler functions for the anonymous chat API.

This file contains the presence endpoints: online statistics and session heartbeats.
*/
package handler

import (
	"net/http"

	"anonchat/internal/pkg/req"
	"anonchat/internal/pkg/resp"
)

// HandleStats sweeps stale sessions offline and returns the aggregated online
// statistics, with the synthesized per-server counters persisted as a side effect.
func HandleStats(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, customErr := deps.Presence.Stats(r.Context())
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, stats)
	}
}

// HandleHeartbeat refreshes the activity of the session named by X-Session-Token.
// It rejects requests without a token and does not create identities for unknown ones.
func HandleHeartbeat(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, customErr := deps.Presence.Heartbeat(r.Context(), req.SessionToken(r))
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, result)
	}
}
