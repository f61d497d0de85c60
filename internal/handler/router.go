/*
Package handler provides the HTTP handlers and routing setup for the anonymous chat server.

This file defines the main Router, applying necessary middleware like logging and CORS
before delegating requests to the endpoint handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"anonchat/internal/pkg/errs"
	"anonchat/internal/pkg/logx"
	"anonchat/internal/pkg/req"
	"anonchat/internal/pkg/resp"
)

// preflightMaxAge is how long browsers may cache a CORS preflight response, in seconds.
const preflightMaxAge = 86400

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It configures CORS (including the 24-hour preflight cache), applies global
// middleware, and mounts the message, presence, and catalog endpoints.
func Router(deps *AppDeps) http.Handler {
	r := chi.NewRouter()

	corsAllowedOrigins := []string{"*"}
	if deps.Config.Environment != "development" && len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins: corsAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", req.SessionTokenHeader},
		ExposedHeaders:       []string{},
		MaxAge:               preflightMaxAge,
		OptionsSuccessStatus: http.StatusOK,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		resp.RespondError(w, r, errs.NewError(errs.ErrMethodNotAllowed))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "Anonymous Chat Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Route("/api", func(api chi.Router) {
		api.Get("/messages", HandleListMessages(deps))
		api.Post("/messages", HandleAppendMessage(deps))

		api.Get("/online", HandleStats(deps))
		api.Post("/online", HandleHeartbeat(deps))

		api.Get("/servers", HandleCatalog(deps))
	})

	return r
}
