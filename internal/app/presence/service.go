/*
Package presence implements online-status bookkeeping and aggregate statistics.

There is no background scheduler: staleness is corrected lazily by a sweep that
runs at the start of every stats read. Heartbeats refresh a known session and
deliberately refuse to create identities for unknown tokens; only the message
path mints new identities.
*/
package presence

import (
	"context"
	"errors"
	"time"

	"anonchat/internal/app/store"
	"anonchat/internal/pkg/errs"
	"anonchat/internal/pkg/logx"
)

// OnlineWindow is how long a session counts as online after its last activity.
const OnlineWindow = 5 * time.Minute

// activeWindow is the lookback for the active-today aggregate.
const activeWindow = 24 * time.Hour

// Stats is the client-facing statistics payload.
type Stats struct {
	TotalUsers    int    `json:"total_users"`
	OnlineUsers   int    `json:"online_users"`
	ActiveToday   int    `json:"active_today"`
	MessagesToday int    `json:"messages_today"`
	UpdatedAt     string `json:"updated_at"`
}

// HeartbeatResult is the client-facing heartbeat acknowledgement.
type HeartbeatResult struct {
	Success    bool   `json:"success"`
	UserID     int32  `json:"user_id"`
	Username   string `json:"username"`
	LastActive string `json:"last_active"`
}

// Store is the subset of the store the presence service needs.
type Store interface {
	MarkStaleOffline(ctx context.Context, cutoff time.Time) (int64, error)
	GetUserStats(ctx context.Context, activeCutoff time.Time) (store.UserStats, error)
	CountMessagesToday(ctx context.Context) (int, error)
	SetServerOnlineCount(ctx context.Context, name string, online int) error
	TouchUserBySessionToken(ctx context.Context, token string) (store.AnonymousUser, error)
}

// Service computes presence statistics and records heartbeats.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a presence Service.
func NewService(st Store) *Service {
	return &Service{store: st, now: time.Now}
}

// Stats sweeps stale sessions offline, aggregates user and message counts,
// persists the synthesized per-server online counters, and returns the stats
// payload with the demo floors applied.
//
// The sweep and the aggregation are separate statements; a heartbeat landing
// between them can leave the counts slightly stale, which is tolerated.
func (s *Service) Stats(ctx context.Context) (Stats, *errs.CustomError) {
	now := s.now()

	demoted, err := s.store.MarkStaleOffline(ctx, now.Add(-OnlineWindow))
	if err != nil {
		return Stats{}, errs.NewStorageError(err)
	}
	if demoted > 0 {
		logx.Info("Swept stale sessions offline", "count", demoted)
	}

	userStats, err := s.store.GetUserStats(ctx, now.Add(-activeWindow))
	if err != nil {
		return Stats{}, errs.NewStorageError(err)
	}

	messagesToday, err := s.store.CountMessagesToday(ctx)
	if err != nil {
		return Stats{}, errs.NewStorageError(err)
	}

	for name, estimate := range ServerOnlineEstimates {
		if err := s.store.SetServerOnlineCount(ctx, name, estimate.Apply(userStats.OnlineUsers)); err != nil {
			return Stats{}, errs.NewStorageError(err)
		}
	}

	return Stats{
		TotalUsers:    userStats.TotalUsers,
		OnlineUsers:   max(userStats.OnlineUsers, DemoMinOnlineUsers),
		ActiveToday:   userStats.ActiveToday,
		MessagesToday: max(messagesToday, DemoMinMessagesToday),
		UpdatedAt:     now.Format(time.RFC3339),
	}, nil
}

// Heartbeat refreshes the session behind the token. A missing token is a
// validation error; an unknown token is not found. Unlike the message path,
// a heartbeat never creates an identity: presenting one implies the session
// already exists.
func (s *Service) Heartbeat(ctx context.Context, sessionToken string) (HeartbeatResult, *errs.CustomError) {
	if sessionToken == "" {
		return HeartbeatResult{}, errs.NewError(errs.ErrMissingSessionToken)
	}

	user, err := s.store.TouchUserBySessionToken(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, store.ErrNoRows) {
			return HeartbeatResult{}, errs.NewError(errs.ErrUserNotFound)
		}
		return HeartbeatResult{}, errs.NewStorageError(err)
	}

	return HeartbeatResult{
		Success:    true,
		UserID:     user.ID,
		Username:   user.Username,
		LastActive: user.LastActive.Format(time.RFC3339),
	}, nil
}
