package presence

import (
	"context"
	"testing"
	"time"

	"anonchat/internal/app/store"
	"anonchat/internal/pkg/errs"
)

type fakeStore struct {
	stats         store.UserStats
	messagesToday int
	users         map[string]store.AnonymousUser

	sweepCutoff    time.Time
	serverCounters map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:          make(map[string]store.AnonymousUser),
		serverCounters: make(map[string]int),
	}
}

func (f *fakeStore) MarkStaleOffline(_ context.Context, cutoff time.Time) (int64, error) {
	f.sweepCutoff = cutoff
	return 0, nil
}

func (f *fakeStore) GetUserStats(_ context.Context, _ time.Time) (store.UserStats, error) {
	return f.stats, nil
}

func (f *fakeStore) CountMessagesToday(_ context.Context) (int, error) {
	return f.messagesToday, nil
}

func (f *fakeStore) SetServerOnlineCount(_ context.Context, name string, online int) error {
	f.serverCounters[name] = online
	return nil
}

func (f *fakeStore) TouchUserBySessionToken(_ context.Context, token string) (store.AnonymousUser, error) {
	u, ok := f.users[token]
	if !ok {
		return store.AnonymousUser{}, store.ErrNoRows
	}
	return u, nil
}

func TestOnlineEstimateApply(t *testing.T) {
	tests := []struct {
		name     string
		estimate OnlineEstimate
		online   int
		expected int
	}{
		{name: "floor wins when quiet", estimate: OnlineEstimate{Multiplier: 4, Floor: 200}, online: 10, expected: 200},
		{name: "multiplier wins when busy", estimate: OnlineEstimate{Multiplier: 4, Floor: 200}, online: 100, expected: 400},
		{name: "boundary", estimate: OnlineEstimate{Multiplier: 4, Floor: 200}, online: 50, expected: 200},
		{name: "identity multiplier", estimate: OnlineEstimate{Multiplier: 1, Floor: 50}, online: 80, expected: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.estimate.Apply(tt.online); got != tt.expected {
				t.Fatalf("Apply(%d) = %d, want %d", tt.online, got, tt.expected)
			}
		})
	}
}

func TestStatsSweepUsesOnlineWindow(t *testing.T) {
	st := newFakeStore()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	svc := &Service{store: st, now: func() time.Time { return now }}

	if _, customErr := svc.Stats(context.Background()); customErr != nil {
		t.Fatalf("unexpected error: %v", customErr)
	}

	expected := now.Add(-OnlineWindow)
	if !st.sweepCutoff.Equal(expected) {
		t.Fatalf("sweep cutoff = %v, want %v (5 minutes before now)", st.sweepCutoff, expected)
	}
}

func TestStatsAppliesDemoFloorsToResponseOnly(t *testing.T) {
	st := newFakeStore()
	st.stats = store.UserStats{TotalUsers: 12, OnlineUsers: 3, ActiveToday: 5}
	st.messagesToday = 7
	svc := NewService(st)

	stats, customErr := svc.Stats(context.Background())
	if customErr != nil {
		t.Fatalf("unexpected error: %v", customErr)
	}

	if stats.OnlineUsers != DemoMinOnlineUsers {
		t.Fatalf("online_users = %d, want demo floor %d", stats.OnlineUsers, DemoMinOnlineUsers)
	}
	if stats.MessagesToday != DemoMinMessagesToday {
		t.Fatalf("messages_today = %d, want demo floor %d", stats.MessagesToday, DemoMinMessagesToday)
	}
	if stats.TotalUsers != 12 || stats.ActiveToday != 5 {
		t.Fatalf("unfloored aggregates altered: %+v", stats)
	}

	// The persisted server counters use the real online count, not the floored one.
	if got := st.serverCounters["General Chat"]; got != 200 {
		t.Fatalf("General Chat counter = %d, want max(200, 3*4)", got)
	}
}

func TestStatsPassesRealCountsThroughWhenAboveFloors(t *testing.T) {
	st := newFakeStore()
	st.stats = store.UserStats{TotalUsers: 900, OnlineUsers: 450, ActiveToday: 600}
	st.messagesToday = 4321
	svc := NewService(st)

	stats, customErr := svc.Stats(context.Background())
	if customErr != nil {
		t.Fatalf("unexpected error: %v", customErr)
	}

	if stats.OnlineUsers != 450 || stats.MessagesToday != 4321 {
		t.Fatalf("real counts above the floors must pass through: %+v", stats)
	}

	expected := map[string]int{
		"General Chat": 1800, // 450 * 4
		"Gamers":       1350, // 450 * 3
		"Creative":     450,  // 450 * 1
		"Music":        900,  // 450 * 2
	}
	for name, want := range expected {
		if got := st.serverCounters[name]; got != want {
			t.Fatalf("%s counter = %d, want %d", name, got, want)
		}
	}
	if len(st.serverCounters) != len(expected) {
		t.Fatalf("unmapped servers must keep their counters; wrote %v", st.serverCounters)
	}
}

func TestHeartbeatMissingToken(t *testing.T) {
	svc := NewService(newFakeStore())

	_, customErr := svc.Heartbeat(context.Background(), "")
	if customErr == nil || customErr.Code != errs.ErrMissingSessionToken {
		t.Fatalf("expected missing-token error, got %v", customErr)
	}
}

func TestHeartbeatUnknownTokenNeverCreates(t *testing.T) {
	st := newFakeStore()
	svc := NewService(st)

	_, customErr := svc.Heartbeat(context.Background(), "sess_000000000000")
	if customErr == nil || customErr.Code != errs.ErrUserNotFound {
		t.Fatalf("expected user-not-found error, got %v", customErr)
	}
	if len(st.users) != 0 {
		t.Fatalf("heartbeat created a user row for an unknown token")
	}
}

func TestHeartbeatKnownToken(t *testing.T) {
	st := newFakeStore()
	lastActive := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	st.users["sess_abcdef012345"] = store.AnonymousUser{
		ID:         9,
		Username:   "Anonymous#0009",
		LastActive: lastActive,
	}
	svc := NewService(st)

	result, customErr := svc.Heartbeat(context.Background(), "sess_abcdef012345")
	if customErr != nil {
		t.Fatalf("unexpected error: %v", customErr)
	}

	if !result.Success || result.UserID != 9 || result.Username != "Anonymous#0009" {
		t.Fatalf("unexpected heartbeat result: %+v", result)
	}
	if result.LastActive != lastActive.Format(time.RFC3339) {
		t.Fatalf("last_active = %q, want RFC3339 timestamp", result.LastActive)
	}
}
