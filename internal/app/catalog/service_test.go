package catalog

import (
	"context"
	"testing"

	"anonchat/internal/app/store"
	"anonchat/internal/pkg/errs"
)

type fakeStore struct {
	servers  []store.Server
	channels map[int32][]store.Channel

	listedAll      bool
	filteredServer int32
}

func (f *fakeStore) ListServers(_ context.Context) ([]store.Server, error) {
	return f.servers, nil
}

func (f *fakeStore) ListChannels(_ context.Context) ([]store.Channel, error) {
	f.listedAll = true
	var all []store.Channel
	for _, chs := range f.channels {
		all = append(all, chs...)
	}
	return all, nil
}

func (f *fakeStore) ListServerChannels(_ context.Context, serverID int32) ([]store.Channel, error) {
	f.filteredServer = serverID
	return f.channels[serverID], nil
}

func TestServersPassThrough(t *testing.T) {
	st := &fakeStore{servers: []store.Server{
		{ID: 1, Name: "General Chat", Members: 1547, Online: 234},
		{ID: 4, Name: "Music", Members: 723, Online: 89},
	}}
	svc := NewService(st)

	servers, customErr := svc.Servers(context.Background())
	if customErr != nil {
		t.Fatalf("unexpected error: %v", customErr)
	}
	if len(servers) != 2 || servers[0].Name != "General Chat" {
		t.Fatalf("unexpected servers: %+v", servers)
	}
}

func TestChannelsFiltersByServer(t *testing.T) {
	st := &fakeStore{channels: map[int32][]store.Channel{
		3: {
			{ID: 4, Name: "voice", ServerName: "Creative"},
		},
		1: {
			{ID: 1, Name: "general", ServerName: "General Chat"},
		},
	}}
	svc := NewService(st)

	channels, customErr := svc.Channels(context.Background(), "3")
	if customErr != nil {
		t.Fatalf("unexpected error: %v", customErr)
	}

	if st.filteredServer != 3 {
		t.Fatalf("store filtered by server %d, want 3", st.filteredServer)
	}
	if st.listedAll {
		t.Fatalf("a filtered request must not list all channels")
	}
	if len(channels) != 1 || channels[0].Name != "voice" {
		t.Fatalf("unexpected channels: %+v", channels)
	}
}

func TestChannelsWithoutFilterListsAll(t *testing.T) {
	st := &fakeStore{channels: map[int32][]store.Channel{
		1: {{ID: 1, Name: "general"}, {ID: 2, Name: "random"}},
	}}
	svc := NewService(st)

	channels, customErr := svc.Channels(context.Background(), "")
	if customErr != nil {
		t.Fatalf("unexpected error: %v", customErr)
	}
	if !st.listedAll {
		t.Fatalf("expected the unfiltered listing to be used")
	}
	if len(channels) != 2 {
		t.Fatalf("expected all channels, got %d", len(channels))
	}
}

func TestChannelsRejectsMalformedServerID(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, customErr := svc.Channels(context.Background(), "not-a-number")
	if customErr == nil || customErr.Code != errs.ErrInvalidParams {
		t.Fatalf("expected invalid-params error, got %v", customErr)
	}
}
