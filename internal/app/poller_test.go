package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/five82/flip/internal/feed"
	"github.com/five82/flip/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	// Verify that backoff never exceeds maxBackoff regardless of input
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 20; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

type stubFetcher struct {
	items []feed.Item
	err   error
	calls chan struct{}
}

func (s *stubFetcher) FetchItems(ctx context.Context) ([]feed.Item, error) {
	if s.calls != nil {
		select {
		case s.calls <- struct{}{}:
		default:
		}
	}
	return s.items, s.err
}

func TestPoller_RefreshUpdatesStore(t *testing.T) {
	store := &state.Store{}
	p := NewPoller(store, &stubFetcher{items: []feed.Item{{ID: 7}}}, time.Second, nil)

	p.refresh(context.Background())

	snap := store.Snapshot()
	if snap.Loading {
		t.Fatalf("Loading = true after refresh, want false")
	}
	if len(snap.Items) != 1 || snap.Items[0].ID != 7 {
		t.Fatalf("Items = %#v, want one item id=7", snap.Items)
	}
}

func TestPoller_RefreshRecordsFailure(t *testing.T) {
	store := &state.Store{}
	p := NewPoller(store, &stubFetcher{err: errors.New("down")}, time.Second, nil)

	p.refresh(context.Background())
	p.refresh(context.Background())

	snap := store.Snapshot()
	if snap.ConsecutiveFailures != 2 {
		t.Fatalf("ConsecutiveFailures = %d, want 2", snap.ConsecutiveFailures)
	}
	if !snap.IsOffline() {
		t.Fatalf("IsOffline = false, want true")
	}
}

func TestPoller_StartFetchesAndHonoursRefresh(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	fetcher := &stubFetcher{calls: make(chan struct{}, 1)}
	p := StartPoller(ctx, &state.Store{}, fetcher, time.Hour, nil)

	waitCall := func(what string) {
		t.Helper()
		select {
		case <-fetcher.calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("no fetch after %s", what)
		}
	}
	waitCall("start")
	p.Refresh()
	waitCall("Refresh")
}
