package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/reports"
)

type mockAPI struct {
	info  reports.CompanyInfo
	err   error
	calls int
}

func (m *mockAPI) Settings(ctx context.Context) (reports.CompanyInfo, error) {
	m.calls++
	return m.info, m.err
}

func TestAPIProviderPassesThrough(t *testing.T) {
	api := &mockAPI{info: reports.CompanyInfo{BakeryName: "Mkate Wetu"}}
	info, err := NewAPIProvider(api).Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.BakeryName != "Mkate Wetu" || api.calls != 1 {
		t.Fatalf("info %+v calls %d", info, api.calls)
	}
}

func TestCachedProviderCaches(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()

	api := &mockAPI{info: reports.CompanyInfo{BakeryName: "Mkate Wetu", Phone: "+255 700 111 222"}}
	provider := NewCachedProvider(NewAPIProvider(api), client, time.Minute)

	ctx := context.Background()
	first, err := provider.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := provider.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.calls != 1 {
		t.Fatalf("expected cached second read, api called %d times", api.calls)
	}
	if first != second {
		t.Fatalf("cache changed the payload: %+v vs %+v", first, second)
	}

	// Expiry forces a refetch.
	mr.FastForward(2 * time.Minute)
	if _, err := provider.Get(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.calls != 2 {
		t.Fatalf("expected refetch after TTL, api called %d times", api.calls)
	}
}

func TestCachedProviderDegradesWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()
	mr.Close()

	api := &mockAPI{info: reports.CompanyInfo{BakeryName: "Mkate Wetu"}}
	provider := NewCachedProvider(NewAPIProvider(api), client, time.Minute)

	info, err := provider.Get(context.Background())
	if err != nil {
		t.Fatalf("redis outage must not fail the read: %v", err)
	}
	if info.BakeryName != "Mkate Wetu" || api.calls != 1 {
		t.Fatalf("info %+v calls %d", info, api.calls)
	}
}

func TestCachedProviderSurfacesFetchError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()

	api := &mockAPI{err: errors.New("backend down")}
	provider := NewCachedProvider(NewAPIProvider(api), client, time.Minute)

	if _, err := provider.Get(context.Background()); err == nil {
		t.Fatal("expected error from upstream fetch")
	}
}
