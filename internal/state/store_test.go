package state

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/andresuchdata/inventree-web/internal/cache"
	"github.com/andresuchdata/inventree-web/internal/client"
	"github.com/andresuchdata/inventree-web/internal/config"
	"github.com/andresuchdata/inventree-web/internal/domain"
	"github.com/andresuchdata/inventree-web/internal/endpoints"
	"github.com/redis/go-redis/v9"
	"github.com/smartystreets/goconvey/convey"
)

const statusPayload = `{
	"PurchaseOrderStatus": {
		"class": "PurchaseOrderStatus",
		"values": {
			"PENDING": {"key": 10, "name": "PENDING", "label": "Pending", "color": "secondary"},
			"PLACED": {"key": 20, "name": "PLACED", "label": "Placed", "color": "primary"}
		}
	}
}`

type fakeFetcher struct {
	mu        sync.Mutex
	responses map[endpoints.Endpoint]string
	failures  map[endpoints.Endpoint]error
	calls     []endpoints.Endpoint
}

func (f *fakeFetcher) Get(ctx context.Context, e endpoints.Endpoint, pk string, out any) error {
	f.mu.Lock()
	f.calls = append(f.calls, e)
	f.mu.Unlock()

	if err := f.failures[e]; err != nil {
		return err
	}
	return json.Unmarshal([]byte(f.responses[e]), out)
}

type memoryCache struct {
	mu     sync.Mutex
	state  *domain.ServerAPIState
	writes int
}

func (m *memoryCache) GetState(ctx context.Context) (*domain.ServerAPIState, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil, false, nil
	}
	copied := *m.state
	return &copied, true, nil
}

func (m *memoryCache) SetState(ctx context.Context, state *domain.ServerAPIState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *state
	m.state = &copied
	m.writes++
	return nil
}

func (m *memoryCache) Invalidate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = nil
	return nil
}

func (m *memoryCache) InvalidateSessions(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return 0, nil
	}
	m.state = nil
	return 1, nil
}

// slowFirstCache delays its first write so that two concurrent updates
// reach the cache out of order unless the store serializes them.
type slowFirstCache struct {
	memoryCache
	once sync.Once
}

func (c *slowFirstCache) SetState(ctx context.Context, state *domain.ServerAPIState) error {
	c.once.Do(func() { time.Sleep(100 * time.Millisecond) })
	return c.memoryCache.SetState(ctx, state)
}

func newFetcher() *fakeFetcher {
	return &fakeFetcher{
		responses: map[endpoints.Endpoint]string{
			endpoints.APIServerInfo: `{"server": "InvenTree", "version": "0.14.0", "apiVersion": 160}`,
			endpoints.GlobalStatus:  statusPayload,
		},
		failures: map[endpoints.Endpoint]error{},
	}
}

func TestStoreFetch(t *testing.T) {
	convey.Convey("Given an empty store", t, func() {
		ctx := context.Background()
		fetcher := newFetcher()
		sessionCache := &memoryCache{}
		store := NewStore(ctx, fetcher, sessionCache)

		convey.Convey("Then nothing is cached before the first fetch", func() {
			_, ok := store.ServerInfo()
			convey.So(ok, convey.ShouldBeFalse)
			_, ok = store.StatusLookup()
			convey.So(ok, convey.ShouldBeFalse)
			convey.So(store.StatusLabel(domain.ModelPurchaseOrder, 10), convey.ShouldEqual, "10")
		})

		convey.Convey("When both requests succeed", func() {
			convey.So(store.Fetch(ctx), convey.ShouldBeNil)

			convey.Convey("Then both parts of the state are populated", func() {
				info, ok := store.ServerInfo()
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(info.Version(), convey.ShouldEqual, "0.14.0")
				convey.So(store.StatusLabel(domain.ModelPurchaseOrder, 20), convey.ShouldEqual, "Placed")
				convey.So(fetcher.calls, convey.ShouldHaveLength, 2)
			})

			convey.Convey("Then each partial update is persisted", func() {
				convey.So(sessionCache.writes, convey.ShouldEqual, 2)
				convey.So(sessionCache.state.Server, convey.ShouldNotBeNil)
				convey.So(sessionCache.state.Status, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the server info request fails", func() {
			fetcher.failures[endpoints.APIServerInfo] = errors.New("connection refused")

			convey.Convey("Then the failure is swallowed and status still updates", func() {
				convey.So(store.Fetch(ctx), convey.ShouldBeNil)
				_, ok := store.ServerInfo()
				convey.So(ok, convey.ShouldBeFalse)
				convey.So(store.StatusLabel(domain.ModelPurchaseOrder, 10), convey.ShouldEqual, "Pending")
			})
		})

		convey.Convey("When the status request fails", func() {
			fetcher.failures[endpoints.GlobalStatus] = errors.New("boom")

			convey.Convey("Then the error surfaces and server info still updates", func() {
				err := store.Fetch(ctx)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "boom")
				_, ok := store.ServerInfo()
				convey.So(ok, convey.ShouldBeTrue)
				_, ok = store.StatusLookup()
				convey.So(ok, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When a later fetch returns different data", func() {
			convey.So(store.Fetch(ctx), convey.ShouldBeNil)
			fetcher.responses[endpoints.APIServerInfo] = `{"version": "0.15.0"}`
			convey.So(store.Fetch(ctx), convey.ShouldBeNil)

			convey.Convey("Then the server info is replaced wholesale", func() {
				info, _ := store.ServerInfo()
				convey.So(info.Version(), convey.ShouldEqual, "0.15.0")
				convey.So(info.APIVersion(), convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When the store is cleared", func() {
			convey.So(store.Fetch(ctx), convey.ShouldBeNil)
			convey.So(store.Clear(ctx), convey.ShouldBeNil)

			_, ok := store.ServerInfo()
			convey.So(ok, convey.ShouldBeFalse)
			convey.So(sessionCache.state, convey.ShouldBeNil)
		})

		convey.Convey("When every session is cleared", func() {
			convey.So(store.Fetch(ctx), convey.ShouldBeNil)
			removed, err := store.ClearSessions(ctx)
			convey.So(err, convey.ShouldBeNil)
			convey.So(removed, convey.ShouldEqual, 1)

			_, ok := store.StatusLookup()
			convey.So(ok, convey.ShouldBeFalse)
			convey.So(sessionCache.state, convey.ShouldBeNil)
		})
	})
}

func TestStoreHydratesFromCache(t *testing.T) {
	ctx := context.Background()
	sessionCache := &memoryCache{state: &domain.ServerAPIState{
		Server: domain.ServerInfo{"version": "0.13.5"},
	}}

	store := NewStore(ctx, newFetcher(), sessionCache)

	info, ok := store.ServerInfo()
	if !ok || info.Version() != "0.13.5" {
		t.Fatalf("expected hydrated server info, got %v", info)
	}
	if _, ok := store.StatusLookup(); ok {
		t.Fatalf("status lookup should still be absent")
	}
}

func TestStoreAgainstServerAndRedis(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/":
			_, _ = w.Write([]byte(`{"version": "0.14.0"}`))
		case "/api/generic/status/":
			_, _ = w.Write([]byte(statusPayload))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	api, err := client.New(config.ClientConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	sessionCache := cache.NewRedisServerStateCache(rdb, "session:test", 0)

	if err := NewStore(ctx, api, sessionCache).Fetch(ctx); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	restored := NewStore(ctx, api, sessionCache)
	if got := restored.StatusLabel(domain.ModelPurchaseOrder, 20); got != "Placed" {
		t.Fatalf("expected restored label Placed, got %q", got)
	}
	if info, _ := restored.ServerInfo(); info.Version() != "0.14.0" {
		t.Fatalf("expected restored version, got %v", info)
	}
}

func TestStorePersistsLatestSnapshot(t *testing.T) {
	convey.Convey("Given a session cache whose first write is slow", t, func() {
		ctx := context.Background()
		sessionCache := &slowFirstCache{}
		store := NewStore(ctx, newFetcher(), sessionCache)

		convey.Convey("When both requests complete during the slow write", func() {
			convey.So(store.Fetch(ctx), convey.ShouldBeNil)

			convey.Convey("Then the persisted snapshot matches memory", func() {
				persisted, ok, err := sessionCache.GetState(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(persisted.Server, convey.ShouldNotBeNil)
				convey.So(persisted.Status, convey.ShouldNotBeNil)
				convey.So(*persisted, convey.ShouldResemble, store.Snapshot())
			})

			convey.Convey("Then a store restored from the cache has both parts", func() {
				restored := NewStore(ctx, newFetcher(), sessionCache)
				_, hasServer := restored.ServerInfo()
				_, hasStatus := restored.StatusLookup()
				convey.So(hasServer, convey.ShouldBeTrue)
				convey.So(hasStatus, convey.ShouldBeTrue)
			})
		})
	})
}
