package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"frota/internal/events"
)

type fakeSubscription struct {
	mu     sync.Mutex
	closed bool
}

func (s *fakeSubscription) Unsubscribe() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeSubscription) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// fakeSubscriber hands every subscriber the queued changes right away.
type fakeSubscriber struct {
	queued    []events.Change
	gotTenant string
	gotTables []string
	gotFilter events.Filter
	sub       *fakeSubscription
}

func (f *fakeSubscriber) Subscribe(tenantID string, tables []string, filter events.Filter, fn func(events.Change)) (events.Subscription, error) {
	f.gotTenant, f.gotTables, f.gotFilter = tenantID, tables, filter
	for _, c := range f.queued {
		fn(c)
	}
	f.sub = &fakeSubscription{}
	return f.sub, nil
}

func setupChangesRouter(handler *ChangesHandler) *gin.Engine {
	r := gin.New()
	r.GET("/changes", injectCaller(testTenantID, testUserID), handler.Stream)
	return r
}

// streamFor runs the feed until the deadline and returns the recorded body.
func streamFor(r *gin.Engine, path string, d time.Duration) *httptest.ResponseRecorder {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, path, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestChangesHandler_Stream(t *testing.T) {
	t.Run("sends ready then queued changes", func(t *testing.T) {
		sub := &fakeSubscriber{queued: []events.Change{
			events.NewChange(testTenantID, events.TableAccountsPayable, events.OpUpdate, testID),
		}}
		r := setupChangesRouter(NewChangesHandler(sub))
		rec := streamFor(r, "/changes?tables=accounts_payable,costs&record_id="+testID, 100*time.Millisecond)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "event:ready") {
			t.Errorf("expected ready event, got %q", body)
		}
		if !strings.Contains(body, "event:change") || !strings.Contains(body, testID) {
			t.Errorf("expected change event, got %q", body)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
			t.Errorf("expected event stream content type, got %q", ct)
		}
		if sub.gotTenant != testTenantID {
			t.Errorf("expected tenant %q, got %q", testTenantID, sub.gotTenant)
		}
		if len(sub.gotTables) != 2 || sub.gotTables[1] != "costs" {
			t.Errorf("unexpected tables %v", sub.gotTables)
		}
		if sub.gotFilter == nil || sub.gotFilter(events.Change{RecordID: "other"}) {
			t.Error("expected a record filter")
		}
		if !sub.sub.isClosed() {
			t.Error("expected unsubscribe when the client leaves")
		}
	})

	t.Run("sends heartbeats", func(t *testing.T) {
		handler := NewChangesHandler(&fakeSubscriber{})
		handler.heartbeat = 10 * time.Millisecond
		rec := streamFor(setupChangesRouter(handler), "/changes", 60*time.Millisecond)

		if !strings.Contains(rec.Body.String(), "event:heartbeat") {
			t.Errorf("expected heartbeat, got %q", rec.Body.String())
		}
	})

	t.Run("rejects table patterns", func(t *testing.T) {
		r := setupChangesRouter(NewChangesHandler(&fakeSubscriber{}))
		rec := doRequest(r, http.MethodGet, "/changes?tables=costs,*", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 503 without a broker", func(t *testing.T) {
		r := setupChangesRouter(NewChangesHandler(events.NopBus{}))
		rec := doRequest(r, http.MethodGet, "/changes", "")
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "REALTIME_UNAVAILABLE")
	})
}
