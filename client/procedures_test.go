package client

import (
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProcedures() []Procedure {
	return []Procedure{
		{ID: "1", Title: "Nginx setup", Description: "reverse proxy", Category: "Network", Tags: []string{"docker", "ubuntu"}},
		{ID: "2", Title: "Firewall rules", Description: "iptables basics", Category: "Security", Tags: []string{"linux"}},
		{ID: "3", Title: "Harden SSH", Description: "key-only auth", Category: "Security", Tags: []string{}},
		{ID: "4", Title: "Audit logs", Description: "centralized logging", Category: "Security", Tags: []string{"rsyslog"}},
		{ID: "5", Title: "VLAN segmentation", Description: "switch config", Category: "Network", Tags: []string{}},
	}
}

func TestFilterProcedures_TagMatch(t *testing.T) {
	items := []Procedure{
		{ID: "1", Title: "Nginx setup", Description: "web server", Tags: []string{"docker", "ubuntu"}},
	}

	got := FilterProcedures(items, "docker", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilterProcedures_CategoryCount(t *testing.T) {
	got := FilterProcedures(sampleProcedures(), "", "Security")
	assert.Len(t, got, 3)
}

func TestFilterProcedures_CaseInsensitive(t *testing.T) {
	got := FilterProcedures(sampleProcedures(), "NGINX", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "Nginx setup", got[0].Title)
}

func TestFilterProcedures_Idempotent(t *testing.T) {
	once := FilterProcedures(sampleProcedures(), "log", "all")
	twice := FilterProcedures(once, "log", "all")
	assert.Equal(t, once, twice)
}

func TestFilterProcedures_FilterOrderCommutes(t *testing.T) {
	items := sampleProcedures()

	textFirst := FilterProcedures(FilterProcedures(items, "s", "all"), "", "Security")
	categoryFirst := FilterProcedures(FilterProcedures(items, "", "Security"), "s", "all")
	assert.Equal(t, textFirst, categoryFirst)
}

func TestFilterProcedures_BothFiltersAND(t *testing.T) {
	got := FilterProcedures(sampleProcedures(), "docker", "Security")
	assert.Empty(t, got)
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"docker", "ubuntu"}, ParseTags(" docker , ubuntu ,, "))
	assert.Equal(t, []string{}, ParseTags(""))
	assert.NotNil(t, ParseTags("   "))
}

func TestProcedureBrowser_Create_ValidationSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":200,"message":"OK","data":[]}`))
	}))
	defer srv.Close()

	var notifications []Notification
	notifier := NotifierFunc(func(n Notification) { notifications = append(notifications, n) })

	b := NewProcedureBrowser(New(srv.URL, log.New(testWriter{t}, "", 0)), notifier, nil)

	ok := b.Create(context.Background(), ProcedureDraft{Title: "", Description: "d", Content: "c", Category: "System"})
	assert.False(t, ok)
	assert.Equal(t, int32(0), calls.Load())
	require.Len(t, notifications, 1)
	assert.True(t, notifications[0].Destructive)
}

func TestProcedureBrowser_CreateThenRefetch(t *testing.T) {
	var listCalls, createCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost:
			createCalls.Add(1)
			_, _ = w.Write([]byte(`{"status":200,"message":"OK","data":{"id":"9","title":"t","description":"d","content":"c","category":"System","tags":[]}}`))
		default:
			listCalls.Add(1)
			_, _ = w.Write([]byte(`{"status":200,"message":"OK","data":[{"id":"9","title":"t","description":"d","content":"c","category":"System","tags":[]}]}`))
		}
	}))
	defer srv.Close()

	b := NewProcedureBrowser(New(srv.URL, nil), NopNotifier(), nil)

	ok := b.Create(context.Background(), ProcedureDraft{Title: "t", Description: "d", Content: "c", Category: "System"})
	require.True(t, ok)
	assert.Equal(t, int32(1), createCalls.Load())
	assert.Equal(t, int32(1), listCalls.Load(), "exactly one full refetch after create")

	got, found := b.View("9")
	require.True(t, found)
	assert.Equal(t, "t", got.Title)
}

func TestProcedureBrowser_Create_RefetchFailureWarns(t *testing.T) {
	// The create itself succeeded, so it reports success, but the user
	// is told the list could not be reloaded.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			_, _ = w.Write([]byte(`{"status":200,"message":"OK","data":{"id":"9","title":"t","description":"d","content":"c","category":"System","tags":[]}}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":500,"message":"Internal Server Error","data":null}`))
	}))
	defer srv.Close()

	var notifications []Notification
	notifier := NotifierFunc(func(n Notification) { notifications = append(notifications, n) })

	b := NewProcedureBrowser(New(srv.URL, nil), notifier, nil)

	ok := b.Create(context.Background(), ProcedureDraft{Title: "t", Description: "d", Content: "c", Category: "System"})
	assert.True(t, ok)
	require.Len(t, notifications, 2)
	assert.False(t, notifications[0].Destructive)
	assert.True(t, notifications[1].Destructive)
}

func TestProcedureBrowser_Delete_RefetchFailureWarnsAndKeepsList(t *testing.T) {
	var fetches atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodDelete {
			_, _ = w.Write([]byte(`{"status":200,"message":"Procedure deleted successfully","data":null}`))
			return
		}
		if fetches.Add(1) == 1 {
			_, _ = w.Write([]byte(`{"status":200,"message":"OK","data":[{"id":"1","title":"a","description":"","content":"","category":"System","tags":[]}]}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":500,"message":"Internal Server Error","data":null}`))
	}))
	defer srv.Close()

	var notifications []Notification
	notifier := NotifierFunc(func(n Notification) { notifications = append(notifications, n) })

	b := NewProcedureBrowser(New(srv.URL, nil), notifier, nil)
	require.NoError(t, b.Load(context.Background()))

	assert.True(t, b.Delete(context.Background(), "1"))
	assert.Len(t, b.Filtered(), 1, "stale list stays visible when the reload fails")
	require.Len(t, notifications, 2)
	assert.False(t, notifications[0].Destructive)
	assert.True(t, notifications[1].Destructive)
}

func TestProcedureBrowser_Delete_CancelledIsNoop(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":200,"message":"OK","data":null}`))
	}))
	defer srv.Close()

	decline := ConfirmerFunc(func(string) bool { return false })
	b := NewProcedureBrowser(New(srv.URL, nil), NopNotifier(), decline)

	assert.False(t, b.Delete(context.Background(), "1"))
	assert.Equal(t, int32(0), calls.Load())
}

func TestProcedureBrowser_Delete_RefetchReflectsBackend(t *testing.T) {
	// The second fetch returns the authoritative state even though the
	// deleted id was never in the first list.
	var fetches atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodDelete {
			_, _ = w.Write([]byte(`{"status":200,"message":"Procedure deleted successfully","data":null}`))
			return
		}
		if fetches.Add(1) == 1 {
			_, _ = w.Write([]byte(`{"status":200,"message":"OK","data":[{"id":"1","title":"a","description":"","content":"","category":"System","tags":[]},{"id":"2","title":"b","description":"","content":"","category":"System","tags":[]}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":200,"message":"OK","data":[{"id":"2","title":"b","description":"","content":"","category":"System","tags":[]}]}`))
	}))
	defer srv.Close()

	b := NewProcedureBrowser(New(srv.URL, nil), NopNotifier(), nil)
	require.NoError(t, b.Load(context.Background()))

	require.True(t, b.Delete(context.Background(), "1"))
	filtered := b.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].ID)
}

func TestProcedureBrowser_Delete_FailureLeavesListUnchanged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"status":500,"message":"Internal Server Error","data":null}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":200,"message":"OK","data":[{"id":"1","title":"a","description":"","content":"","category":"System","tags":[]}]}`))
	}))
	defer srv.Close()

	var notifications []Notification
	notifier := NotifierFunc(func(n Notification) { notifications = append(notifications, n) })

	b := NewProcedureBrowser(New(srv.URL, nil), notifier, nil)
	require.NoError(t, b.Load(context.Background()))

	assert.False(t, b.Delete(context.Background(), "1"))
	assert.Len(t, b.Filtered(), 1, "stale item remains visible")
	require.Len(t, notifications, 1)
	assert.True(t, notifications[0].Destructive)
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
