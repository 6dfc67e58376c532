package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func portfolioHandler(failPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if failPath != "" && strings.HasSuffix(r.URL.Path, failPath) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"status":500,"message":"Internal Server Error","data":null}`))
			return
		}
		if strings.HasSuffix(r.URL.Path, "/personal-info") {
			_, _ = w.Write([]byte(`{"status":200,"message":"OK","data":{"id":"p1","name":"Hocine IRATNI","title":"Développeur Full Stack"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":200,"message":"OK","data":[]}`))
	}
}

func TestStore_LoadingBeforeFirstRefetch(t *testing.T) {
	s := NewStore(New("http://localhost:0", nil), nil)

	snap := s.Snapshot()
	assert.True(t, snap.Loading)
	assert.NoError(t, snap.Err)
	assert.NotNil(t, snap.Data.Education)
	assert.Nil(t, snap.Data.PersonalInfo)
}

func TestStore_Refetch_Success(t *testing.T) {
	srv := httptest.NewServer(portfolioHandler(""))
	defer srv.Close()

	s := NewStore(New(srv.URL, nil), nil)
	require.NoError(t, s.Refetch(context.Background()))

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.NoError(t, snap.Err)
	require.NotNil(t, snap.Data.PersonalInfo)
	assert.Equal(t, "Hocine IRATNI", snap.Data.PersonalInfo.Name)
}

func TestStore_Refetch_AllOrNothing(t *testing.T) {
	// One failing resource out of seven fails the whole batch; no
	// partial merge even though the other six succeeded.
	srv := httptest.NewServer(portfolioHandler("/testimonials"))
	defer srv.Close()

	var notifications []Notification
	notifier := NotifierFunc(func(n Notification) { notifications = append(notifications, n) })

	s := NewStore(New(srv.URL, nil), notifier)
	err := s.Refetch(context.Background())
	require.ErrorIs(t, err, ErrLoadFailed)

	snap := s.Snapshot()
	assert.False(t, snap.Loading, "loading clears only after all seven settle")
	assert.ErrorIs(t, snap.Err, ErrLoadFailed)
	assert.Nil(t, snap.Data.PersonalInfo, "data keeps its previous value")
	require.Len(t, notifications, 1)
	assert.True(t, notifications[0].Destructive)
}

func TestStore_Refetch_FailureKeepsPreviousData(t *testing.T) {
	good := httptest.NewServer(portfolioHandler(""))
	defer good.Close()

	c := New(good.URL, nil)
	s := NewStore(c, nil)
	require.NoError(t, s.Refetch(context.Background()))
	require.NotNil(t, s.Snapshot().Data.PersonalInfo)

	// Repoint the same store at a failing backend.
	bad := httptest.NewServer(portfolioHandler("/projects"))
	defer bad.Close()
	c.baseURL = bad.URL

	require.ErrorIs(t, s.Refetch(context.Background()), ErrLoadFailed)

	snap := s.Snapshot()
	assert.ErrorIs(t, snap.Err, ErrLoadFailed)
	require.NotNil(t, snap.Data.PersonalInfo, "previous snapshot survives a failed refetch")
	assert.Equal(t, "Hocine IRATNI", snap.Data.PersonalInfo.Name)
}

func TestStore_Refetch_SupersededDiscardsStaleResult(t *testing.T) {
	// The first refetch's seven responses are held until a second
	// refetch has completed; releasing them must not overwrite the
	// newer snapshot.
	var newerDone atomic.Bool
	arrived := make(chan struct{}, 7)
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := "fresh"
		if !newerDone.Load() {
			arrived <- struct{}{}
			<-release
			name = "stale"
		}
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/personal-info") {
			_, _ = w.Write([]byte(`{"status":200,"message":"OK","data":{"id":"p1","name":"` + name + `","title":"t"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":200,"message":"OK","data":[]}`))
	}))
	defer srv.Close()

	s := NewStore(New(srv.URL, nil), nil)

	firstDone := make(chan error, 1)
	go func() { firstDone <- s.Refetch(context.Background()) }()
	for i := 0; i < 7; i++ {
		<-arrived
	}

	newerDone.Store(true)
	require.NoError(t, s.Refetch(context.Background()))

	close(release)
	require.ErrorIs(t, <-firstDone, ErrRefetchSuperseded)

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.NoError(t, snap.Err)
	require.NotNil(t, snap.Data.PersonalInfo)
	assert.Equal(t, "fresh", snap.Data.PersonalInfo.Name, "superseded refetch must not apply its result")
}

func TestStore_SubmitContactMessage(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   bool
	}{
		{"backend 2xx", http.StatusOK, true},
		{"backend 4xx", http.StatusBadRequest, false},
		{"backend 5xx", http.StatusInternalServerError, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"status":200,"message":"OK","data":null}`))
			}))
			defer srv.Close()

			var notifications []Notification
			notifier := NotifierFunc(func(n Notification) { notifications = append(notifications, n) })

			s := NewStore(New(srv.URL, nil), notifier)
			got := s.SubmitContactMessage(context.Background(), ContactMessageInput{
				Name: "Alice", Email: "alice@example.com", Message: "bonjour",
			})

			assert.Equal(t, tc.want, got)
			assert.Len(t, notifications, 1, "exactly one notification per submit")
			assert.Equal(t, !tc.want, notifications[0].Destructive)
		})
	}
}

func TestClient_APIErrorCarriesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"message":"Not Found","data":null}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).GetProcedures(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Not Found", apiErr.Message)
}
