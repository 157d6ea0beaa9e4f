package registrations

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hari-prashath-123/art-finity/internal/config"
	"github.com/Hari-prashath-123/art-finity/pkg/logger"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	cfg := &config.Config{Registration: config.RegistrationConfig{
		BaseURL:       baseURL,
		Timeout:       5 * time.Second,
		RatePerMinute: 6000,
	}}
	return NewClient(cfg, logger.Discard())
}

func TestClient_URL(t *testing.T) {
	c := newTestClient(t, "https://docs.google.com/")

	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/abc123/gviz/tq?tqx=out:json&gid=782485396",
		c.URL(Params{SheetID: "abc123", GID: "782485396"}))
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/abc123/gviz/tq?tqx=out:json&gid=0",
		c.URL(Params{SheetID: "abc123"}), "gid defaults to 0")
}

func TestClient_FetchCount(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, "/*O_o*/\ngoogle.visualization.Query.setResponse({\"table\":{\"rows\":[{},{},{},{}]}});")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	count, err := c.FetchCount(context.Background(), Params{SheetID: "sheet", GID: "7"})

	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.Equal(t, "/spreadsheets/d/sheet/gviz/tq", gotPath)
	assert.Equal(t, "tqx=out:json&gid=7", gotQuery)
}

func TestClient_FetchCountErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr func(error) bool
	}{
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   "oops",
			wantErr: func(err error) bool {
				var se *StatusError
				return errors.As(err, &se) && se.StatusCode == http.StatusInternalServerError
			},
		},
		{
			name:    "malformed body",
			status:  http.StatusOK,
			body:    "not wrapped json",
			wantErr: func(err error) bool { return errors.Is(err, ErrUnexpectedResponse) },
		},
		{
			name:    "missing table",
			status:  http.StatusOK,
			body:    "cb({\"status\":\"error\"})",
			wantErr: func(err error) bool { return errors.Is(err, ErrMissingTable) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			_, err := newTestClient(t, srv.URL).FetchCount(context.Background(), Params{SheetID: "s"})
			require.Error(t, err)
			assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
		})
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestClient(t, url).FetchCount(context.Background(), Params{SheetID: "s"})
	assert.Error(t, err)
}

func TestClient_MissingSheetID(t *testing.T) {
	_, err := newTestClient(t, "http://unused").FetchCount(context.Background(), Params{GID: "1"})
	assert.ErrorIs(t, err, ErrMissingSheetID)
}

func TestClient_CoalescesConcurrentFetches(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		fmt.Fprint(w, "x({\"table\":{\"rows\":[{}]}})")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	const callers = 5
	var wg sync.WaitGroup
	results := make([]int, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n, err := c.FetchCount(context.Background(), Params{SheetID: "same"})
			assert.NoError(t, err)
			results[i] = n
		}(i)
	}

	require.Eventually(t, func() bool { return hits.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	// Give the remaining callers time to join the in-flight request.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
	for _, n := range results {
		assert.Equal(t, 1, n)
	}
}

func TestClient_CallerContextCancel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		fmt.Fprint(w, "x({\"table\":{\"rows\":[]}})")
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t, srv.URL).FetchCount(ctx, Params{SheetID: "s"})
	assert.ErrorIs(t, err, context.Canceled)
}
