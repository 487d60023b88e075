package zoom

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jasimarif/psychology-app/config"
)

type fakeZoom struct {
	tokenCalls atomic.Int32
	lastBody   meetingBody
	lastMethod string
	lastPath   string
}

func (f *fakeZoom) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		user, pass, ok := r.BasicAuth()
		if !ok || user != "cid" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("grant_type") != "account_credentials" || r.URL.Query().Get("account_id") != "acct" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok", "expires_in": 3600})
	})
	mux.HandleFunc("/v2/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		f.lastMethod, f.lastPath = r.Method, r.URL.Path
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&f.lastBody)
		}
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v2/users/me/meetings":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id": 85746065432, "join_url": "https://zoom.us/j/85746065432", "password": "abc123",
			})
		case r.URL.Path == "/v2/meetings/404":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server) *Client {
	return New(config.ZoomConfig{
		AccountID:         "acct",
		ClientID:          "cid",
		ClientSecret:      "secret",
		APIBaseURL:        srv.URL + "/v2",
		OAuthURL:          srv.URL + "/oauth/token",
		RequestsPerSecond: 1000,
	})
}

func TestCreateMeeting(t *testing.T) {
	f := &fakeZoom{}
	c := newTestClient(f.server(t))

	start := time.Date(2026, time.March, 2, 14, 0, 0, 0, time.UTC)
	m, err := c.CreateMeeting(context.Background(), CreateMeetingRequest{
		Topic:    "Therapy session",
		Start:    start,
		Duration: 50 * time.Minute,
		Timezone: "America/New_York",
	})
	if err != nil {
		t.Fatalf("CreateMeeting: %v", err)
	}
	if m.ID != "85746065432" || m.Password != "abc123" {
		t.Errorf("meeting = %+v", m)
	}
	if f.lastBody.StartTime != "2026-03-02T14:00:00Z" || f.lastBody.Duration != 50 || f.lastBody.Type != scheduledMeeting {
		t.Errorf("request body = %+v", f.lastBody)
	}

	// Second call reuses the cached token.
	if err := c.UpdateMeeting(context.Background(), m.ID, start.Add(time.Hour), time.Hour, "UTC"); err != nil {
		t.Fatalf("UpdateMeeting: %v", err)
	}
	if f.lastMethod != http.MethodPatch || f.lastPath != "/v2/meetings/85746065432" {
		t.Errorf("update sent %s %s", f.lastMethod, f.lastPath)
	}
	if got := f.tokenCalls.Load(); got != 1 {
		t.Errorf("token fetched %d times, want 1", got)
	}
}

func TestDeleteMeeting_NotFoundIsSuccess(t *testing.T) {
	f := &fakeZoom{}
	c := newTestClient(f.server(t))

	if err := c.DeleteMeeting(context.Background(), "404"); err != nil {
		t.Errorf("DeleteMeeting(404) = %v", err)
	}
	if err := c.DeleteMeeting(context.Background(), "123"); err != nil {
		t.Errorf("DeleteMeeting(123) = %v", err)
	}
	if f.lastMethod != http.MethodDelete {
		t.Errorf("method = %s", f.lastMethod)
	}
}

func TestBadCredentials(t *testing.T) {
	f := &fakeZoom{}
	srv := f.server(t)
	c := New(config.ZoomConfig{
		AccountID: "acct", ClientID: "cid", ClientSecret: "wrong",
		APIBaseURL: srv.URL + "/v2", OAuthURL: srv.URL + "/oauth/token",
	})

	_, err := c.CreateMeeting(context.Background(), CreateMeetingRequest{Topic: "x", Start: time.Now(), Duration: time.Hour})
	if !errors.Is(err, ErrAuth) {
		t.Errorf("err = %v, want ErrAuth", err)
	}
}
