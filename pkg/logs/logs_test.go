package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jasimarif/psychology-app/pkg/reqctx"
)

func TestContextHandler_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(&contextHandler{Handler: slog.NewJSONHandler(&buf, nil)})

	ctx := reqctx.WithRequestMeta(context.Background(), &reqctx.RequestMeta{RequestID: "req-42"})
	log.InfoContext(ctx, "booking created", "booking_id", "b1")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if rec["request_id"] != "req-42" {
		t.Errorf("request_id = %v", rec["request_id"])
	}
	if rec["booking_id"] != "b1" {
		t.Errorf("booking_id = %v", rec["booking_id"])
	}
}

func TestMultiHandler_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	}}
	log := slog.New(h).With("service", "psychapp")

	log.Info("info line")
	log.Error("error line")

	if strings.Count(a.String(), "\n") != 2 {
		t.Errorf("info handler got %q", a.String())
	}
	if strings.Count(b.String(), "\n") != 1 || !strings.Contains(b.String(), `"service":"psychapp"`) {
		t.Errorf("error handler got %q", b.String())
	}
}

func TestLokiWriter(t *testing.T) {
	var got lokiPush
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/loki/api/v1/push" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("decode push: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	lw := &lokiWriter{
		endpoint: srv.URL + "/loki/api/v1/push",
		client:   srv.Client(),
		labels:   map[string]string{"service": "psychapp"},
		now:      func() time.Time { return time.Unix(0, 1234) },
	}
	if _, err := lw.Write([]byte(`{"msg":"hello \"world\""}` + "\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if len(got.Streams) != 1 || got.Streams[0].Stream["service"] != "psychapp" {
		t.Fatalf("streams = %+v", got.Streams)
	}
	v := got.Streams[0].Values[0]
	if v[0] != "1234" || v[1] != `{"msg":"hello \"world\""}` {
		t.Errorf("value = %v", v)
	}
}
