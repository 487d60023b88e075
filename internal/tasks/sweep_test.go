package tasks

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeCompleter struct {
	n     int
	err   error
	calls int
}

func (f *fakeCompleter) CompleteElapsed(context.Context) (int, error) {
	f.calls++
	return f.n, f.err
}

func TestNewSweeper_RejectsBadSpec(t *testing.T) {
	if _, err := NewSweeper(&fakeCompleter{}, "not a schedule", time.Second); err == nil {
		t.Fatal("expected error for invalid spec")
	}
}

func TestSweeper_RunOnce(t *testing.T) {
	tests := []struct {
		name string
		svc  *fakeCompleter
		want int
	}{
		{"completes", &fakeCompleter{n: 3}, 3},
		{"nothing due", &fakeCompleter{}, 0},
		{"partial failure", &fakeCompleter{n: 1, err: errors.New("db down")}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSweeper(tt.svc, "@every 5m", time.Second)
			if err != nil {
				t.Fatalf("NewSweeper: %v", err)
			}
			if got := s.RunOnce(context.Background()); got != tt.want {
				t.Errorf("RunOnce = %d, want %d", got, tt.want)
			}
			if tt.svc.calls != 1 {
				t.Errorf("calls = %d, want 1", tt.svc.calls)
			}
		})
	}
}

func TestSweeper_StartStop(t *testing.T) {
	s, err := NewSweeper(&fakeCompleter{}, "@every 1h", time.Second)
	if err != nil {
		t.Fatalf("NewSweeper: %v", err)
	}
	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		t.Errorf("Stop: %v", err)
	}
}
