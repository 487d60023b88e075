package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jasimarif/psychology-app/config"
)

func TestFromCentralConfig(t *testing.T) {
	tests := []struct {
		name string
		in   config.RedisConfig
		want Config
	}{
		{
			name: "zero values take defaults",
			in:   config.RedisConfig{Addr: "cache:6379"},
			want: Config{
				Addr:         "cache:6379",
				PoolSize:     10,
				MinIdleConns: 2,
				DialTimeout:  5 * time.Second,
				ReadTimeout:  3 * time.Second,
				WriteTimeout: 3 * time.Second,
			},
		},
		{
			name: "explicit values win",
			in: config.RedisConfig{
				Addr:                "cache:6379",
				DB:                  3,
				Username:            "app",
				Password:            "secret",
				PoolSize:            40,
				MinIdleConns:        8,
				DialTimeoutSeconds:  1,
				ReadTimeoutSeconds:  2,
				WriteTimeoutSeconds: 4,
			},
			want: Config{
				Addr:         "cache:6379",
				DB:           3,
				Username:     "app",
				Password:     "secret",
				PoolSize:     40,
				MinIdleConns: 8,
				DialTimeout:  time.Second,
				ReadTimeout:  2 * time.Second,
				WriteTimeout: 4 * time.Second,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromCentralConfig(tt.in); got != tt.want {
				t.Errorf("FromCentralConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTaskOptUsesSeparateDB(t *testing.T) {
	base := FromCentralConfig(config.RedisConfig{Addr: "cache:6379", DB: 0, Password: "pw"})
	opt := base.WithDB(5).TaskOpt()

	if opt.DB != 5 {
		t.Errorf("task DB = %d, want 5", opt.DB)
	}
	if base.DB != 0 {
		t.Errorf("WithDB mutated the receiver: DB = %d", base.DB)
	}
	if opt.Addr != "cache:6379" || opt.Password != "pw" {
		t.Errorf("task opt = %+v, want same server and credentials", opt)
	}
	if opt.DialTimeout != base.DialTimeout {
		t.Errorf("task dial timeout = %v, want %v", opt.DialTimeout, base.DialTimeout)
	}
}

func TestOptions(t *testing.T) {
	cfg := DefaultConfig().WithDB(2)
	opts := cfg.Options()
	if opts.Addr != cfg.Addr || opts.DB != 2 || opts.PoolSize != cfg.PoolSize {
		t.Errorf("Options() = %+v, want fields from %+v", opts, cfg)
	}
}

func TestNewRedis_Errors(t *testing.T) {
	t.Run("empty addr", func(t *testing.T) {
		if _, err := NewRedis(context.Background(), Config{}); !errors.Is(err, ErrNoAddr) {
			t.Errorf("err = %v, want ErrNoAddr", err)
		}
	})

	t.Run("unreachable server", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Addr = "127.0.0.1:1"
		cfg.DialTimeout = 200 * time.Millisecond
		rdb, err := NewRedis(context.Background(), cfg)
		if err == nil {
			rdb.Close()
			t.Fatal("expected ping error")
		}
		if rdb != nil {
			t.Error("client returned alongside error")
		}
	})
}
