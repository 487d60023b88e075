package availability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	rediscache "github.com/jasimarif/psychology-app/pkg/redis"
)

// ---------------------------------------------------------------------------
// Store
// ---------------------------------------------------------------------------

// Store persists one template per provider.
type Store interface {
	GetTemplate(ctx context.Context, providerID uuid.UUID) (*Template, error)
	UpsertTemplate(ctx context.Context, t Template) (*Template, error)
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Template returns the provider's template, served from Redis when cached.
	Template(ctx context.Context, providerID uuid.UUID) (*Template, error)
	// SetTemplate validates and stores t, then evicts the cached copy.
	SetTemplate(ctx context.Context, t Template) (*Template, error)
	// Slots generates the candidate slots for providerID on date.
	Slots(ctx context.Context, providerID uuid.UUID, date Date) (*Template, []Slot, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type availabilityService struct {
	store Store
	rdb   goredis.Cmdable
	ttl   time.Duration
	now   func() time.Time
}

// New returns a Service. A nil rdb or a non-positive ttl disables caching.
func New(store Store, rdb goredis.Cmdable, ttl time.Duration) Service {
	return &availabilityService{store: store, rdb: rdb, ttl: ttl, now: time.Now}
}

func cacheKey(providerID uuid.UUID) string {
	return "availability:" + providerID.String()
}

func (s *availabilityService) cacheEnabled() bool {
	return s.rdb != nil && s.ttl > 0
}

func (s *availabilityService) Template(ctx context.Context, providerID uuid.UUID) (*Template, error) {
	if s.cacheEnabled() {
		var cached Template
		hit, err := rediscache.GetJSON(ctx, s.rdb, cacheKey(providerID), &cached)
		if err != nil {
			slog.WarnContext(ctx, "availability cache read failed", "provider_id", providerID, "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	t, err := s.store.GetTemplate(ctx, providerID)
	if err != nil {
		return nil, err
	}

	if s.cacheEnabled() {
		if err := rediscache.SetJSON(ctx, s.rdb, cacheKey(providerID), t, s.ttl); err != nil {
			slog.WarnContext(ctx, "availability cache write failed", "provider_id", providerID, "error", err)
		}
	}
	return t, nil
}

func (s *availabilityService) SetTemplate(ctx context.Context, t Template) (*Template, error) {
	if t.ProviderID == uuid.Nil {
		return nil, invalid("provider id is required")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	t.UpdatedAt = s.now().UTC()

	saved, err := s.store.UpsertTemplate(ctx, t)
	if err != nil {
		return nil, err
	}

	if s.cacheEnabled() {
		if err := rediscache.Delete(ctx, s.rdb, cacheKey(t.ProviderID)); err != nil {
			slog.WarnContext(ctx, "availability cache eviction failed", "provider_id", t.ProviderID, "error", err)
		}
	}
	slog.InfoContext(ctx, "availability template updated", "provider_id", t.ProviderID, "days", len(t.Schedule))
	return saved, nil
}

func (s *availabilityService) Slots(ctx context.Context, providerID uuid.UUID, date Date) (*Template, []Slot, error) {
	t, err := s.Template(ctx, providerID)
	if err != nil {
		return nil, nil, err
	}
	slots, err := GenerateSlots(*t, date)
	if err != nil {
		if errors.Is(err, ErrInvalidAvailability) {
			slog.ErrorContext(ctx, "stored availability template is malformed", "provider_id", providerID, "error", err)
		}
		return nil, nil, fmt.Errorf("generate slots: %w", err)
	}
	return t, slots, nil
}
