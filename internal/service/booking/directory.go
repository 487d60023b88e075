package booking

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/internal/repo"
	"github.com/jasimarif/psychology-app/internal/service/gateway"
)

type Contact struct {
	Name  string `json:"full_name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (c Contact) Participant() gateway.Participant {
	return gateway.Participant{Name: c.Name, Email: c.Email, Phone: c.Phone}
}

type Provider struct {
	ID uuid.UUID
	Contact
	SessionPrice int64
	Currency     string
}

type User struct {
	ID uuid.UUID
	Contact
}

// Directory reads the provider and user profiles owned by the account
// service.
type Directory interface {
	Provider(ctx context.Context, id uuid.UUID) (*Provider, error)
	User(ctx context.Context, id uuid.UUID) (*User, error)
}

// ---------------------------------------------------------------------------
// ent
// ---------------------------------------------------------------------------

type entDirectory struct {
	db *repo.Client
}

func NewEntDirectory(db *repo.Client) Directory {
	return &entDirectory{db: db}
}

func (d *entDirectory) Provider(ctx context.Context, id uuid.UUID) (*Provider, error) {
	row, err := d.db.Provider.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}
	return &Provider{
		ID:           row.ID,
		Contact:      Contact{Name: row.FullName, Email: row.Email, Phone: row.Phone},
		SessionPrice: row.SessionPrice,
		Currency:     row.Currency,
	}, nil
}

func (d *entDirectory) User(ctx context.Context, id uuid.UUID) (*User, error) {
	row, err := d.db.User.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &User{
		ID:      row.ID,
		Contact: Contact{Name: row.FullName, Email: row.Email, Phone: row.Phone},
	}, nil
}

// ---------------------------------------------------------------------------
// In memory
// ---------------------------------------------------------------------------

// MemoryDirectory is a fixed Directory for tests and local runs.
type MemoryDirectory struct {
	mu        sync.RWMutex
	providers map[uuid.UUID]Provider
	users     map[uuid.UUID]User
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		providers: make(map[uuid.UUID]Provider),
		users:     make(map[uuid.UUID]User),
	}
}

func (d *MemoryDirectory) AddProvider(p Provider) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.providers[p.ID] = p
}

func (d *MemoryDirectory) AddUser(u User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[u.ID] = u
}

func (d *MemoryDirectory) Provider(_ context.Context, id uuid.UUID) (*Provider, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, ok := d.providers[id]
	if !ok {
		return nil, ErrProviderNotFound
	}
	return &p, nil
}

func (d *MemoryDirectory) User(_ context.Context, id uuid.UUID) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}
