package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Kariqs/laptopzone-api/models"
	"github.com/google/uuid"
)

// MemoryStore is an in-process ProductStore and UserStore. Setting Err makes
// every call fail as an unreachable backend.
type MemoryStore struct {
	mu       sync.RWMutex
	products []models.Product
	admins   map[string]bool
	users    map[string]models.User
	assets   Uploader

	Err error
}

func NewMemoryStore(assets Uploader) *MemoryStore {
	return &MemoryStore{
		admins: make(map[string]bool),
		users:  make(map[string]models.User),
		assets: assets,
	}
}

// Seed appends products as an external writer would, bypassing Add.
func (m *MemoryStore) Seed(products ...models.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = append(m.products, products...)
}

func (m *MemoryStore) SetAdmin(uid string, active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.admins[uid] = active
}

func (m *MemoryStore) PutUser(u models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.Email] = u
}

func (m *MemoryStore) FetchAll(ctx context.Context) ([]models.Product, error) {
	if m.Err != nil {
		return nil, unavailable("fetch products", m.Err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *MemoryStore) FetchBySlug(ctx context.Context, slug string) (*models.Product, error) {
	if m.Err != nil {
		return nil, unavailable("fetch product by slug", m.Err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, err := pickSlug(m.products, slug)
	if p == nil || err != nil {
		return nil, err
	}
	found := *p
	return &found, nil
}

func (m *MemoryStore) Add(ctx context.Context, p *models.Product) (string, error) {
	if m.Err != nil {
		return "", unavailable("create product", m.Err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	m.products = append(m.products, *p)
	return p.ID, nil
}

func (m *MemoryStore) CheckPrivilege(ctx context.Context, uid string) (bool, error) {
	if m.Err != nil {
		return false, unavailable("check admin privilege", m.Err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.admins[uid], nil
}

func (m *MemoryStore) UploadAsset(ctx context.Context, obj Object, progress ProgressFunc) (string, error) {
	if m.Err != nil {
		return "", unavailable("upload asset", m.Err)
	}
	if m.assets == nil {
		return "", unavailable("upload asset", fmt.Errorf("object storage is not configured"))
	}
	url, err := m.assets.Upload(ctx, obj, progress)
	if err != nil {
		return "", unavailable("upload asset", err)
	}
	return url, nil
}

func (m *MemoryStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.Err != nil {
		return nil, unavailable("find user", m.Err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
