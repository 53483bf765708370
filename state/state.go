// Package state is the application-state container for per-session view
// state: the current search query and the cart. It is injected into the
// HTTP layer; there is no package-level instance.
package state

import (
	"sync"
	"time"

	"github.com/Kariqs/laptopzone-api/models"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultMaxSessions = 10000
	DefaultSessionTTL  = 24 * time.Hour
)

type State struct {
	Query string           `json:"query"`
	Cart  []models.Product `json:"cart"`
}

// Sessions holds at most a fixed number of sessions. The least recently
// written one is evicted first, and a session untouched for the TTL expires.
type Sessions struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *State]
}

func NewSessions() *Sessions {
	return NewSessionsWithLimit(DefaultMaxSessions, DefaultSessionTTL)
}

func NewSessionsWithLimit(maxSessions int, ttl time.Duration) *Sessions {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{sessions: expirable.NewLRU[string, *State](maxSessions, nil, ttl)}
}

// update applies fn to the session state and re-adds it, which refreshes
// both its recency and its expiry.
func (s *Sessions) update(id string, fn func(*State)) {
	st, ok := s.sessions.Get(id)
	if !ok {
		st = &State{}
	}
	fn(st)
	s.sessions.Add(id, st)
}

// SetQuery records the latest catalog search for a session. Clearing the
// query of a session that holds nothing does not create one.
func (s *Sessions) SetQuery(id, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions.Peek(id); query == "" && !ok {
		return
	}
	s.update(id, func(st *State) { st.Query = query })
}

// AddToCart appends p to the session cart and returns the cart size.
func (s *Sessions) AddToCart(id string, p models.Product) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	s.update(id, func(st *State) {
		st.Cart = append(st.Cart, p)
		n = len(st.Cart)
	})
	return n
}

// Snapshot returns a copy of the session state; unknown sessions are empty.
func (s *Sessions) Snapshot(id string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions.Get(id)
	if !ok {
		return State{Cart: []models.Product{}}
	}
	cart := make([]models.Product, len(st.Cart))
	copy(cart, st.Cart)
	return State{Query: st.Query, Cart: cart}
}

// Len reports how many sessions are retained.
func (s *Sessions) Len() int {
	return s.sessions.Len()
}
