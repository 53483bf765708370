package state

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Kariqs/laptopzone-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionsAreIsolated(t *testing.T) {
	s := NewSessions()
	s.SetQuery("a", "thinkpad")
	assert.Equal(t, 1, s.AddToCart("a", models.Product{Slug: "x1"}))
	assert.Equal(t, 2, s.AddToCart("a", models.Product{Slug: "x1"}))

	a := s.Snapshot("a")
	assert.Equal(t, "thinkpad", a.Query)
	assert.Len(t, a.Cart, 2)

	b := s.Snapshot("b")
	assert.Empty(t, b.Query)
	assert.Empty(t, b.Cart)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewSessions()
	s.AddToCart("a", models.Product{Slug: "x1"})
	snap := s.Snapshot("a")
	snap.Cart[0].Slug = "mutated"
	assert.Equal(t, "x1", s.Snapshot("a").Cart[0].Slug)
}

func TestConcurrentActions(t *testing.T) {
	s := NewSessions()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AddToCart("shared", models.Product{Slug: fmt.Sprint(i)})
			s.SetQuery("shared", fmt.Sprint(i))
		}(i)
	}
	wg.Wait()
	assert.Len(t, s.Snapshot("shared").Cart, 50)
}

func TestSessionsAreBounded(t *testing.T) {
	s := NewSessionsWithLimit(100, time.Hour)
	for i := 0; i < 1000; i++ {
		s.SetQuery(fmt.Sprintf("anon-%d", i), "thinkpad")
	}
	assert.Equal(t, 100, s.Len())
	assert.Empty(t, s.Snapshot("anon-0").Query, "oldest session evicted")
	assert.Equal(t, "thinkpad", s.Snapshot("anon-999").Query)
}

func TestEmptyQueryDoesNotCreateSession(t *testing.T) {
	s := NewSessions()
	for i := 0; i < 50; i++ {
		s.SetQuery(fmt.Sprintf("anon-%d", i), "")
	}
	assert.Equal(t, 0, s.Len())

	s.SetQuery("a", "dell")
	s.SetQuery("a", "")
	assert.Equal(t, 1, s.Len())
	assert.Empty(t, s.Snapshot("a").Query)
}

func TestSessionsExpire(t *testing.T) {
	s := NewSessionsWithLimit(10, 20*time.Millisecond)
	s.AddToCart("a", models.Product{Slug: "x1"})
	require.Len(t, s.Snapshot("a").Cart, 1)

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, s.Snapshot("a").Cart)
}
