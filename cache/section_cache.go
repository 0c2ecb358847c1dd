package section_cache

import (
	"sync"
	"time"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
)

const TTL = 5 * time.Minute

// ── Sampled section cache ────────────────────────────────────────────────────
// Sections flagged as cached serve their shuffled 4-card grid from here and
// only hit Postgres on a miss or after the TTL lapses.

type sectionEntry struct {
	cards     []models.ProductCard
	fetchedAt time.Time
}

var (
	mu      sync.RWMutex
	entries = make(map[string]*sectionEntry)
)

func Get(slug string) ([]models.ProductCard, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if e, ok := entries[slug]; ok && time.Since(e.fetchedAt) < TTL {
		return e.cards, true
	}
	return nil, false
}

func Set(slug string, cards []models.ProductCard) {
	mu.Lock()
	defer mu.Unlock()
	entries[slug] = &sectionEntry{cards: cards, fetchedAt: time.Now()}
}

// Invalidate drops every cached grid at once. Entries otherwise just age out
// after the TTL.
func Invalidate() {
	mu.Lock()
	entries = make(map[string]*sectionEntry)
	mu.Unlock()
}
