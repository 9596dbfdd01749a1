package mem

import (
	"sync"

	"github.com/debduthira/valorant-prs/internal/domain"
)

// Cache holds the computed leaderboard between match mutations.
type Cache struct {
	mu    sync.RWMutex
	valid bool
	rows  []domain.LeaderboardRow
}

func New() *Cache {
	return &Cache{}
}

func (c *Cache) Update(rows []domain.LeaderboardRow) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rows = rows
	c.valid = true
}

func (c *Cache) Get() ([]domain.LeaderboardRow, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return nil, false
	}
	return c.rows, true
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.valid = false
	c.rows = nil
}
