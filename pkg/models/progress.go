package models

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/golangdaddy/rush80/pkg/storage"
)

// Storage keys for persisted progress
const (
	KeyCoins          = "rush80_coins"
	KeyBest           = "rush80_best"
	KeyInventory      = "rush80_inv"
	KeyScore          = "rush80_score"
	KeyHearts         = "rush80_hearts"
	KeyNextCheckpoint = "rush80_nextBoss"
	KeyRing           = "rush80_ring"
	KeyCoinBuffer     = "rush80_coinBuffer"
	KeyBossKills      = "rush80_bossKills"
)

// Progress is everything that survives between sessions
type Progress struct {
	Coins     int
	Best      int
	Inventory Inventory

	// Resumable run state
	Score          int
	Hearts         int
	NextCheckpoint int
	Ring           int
	CoinBuffer     int
	BossKills      int
}

// NewProgress creates fresh progress for a first launch
func NewProgress(hearts, checkpoint int) *Progress {
	return &Progress{
		Hearts:         hearts,
		NextCheckpoint: checkpoint,
	}
}

// LoadProgress reads progress from a store. Missing or malformed values
// fall back to the defaults of a fresh profile rather than failing.
func LoadProgress(store storage.Store, hearts, checkpoint int) *Progress {
	p := NewProgress(hearts, checkpoint)

	p.Coins = readInt(store, KeyCoins, 0, 0)
	p.Best = readInt(store, KeyBest, 0, 0)
	p.Score = readInt(store, KeyScore, 0, 0)
	p.Hearts = readInt(store, KeyHearts, hearts, 1)
	p.NextCheckpoint = readInt(store, KeyNextCheckpoint, checkpoint, 1)
	p.Ring = readInt(store, KeyRing, 0, 0)
	p.CoinBuffer = readInt(store, KeyCoinBuffer, 0, 0)
	p.BossKills = readInt(store, KeyBossKills, 0, 0)

	if raw, ok := store.Get(KeyInventory); ok {
		if inv, err := ParseInventory(raw); err == nil {
			p.Inventory = inv
		}
	}

	return p
}

// Save writes every key and flushes the store
func (p *Progress) Save(store storage.Store) error {
	inv, err := p.Inventory.Encode()
	if err != nil {
		return err
	}

	store.Set(KeyCoins, strconv.Itoa(p.Coins))
	store.Set(KeyBest, strconv.Itoa(p.Best))
	store.Set(KeyInventory, inv)
	store.Set(KeyScore, strconv.Itoa(p.Score))
	store.Set(KeyHearts, strconv.Itoa(p.Hearts))
	store.Set(KeyNextCheckpoint, strconv.Itoa(p.NextCheckpoint))
	store.Set(KeyRing, strconv.Itoa(p.Ring))
	store.Set(KeyCoinBuffer, strconv.Itoa(p.CoinBuffer))
	store.Set(KeyBossKills, strconv.Itoa(p.BossKills))

	if err := store.Flush(); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// AddCoins credits coins
func (p *Progress) AddCoins(amount int) {
	p.Coins += amount
}

// SpendCoins attempts to spend coins, returns true if successful
func (p *Progress) SpendCoins(amount int) bool {
	if amount < 0 || p.Coins < amount {
		return false
	}
	p.Coins -= amount
	return true
}

// UpdateBest records a new best score, returns true if it was beaten
func (p *Progress) UpdateBest(score int) bool {
	if score > p.Best {
		p.Best = score
		return true
	}
	return false
}

// readInt parses an integer key, using def when missing, malformed or below floor
func readInt(store storage.Store, key string, def, floor int) int {
	raw, ok := store.Get(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < floor {
		return def
	}
	return v
}

// ParseInventory decodes the JSON inventory object
func ParseInventory(raw string) (Inventory, error) {
	var inv Inventory
	if err := json.Unmarshal([]byte(raw), &inv); err != nil {
		return Inventory{}, fmt.Errorf("invalid inventory %q: %w", raw, err)
	}
	return inv, nil
}
