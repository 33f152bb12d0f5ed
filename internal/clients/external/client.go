// Package external is the location for the item catalogue feed client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/scapelab/gear-api/internal/clients/external Client

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/tidwall/gjson"

	"github.com/scapelab/gear-api/internal/entities/osrs"
	"github.com/scapelab/gear-api/internal/errors"
)

// Client defines the interface for external catalogue interactions
type Client interface {
	// ListItems fetches the full equipable item dump from the feed.
	// Results are cached in-process for the configured TTL.
	ListItems(ctx context.Context) ([]osrs.Item, error)

	// GetLatestPrices fetches current guide prices keyed by item ID
	GetLatestPrices(ctx context.Context) (map[int64]int, error)
}

// Config contains configuration options for the catalogue client.
type Config struct {
	// ItemsURL for the item dump feed (required)
	ItemsURL string
	// PricesURL for the latest price feed (required)
	PricesURL string
	// HTTPTimeout for feed requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached item dump (optional, defaults to 6 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.ItemsURL == "" {
		return errors.InvalidArgument("items URL cannot be empty")
	}
	if cfg.PricesURL == "" {
		return errors.InvalidArgument("prices URL cannot be empty")
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 6 * time.Hour
	}
	return nil
}

type client struct {
	httpClient *http.Client
	itemsURL   string
	pricesURL  string
	cacheTTL   time.Duration

	mu       sync.Mutex
	cached   []osrs.Item
	cachedAt time.Time
}

// New creates a new catalogue client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &client{
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		itemsURL:   cfg.ItemsURL,
		pricesURL:  cfg.PricesURL,
		cacheTTL:   cfg.CacheTTL,
	}, nil
}

func (c *client) ListItems(ctx context.Context) ([]osrs.Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && time.Since(c.cachedAt) < c.cacheTTL {
		items := make([]osrs.Item, len(c.cached))
		copy(items, c.cached)
		return items, nil
	}

	body, err := c.fetch(ctx, c.itemsURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch item dump")
	}

	items := parseItemDump(body)
	c.cached = items
	c.cachedAt = time.Now()

	out := make([]osrs.Item, len(items))
	copy(out, items)
	return out, nil
}

func (c *client) GetLatestPrices(ctx context.Context) (map[int64]int, error) {
	body, err := c.fetch(ctx, c.pricesURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch price feed")
	}

	prices := make(map[int64]int)
	gjson.GetBytes(body, "data").ForEach(func(key, value gjson.Result) bool {
		high := value.Get("high").Int()
		if high > 0 {
			prices[key.Int()] = int(high)
		}
		return true
	})

	return prices, nil
}

func (c *client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("feed %s returned status %d", url, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// parseItemDump converts the osrsbox-style item dump into catalogue
// items. Entries without an equipment block are skipped; the dump
// carries far more than equipable gear.
func parseItemDump(body []byte) []osrs.Item {
	var items []osrs.Item

	gjson.ParseBytes(body).ForEach(func(_, entry gjson.Result) bool {
		equipment := entry.Get("equipment")
		if !equipment.Exists() {
			return true
		}

		slot, twoHanded, ok := mapSlot(equipment.Get("slot").String())
		if !ok {
			return true
		}

		item := osrs.Item{
			ID:        entry.Get("id").Int(),
			Name:      entry.Get("name").String(),
			Slot:      slot,
			Tradeable: entry.Get("tradeable_on_ge").Bool(),
			TwoHanded: twoHanded,
			Price:     int(entry.Get("cost").Int()),
			Bonuses: osrs.CombatBonuses{
				AttackStab:         int(equipment.Get("attack_stab").Int()),
				AttackSlash:        int(equipment.Get("attack_slash").Int()),
				AttackCrush:        int(equipment.Get("attack_crush").Int()),
				AttackMagic:        int(equipment.Get("attack_magic").Int()),
				AttackRanged:       int(equipment.Get("attack_ranged").Int()),
				DefenceStab:        int(equipment.Get("defence_stab").Int()),
				DefenceSlash:       int(equipment.Get("defence_slash").Int()),
				DefenceCrush:       int(equipment.Get("defence_crush").Int()),
				DefenceMagic:       int(equipment.Get("defence_magic").Int()),
				DefenceRanged:      int(equipment.Get("defence_ranged").Int()),
				MeleeStrength:      int(equipment.Get("melee_strength").Int()),
				RangedStrength:     int(equipment.Get("ranged_strength").Int()),
				MagicDamagePercent: int(equipment.Get("magic_damage").Int()),
				Prayer:             int(equipment.Get("prayer").Int()),
			},
		}

		if reqs := equipment.Get("requirements"); reqs.Exists() && reqs.IsObject() {
			levels := make(map[osrs.Skill]int)
			reqs.ForEach(func(skill, level gjson.Result) bool {
				levels[osrs.Skill(skill.String())] = int(level.Int())
				return true
			})
			item.Requirements.Levels = levels
		}

		if weapon := entry.Get("weapon"); weapon.Exists() {
			item.AttackSpeedTicks = int(weapon.Get("attack_speed").Int())
		}

		items = append(items, item)
		return true
	})

	return items
}

// mapSlot translates dump slot names to canonical slots. The dump uses
// "2h" as a pseudo-slot for two-handed weapons.
func mapSlot(name string) (osrs.Slot, bool, bool) {
	if name == "2h" {
		return osrs.SlotWeapon, true, true
	}
	slot := osrs.Slot(name)
	if !osrs.IsValidSlot(slot) {
		return "", false, false
	}
	return slot, false, true
}
