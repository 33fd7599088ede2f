package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/omarsakr/SakrStore/models"
	"github.com/omarsakr/SakrStore/utils"
)

// Cache lazily fetches the product catalog and memoizes it for the rest of
// the session. The catalog is treated as a frozen snapshot once loaded: no
// re-fetch, no invalidation. A failed fetch does not populate the cache and
// the next call retries.
type Cache struct {
	url    string
	client *http.Client

	mu       sync.Mutex
	products []models.Product
	loaded   bool
}

// NewCache creates a catalog cache for the given products feed URL.
func NewCache(url string, client *http.Client) *Cache {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Cache{url: url, client: client}
}

// Products returns the session catalog, fetching it on first use.
// Concurrent first calls are serialized so the feed is hit once.
func (c *Cache) Products(ctx context.Context) ([]models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.products, nil
	}

	products, err := fetchJSON[[]models.Product](ctx, c.client, c.url)
	if err != nil {
		utils.LogError("Failed to load product catalog from %s: %v", c.url, err)
		return nil, utils.ServiceUnavailableError("Failed to load products", err)
	}

	c.products = products
	c.loaded = true
	utils.LogInfo("Loaded %d products into session catalog", len(products))
	return c.products, nil
}

// Loaded reports whether the catalog snapshot has been taken.
func (c *Cache) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Lookup returns the product for a cart key, if present in the snapshot.
func Lookup(products []models.Product, key string) (models.Product, bool) {
	for _, p := range products {
		if p.Key() == key {
			return p, true
		}
	}
	return models.Product{}, false
}

// Categories returns the filter labels for the catalog: the pseudo
// categories first, then each real category in first-seen order.
func Categories(products []models.Product) []string {
	categories := []string{"Featured", "Discounts", "All"}
	seen := make(map[string]bool)
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

func fetchJSON[T any](ctx context.Context, client *http.Client, url string) (T, error) {
	var out T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return out, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return out, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("malformed response from %s: %w", url, err)
	}
	return out, nil
}
