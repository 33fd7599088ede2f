package catalog

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/omarsakr/SakrStore/models"
	"github.com/omarsakr/SakrStore/utils"
)

// CouponSource fetches the coupon feed once per session. Unlike the product
// catalog, a failed or empty load is not an error: the store simply has no
// coupons to offer, and validation reports that to the shopper.
type CouponSource struct {
	url    string
	client *http.Client

	mu      sync.Mutex
	coupons []models.Coupon
	loaded  bool
}

// NewCouponSource creates a coupon source for the given feed URL.
func NewCouponSource(url string, client *http.Client) *CouponSource {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &CouponSource{url: url, client: client}
}

// Coupons returns the session's coupon set, fetching on first use and
// degrading to an empty set when the feed is unavailable.
func (s *CouponSource) Coupons(ctx context.Context) []models.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.coupons
	}

	coupons, err := fetchJSON[[]models.Coupon](ctx, s.client, s.url)
	if err != nil {
		utils.LogError("Failed to load coupons from %s: %v", s.url, err)
		s.coupons = nil
		s.loaded = true
		return nil
	}

	s.coupons = coupons
	s.loaded = true
	utils.LogInfo("Loaded %d coupons", len(coupons))
	return s.coupons
}
