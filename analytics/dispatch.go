package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/omarsakr/SakrStore/utils"
)

// Event is a storefront analytics event (add_to_cart, begin_checkout, ...).
type Event struct {
	Name   string                 `json:"name"`
	Params map[string]interface{} `json:"params,omitempty"`
}

// Item is one product line inside an event payload.
type Item struct {
	ItemID       string  `json:"item_id"`
	ItemName     string  `json:"item_name"`
	ItemCategory string  `json:"item_category"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}

// Dispatcher posts events to a measurement endpoint with bounded retries.
// Delivery is strictly best-effort: a dispatcher with no endpoint
// configured, or one that exhausts its retries, falls back to a debug log
// and reports failure without ever affecting the calling operation.
type Dispatcher struct {
	endpoint string
	client   *http.Client
	retries  int
	delay    time.Duration
}

// NewDispatcher creates a dispatcher for the given endpoint. An empty
// endpoint disables delivery.
func NewDispatcher(endpoint string, client *http.Client) *Dispatcher {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Dispatcher{
		endpoint: endpoint,
		client:   client,
		retries:  3,
		delay:    200 * time.Millisecond,
	}
}

// Dispatch delivers one event, retrying on failure until the attempts or
// the context run out. Returns whether delivery succeeded.
func (d *Dispatcher) Dispatch(ctx context.Context, event Event) bool {
	if d.endpoint == "" {
		utils.LogDebug("Analytics disabled, dropping event %s", event.Name)
		return false
	}

	body, err := json.Marshal(event)
	if err != nil {
		utils.LogError("Failed to encode analytics event %s: %v", event.Name, err)
		return false
	}

	for attempt := 0; attempt <= d.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				utils.LogDebug("Analytics event %s abandoned: %v", event.Name, ctx.Err())
				return false
			case <-time.After(d.delay):
			}
		}

		if err := d.post(ctx, body); err != nil {
			utils.LogDebug("Analytics event %s attempt %d failed: %v", event.Name, attempt+1, err)
			continue
		}
		utils.LogInfo("Analytics event sent: %s", event.Name)
		return true
	}

	utils.LogDebug("Analytics event %s dropped after %d attempts", event.Name, d.retries+1)
	return false
}

// DispatchAsync fires the event from a goroutine with its own timeout so
// user-facing handlers never wait on analytics.
func (d *Dispatcher) DispatchAsync(event Event) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		d.Dispatch(ctx, event)
	}()
}

func (d *Dispatcher) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
