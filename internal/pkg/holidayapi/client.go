package holidayapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/obraflow/obraflow-backend-go/internal/domain/holiday"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
)

// Client fetches national holidays from a BrasilAPI-compatible endpoint
// (GET {base}/feriados/v1/{year}). Results are cached per calendar year for
// the lifetime of the client, so one reconciliation run hits the network at
// most once per year touched.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	cache map[int][]holiday.Holiday
}

var _ holiday.Provider = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		cache:      make(map[int][]holiday.Holiday),
	}
}

type holidayPayload struct {
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
}

// Holidays implements holiday.Provider.
func (c *Client) Holidays(ctx context.Context, year int) ([]holiday.Holiday, error) {
	c.mu.RLock()
	cached, ok := c.cache[year]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	url := fmt.Sprintf("%s/feriados/v1/%d", c.baseURL, year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", holiday.ErrSourceUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", holiday.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", holiday.ErrSourceUnavailable, resp.StatusCode)
	}

	var payload []holidayPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", holiday.ErrSourceUnavailable, err)
	}

	holidays := make([]holiday.Holiday, 0, len(payload))
	for _, item := range payload {
		date, err := calendar.ParseDate(item.Date)
		if err != nil {
			// A malformed entry drops that entry, not the year.
			continue
		}
		holidays = append(holidays, holiday.Holiday{Date: date, Name: item.Name})
	}

	c.mu.Lock()
	c.cache[year] = holidays
	c.mu.Unlock()

	return holidays, nil
}

// Refresh re-fetches a year, replacing the cached entry. Used by the
// nightly cache-warm job.
func (c *Client) Refresh(ctx context.Context, year int) error {
	c.mu.Lock()
	delete(c.cache, year)
	c.mu.Unlock()
	_, err := c.Holidays(ctx, year)
	return err
}
