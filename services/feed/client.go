package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"roomboard/models"
)

// Client fetches the two upstream endpoints. Both are plain GET returning
// fixed JSON arrays; anything other than 200 from either is a poll failure.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient builds a client for the upstream base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// FetchAll issues the rooms and bookings fetches concurrently and succeeds
// only if both do. There is no partial result: callers get both arrays or
// an error.
func (c *Client) FetchAll(ctx context.Context) ([]models.Room, []models.Booking, error) {
	var (
		wg       sync.WaitGroup
		rooms    []models.Room
		bookings []models.Booking
		roomsErr error
		bookErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		roomsErr = c.getJSON(ctx, "/rooms", &rooms)
	}()
	go func() {
		defer wg.Done()
		bookErr = c.getJSON(ctx, "/booking", &bookings)
	}()
	wg.Wait()

	if roomsErr != nil {
		return nil, nil, fmt.Errorf("rooms fetch: %w", roomsErr)
	}
	if bookErr != nil {
		return nil, nil, fmt.Errorf("bookings fetch: %w", bookErr)
	}
	return rooms, bookings, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decoding response failed: %w", path, err)
	}
	return nil
}
