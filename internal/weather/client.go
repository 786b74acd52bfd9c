package weather

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"resty.dev/v3"
)

// DefaultBaseURL is the OpenWeatherMap 2.5 API root.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client is a thin wrapper around resty.Client for the OpenWeatherMap API.
// Every call is a single GET with no retries.
type Client struct {
	apiKey string
	client *resty.Client
}

// NewClient creates a Client for baseURL. A zero timeout keeps resty's default.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &Client{
		apiKey: apiKey,
		client: c,
	}
}

// Close releases the underlying resty client.
func (w *Client) Close() error {
	return w.client.Close()
}

// Current retrieves the current weather for city, optionally narrowed by a
// two-letter country code. Values come back in metric units.
func (w *Client) Current(ctx context.Context, city, country string) (*Report, error) {
	var r Report
	if err := w.get(ctx, "/weather", city, country, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Forecast retrieves the 5 day / 3 hour forecast for city.
func (w *Client) Forecast(ctx context.Context, city, country string) (*Forecast, error) {
	var f Forecast
	if err := w.get(ctx, "/forecast", city, country, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (w *Client) get(ctx context.Context, endpoint, city, country string, out any) error {
	q := Query(city, country)
	start := time.Now()

	resp, err := w.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     q,
			"units": "metric",
			"appid": w.apiKey,
		}).
		Get(endpoint)
	if err != nil {
		slog.Debug("weather request failed", slog.String("endpoint", endpoint), slog.String("q", q), slog.String("error", err.Error()))
		return &Error{Kind: KindNetwork, Endpoint: endpoint, Err: err}
	}

	slog.Debug("weather request",
		slog.String("endpoint", endpoint),
		slog.String("q", q),
		slog.Int("status", resp.StatusCode()),
		slog.Duration("took", time.Since(start)))

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		body := resp.Bytes()
		eb := parseErrorBody(body)
		slog.Debug("weather api error",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode()),
			slog.String("cod", eb.Code),
			slog.String("message", eb.Message))
		return &Error{
			Kind:         KindAPI,
			Endpoint:     endpoint,
			StatusCode:   resp.StatusCode(),
			Body:         string(body),
			ProviderCode: eb.Code,
			Message:      eb.Message,
		}
	}

	if err := json.Unmarshal(resp.Bytes(), out); err != nil {
		return &Error{Kind: KindDecode, Endpoint: endpoint, Err: err}
	}
	return nil
}

// Query builds the provider's q parameter: "city,CC" or just "city".
func Query(city, country string) string {
	if country == "" {
		return city
	}
	return city + "," + country
}
