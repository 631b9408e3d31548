package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/vam-insurance/insurance-api/internal/observability"
)

// Fetcher produces a weather snapshot for a coordinate pair.
type Fetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (Snapshot, error)
}

// Client implements Fetcher against the OpenWeatherMap current-weather API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	clock      clockwork.Clock
	metrics    *observability.Metrics
}

// NewClient creates an OpenWeatherMap client.
func NewClient(apiKey, baseURL string, timeout time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		clock:   clock,
		metrics: metrics,
	}
}

// Fetch retrieves current weather for the coordinates. Responses use metric
// units and Vietnamese descriptions, matching the frontend's locale.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (Snapshot, error) {
	params := url.Values{
		"lat":   {fmt.Sprintf("%g", lat)},
		"lon":   {fmt.Sprintf("%g", lon)},
		"appid": {c.apiKey},
		"units": {"metric"},
		"lang":  {"vi"},
	}
	fullURL := fmt.Sprintf("%s/weather?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.countFetch("error")
		return Snapshot{}, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.countFetch("error")
		body, _ := io.ReadAll(resp.Body)
		return Snapshot{}, fmt.Errorf("openweather API error: status %d: %s", resp.StatusCode, body)
	}

	var owResp response
	if err := json.NewDecoder(resp.Body).Decode(&owResp); err != nil {
		c.countFetch("error")
		return Snapshot{}, fmt.Errorf("decode response: %w", err)
	}

	c.countFetch("success")

	snapshot := Snapshot{
		Temperature: owResp.Main.Temp,
		FeelsLike:   owResp.Main.FeelsLike,
		Humidity:    owResp.Main.Humidity,
		Pressure:    owResp.Main.Pressure,
		WindSpeed:   owResp.Wind.Speed,
		Clouds:      owResp.Clouds.All,
		Rain1h:      owResp.Rain.OneHour,
		Rain3h:      owResp.Rain.ThreeHours,
		Visibility:  owResp.Visibility,
		FetchedAt:   c.clock.Now().UTC(),
	}
	if len(owResp.Weather) > 0 {
		snapshot.Condition = owResp.Weather[0].Main
		snapshot.Description = owResp.Weather[0].Description
	}
	return snapshot, nil
}

func (c *Client) countFetch(outcome string) {
	if c.metrics != nil {
		c.metrics.WeatherFetches.WithLabelValues(outcome).Inc()
	}
}

// OpenWeatherMap API response types.

type response struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Clouds struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Rain struct {
		OneHour    float64 `json:"1h"`
		ThreeHours float64 `json:"3h"`
	} `json:"rain"`
	Visibility float64 `json:"visibility"`
}
