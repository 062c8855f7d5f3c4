package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/flightbase-api/internal/cache"
	"github.com/flightbase-api/internal/config"
	"github.com/flightbase-api/internal/logger"
)

// WeatherService proxies an OpenWeatherMap-style API. Successful
// lookups are cached briefly so bursts of dashboard refreshes do not
// hammer the upstream.
type WeatherService struct {
	cfg    *config.WeatherConfig
	client *http.Client
}

// NewWeatherService creates a weather service.
func NewWeatherService(cfg *config.WeatherConfig) *WeatherService {
	timeout := 3 * time.Second
	if cfg != nil && cfg.TimeoutMS > 0 {
		timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	}
	return &WeatherService{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// WeatherReport is the condensed upstream response.
type WeatherReport struct {
	AirportCode string    `json:"airport_code"`
	Description string    `json:"description"`
	Temperature float64   `json:"temperature"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Timestamp   time.Time `json:"timestamp"`
}

// upstreamWeather mirrors the fields we read from the upstream payload.
type upstreamWeather struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Get fetches current weather for an airport code. Upstream errors of
// any kind surface as ErrNotFound so the handler returns 404 without
// leaking upstream detail.
func (s *WeatherService) Get(ctx context.Context, airportCode string) (*WeatherReport, error) {
	code := strings.ToUpper(strings.TrimSpace(airportCode))
	if code == "" || len(code) > 4 {
		return nil, ErrInvalidInput
	}
	if s.cfg == nil || strings.TrimSpace(s.cfg.BaseURL) == "" {
		return nil, ErrNotFound
	}

	cacheKey := "weather:" + code
	var cached WeatherReport
	if hit, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	report, err := s.fetch(ctx, code)
	if err != nil {
		return nil, err
	}

	ttl := 60 * time.Second
	if s.cfg.CacheTTLSeconds > 0 {
		ttl = time.Duration(s.cfg.CacheTTLSeconds) * time.Second
	}
	if err := cache.SetJSON(ctx, cacheKey, report, ttl); err != nil {
		logger.Warnw("weather_cache_write_failed", "error", err, "airport_code", code)
	}
	return report, nil
}

func (s *WeatherService) fetch(ctx context.Context, code string) (*WeatherReport, error) {
	query := url.Values{}
	query.Set("q", code)
	query.Set("appid", s.cfg.APIKey)
	query.Set("units", "metric")
	requestURL := fmt.Sprintf("%s?%s", strings.TrimRight(s.cfg.BaseURL, "?"), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, ErrNotFound
	}
	resp, err := s.client.Do(req)
	if err != nil {
		logger.Warnw("weather_upstream_unreachable", "error", err, "airport_code", code)
		return nil, ErrNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warnw("weather_upstream_error", "status", resp.StatusCode, "airport_code", code)
		return nil, ErrNotFound
	}

	var payload upstreamWeather
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Warnw("weather_upstream_decode_failed", "error", err, "airport_code", code)
		return nil, ErrNotFound
	}

	description := ""
	if len(payload.Weather) > 0 {
		description = payload.Weather[0].Description
	}
	return &WeatherReport{
		AirportCode: code,
		Description: description,
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		Timestamp:   time.Now().UTC(),
	}, nil
}
