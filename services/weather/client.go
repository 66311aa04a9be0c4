package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"alpsconnect/config"
	"alpsconnect/models"
	"alpsconnect/services/booking"
)

// ForecastHorizonDays is how far ahead (inclusive of today) daily forecasts
// are obtainable: today + 0..13.
const ForecastHorizonDays = 13

// ForecastProvider returns a daily forecast for a coordinate, or nil when
// the upstream has no data for that day.
type ForecastProvider interface {
	FetchForecast(ctx context.Context, lat, lng float64, date string) (*models.Forecast, error)
}

// Client fetches daily forecasts from an Open-Meteo compatible API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	now func() time.Time
}

func NewClient() *Client {
	return &Client{
		BaseURL:    config.AppConfig.WeatherAPIBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		now:        time.Now,
	}
}

type dailyBlock struct {
	Time        []string  `json:"time"`
	WeatherCode []int     `json:"weather_code"`
	TempMax     []float64 `json:"temperature_2m_max"`
	TempMin     []float64 `json:"temperature_2m_min"`
}

type forecastResponse struct {
	Daily *dailyBlock `json:"daily"`
}

// FetchForecast returns the forecast for date at (lat, lng). Dates in the
// past or beyond the forecast horizon yield nil without hitting the
// upstream; so does a response that lacks the requested day.
func (c *Client) FetchForecast(ctx context.Context, lat, lng float64, date string) (*models.Forecast, error) {
	target, err := booking.ParseDay(date)
	if err != nil {
		return nil, fmt.Errorf("invalid forecast date %q: %w", date, err)
	}

	today := booking.Day(c.now().UTC())
	diff := int(target.Sub(today).Hours() / 24)
	if diff < 0 || diff > ForecastHorizonDays {
		return nil, nil
	}

	// Request 16 days so the whole 14-day window is always covered.
	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%g", lat))
	query.Set("longitude", fmt.Sprintf("%g", lng))
	query.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	query.Set("timezone", "auto")
	query.Set("forecast_days", "16")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast upstream returned status %d", resp.StatusCode)
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}
	if payload.Daily == nil {
		return nil, nil
	}

	for i, day := range payload.Daily.Time {
		if day != date {
			continue
		}
		if i >= len(payload.Daily.WeatherCode) || i >= len(payload.Daily.TempMax) || i >= len(payload.Daily.TempMin) {
			return nil, nil
		}
		return &models.Forecast{
			Date:        date,
			MinTemp:     payload.Daily.TempMin[i],
			MaxTemp:     payload.Daily.TempMax[i],
			WeatherCode: payload.Daily.WeatherCode[i],
		}, nil
	}
	return nil, nil
}
