package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func clientAt(t *testing.T, day string, handler http.HandlerFunc) (*Client, *int) {
	t.Helper()

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	now, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatal(err)
	}
	return &Client{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		now:        func() time.Time { return now },
	}, &requests
}

const sampleResponse = `{
	"daily": {
		"time": ["2026-02-01", "2026-02-02", "2026-02-03"],
		"weather_code": [0, 71, 95],
		"temperature_2m_max": [3.5, -1.0, 0.5],
		"temperature_2m_min": [-4.0, -8.2, -6.1]
	}
}`

func TestFetchForecast(t *testing.T) {
	var query string
	client, _ := clientAt(t, "2026-02-01", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(sampleResponse))
	})

	forecast, err := client.FetchForecast(context.Background(), 45.9, 7.6, "2026-02-02")
	if err != nil {
		t.Fatalf("FetchForecast: %v", err)
	}
	if forecast == nil {
		t.Fatal("expected a forecast")
	}
	if forecast.WeatherCode != 71 || forecast.MinTemp != -8.2 || forecast.MaxTemp != -1.0 {
		t.Errorf("forecast = %+v, want the 2026-02-02 row", forecast)
	}

	values, err := url.ParseQuery(query)
	if err != nil {
		t.Fatal(err)
	}
	if values.Get("latitude") != "45.9" || values.Get("longitude") != "7.6" {
		t.Errorf("coordinates in query = %s", query)
	}
	if values.Get("daily") != "weather_code,temperature_2m_max,temperature_2m_min" {
		t.Errorf("daily variables in query = %q", values.Get("daily"))
	}
	if values.Get("forecast_days") != "16" {
		t.Errorf("forecast_days = %q, want 16", values.Get("forecast_days"))
	}
}

func TestFetchForecastOutsideHorizon(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{"past day", "2026-01-31"},
		{"beyond horizon", "2026-02-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, requests := clientAt(t, "2026-02-01", func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(sampleResponse))
			})

			forecast, err := client.FetchForecast(context.Background(), 45.9, 7.6, tt.date)
			if err != nil {
				t.Fatalf("FetchForecast: %v", err)
			}
			if forecast != nil {
				t.Errorf("forecast = %+v, want nil", forecast)
			}
			if *requests != 0 {
				t.Error("an out-of-horizon date must not hit the upstream")
			}
		})
	}
}

func TestFetchForecastHorizonEdge(t *testing.T) {
	client, requests := clientAt(t, "2026-02-01", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"daily": {"time": [], "weather_code": [], "temperature_2m_max": [], "temperature_2m_min": []}}`))
	})

	// Day 13 is the last reachable one.
	if _, err := client.FetchForecast(context.Background(), 45.9, 7.6, "2026-02-14"); err != nil {
		t.Fatalf("FetchForecast: %v", err)
	}
	if *requests != 1 {
		t.Errorf("requests = %d, want 1 for the horizon edge", *requests)
	}
}

func TestFetchForecastMissingDay(t *testing.T) {
	client, _ := clientAt(t, "2026-02-01", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleResponse))
	})

	forecast, err := client.FetchForecast(context.Background(), 45.9, 7.6, "2026-02-10")
	if err != nil {
		t.Fatalf("FetchForecast: %v", err)
	}
	if forecast != nil {
		t.Errorf("forecast = %+v, want nil when the upstream lacks the day", forecast)
	}
}

func TestFetchForecastUpstreamError(t *testing.T) {
	client, _ := clientAt(t, "2026-02-01", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	if _, err := client.FetchForecast(context.Background(), 45.9, 7.6, "2026-02-02"); err == nil {
		t.Fatal("expected an error for a non-200 upstream response")
	}
}

func TestFetchForecastBadDate(t *testing.T) {
	client, requests := clientAt(t, "2026-02-01", func(w http.ResponseWriter, r *http.Request) {})

	if _, err := client.FetchForecast(context.Background(), 45.9, 7.6, "domani"); err == nil {
		t.Fatal("expected an error for a malformed date")
	}
	if *requests != 0 {
		t.Error("a malformed date must not hit the upstream")
	}
}
