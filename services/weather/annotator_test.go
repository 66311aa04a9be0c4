package weather

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"alpsconnect/models"
)

type fakeProvider struct {
	mu        sync.Mutex
	fetched   []string
	forecasts map[string]*models.Forecast
	errors    map[string]error
}

func (p *fakeProvider) FetchForecast(ctx context.Context, lat, lng float64, date string) (*models.Forecast, error) {
	p.mu.Lock()
	p.fetched = append(p.fetched, date)
	p.mu.Unlock()

	if err, ok := p.errors[date]; ok {
		return nil, err
	}
	return p.forecasts[date], nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]models.Forecast
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]models.Forecast)}
}

func (c *fakeCache) Get(ctx context.Context, tripID, date string) (*models.Forecast, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if forecast, ok := c.entries[tripID+"/"+date]; ok {
		return &forecast, nil
	}
	return nil, nil
}

func (c *fakeCache) Set(ctx context.Context, tripID, date string, forecast models.Forecast) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[tripID+"/"+date] = forecast
	return nil
}

func annotatorAt(day string, provider ForecastProvider, cache ForecastCache) *Annotator {
	a := NewAnnotator(provider, cache)
	t, _ := time.Parse("2006-01-02", day)
	a.now = func() time.Time { return t }
	return a
}

func calendarTrip() *models.Trip {
	return &models.Trip{
		ID:               "trip-1",
		AvailableFrom:    "2026-02-01",
		AvailableTo:      "2026-03-31",
		BlackoutWeekdays: []time.Weekday{time.Wednesday},
		Coordinates:      models.Coordinates{Lat: 45.9, Lng: 7.6},
	}
}

func TestMonthGridRange(t *testing.T) {
	tests := []struct {
		year      int
		month     time.Month
		wantStart string
		wantEnd   string
	}{
		// February 2026 starts on a Sunday, so the grid reaches back to
		// Monday January 26 and ends Sunday March 1.
		{2026, time.February, "2026-01-26", "2026-03-01"},
		// June 2026 starts on a Monday: no leading padding.
		{2026, time.June, "2026-06-01", "2026-07-05"},
	}

	for _, tt := range tests {
		start, end := MonthGridRange(tt.year, tt.month)
		if got := start.Format("2006-01-02"); got != tt.wantStart {
			t.Errorf("MonthGridRange(%d, %s) start = %s, want %s", tt.year, tt.month, got, tt.wantStart)
		}
		if got := end.Format("2006-01-02"); got != tt.wantEnd {
			t.Errorf("MonthGridRange(%d, %s) end = %s, want %s", tt.year, tt.month, got, tt.wantEnd)
		}
	}
}

func TestAnnotateMonthBookableAndForecast(t *testing.T) {
	provider := &fakeProvider{
		forecasts: map[string]*models.Forecast{
			"2026-02-02": {Date: "2026-02-02", MinTemp: -8, MaxTemp: -1, WeatherCode: 71},
		},
	}
	annotator := annotatorAt("2026-02-01", provider, newFakeCache())

	days, err := annotator.AnnotateMonth(context.Background(), calendarTrip(), 2026, time.February)
	if err != nil {
		t.Fatalf("AnnotateMonth: %v", err)
	}

	byDate := make(map[string]models.CalendarDay)
	for _, day := range days {
		byDate[day.Date] = day
	}

	snowDay, ok := byDate["2026-02-02"]
	if !ok {
		t.Fatal("grid is missing 2026-02-02")
	}
	if snowDay.Forecast == nil || snowDay.Forecast.WeatherCode != 71 {
		t.Fatalf("forecast for 2026-02-02 = %+v, want code 71", snowDay.Forecast)
	}
	if snowDay.Condition != string(models.ConditionSnow) {
		t.Errorf("condition = %q, want %q", snowDay.Condition, models.ConditionSnow)
	}
	if !snowDay.Bookable {
		t.Error("2026-02-02 should be bookable")
	}

	// Wednesday inside the window: never bookable.
	if byDate["2026-02-04"].Bookable {
		t.Error("blackout wednesday must not be bookable")
	}
	// Padding day from January: outside the window and outside the month.
	if pad := byDate["2026-01-26"]; pad.InMonth || pad.Bookable {
		t.Errorf("padding day = %+v, want neither in-month nor bookable", pad)
	}
}

func TestAnnotateMonthHorizon(t *testing.T) {
	provider := &fakeProvider{}
	annotator := annotatorAt("2026-02-01", provider, newFakeCache())

	if _, err := annotator.AnnotateMonth(context.Background(), calendarTrip(), 2026, time.February); err != nil {
		t.Fatalf("AnnotateMonth: %v", err)
	}

	for _, date := range provider.fetched {
		day, _ := time.Parse("2006-01-02", date)
		today, _ := time.Parse("2006-01-02", "2026-02-01")
		diff := int(day.Sub(today).Hours() / 24)
		if diff < 0 || diff > ForecastHorizonDays {
			t.Errorf("fetched %s, %d days out, beyond the %d-day horizon", date, diff, ForecastHorizonDays)
		}
	}
	if len(provider.fetched) != ForecastHorizonDays+1 {
		t.Errorf("fetched %d days, want %d", len(provider.fetched), ForecastHorizonDays+1)
	}
}

func TestAnnotateMonthFarMonthSkipsProvider(t *testing.T) {
	provider := &fakeProvider{}
	annotator := annotatorAt("2026-02-01", provider, newFakeCache())

	if _, err := annotator.AnnotateMonth(context.Background(), calendarTrip(), 2026, time.June); err != nil {
		t.Fatalf("AnnotateMonth: %v", err)
	}
	if len(provider.fetched) != 0 {
		t.Errorf("a month entirely beyond the horizon fetched %v, want nothing", provider.fetched)
	}
}

func TestAnnotateMonthUsesCache(t *testing.T) {
	cache := newFakeCache()
	cached := models.Forecast{Date: "2026-02-03", MinTemp: -5, MaxTemp: 2, WeatherCode: 2}
	if err := cache.Set(context.Background(), "trip-1", "2026-02-03", cached); err != nil {
		t.Fatal(err)
	}

	provider := &fakeProvider{}
	annotator := annotatorAt("2026-02-01", provider, cache)

	days, err := annotator.AnnotateMonth(context.Background(), calendarTrip(), 2026, time.February)
	if err != nil {
		t.Fatalf("AnnotateMonth: %v", err)
	}

	for _, date := range provider.fetched {
		if date == "2026-02-03" {
			t.Error("cached day was fetched from the provider")
		}
	}
	for _, day := range days {
		if day.Date == "2026-02-03" {
			if day.Forecast == nil || day.Forecast.WeatherCode != 2 {
				t.Errorf("cached forecast not applied: %+v", day.Forecast)
			}
		}
	}
}

func TestAnnotateMonthCachesFetches(t *testing.T) {
	cache := newFakeCache()
	provider := &fakeProvider{
		forecasts: map[string]*models.Forecast{
			"2026-02-05": {Date: "2026-02-05", WeatherCode: 61},
		},
	}
	annotator := annotatorAt("2026-02-01", provider, cache)

	if _, err := annotator.AnnotateMonth(context.Background(), calendarTrip(), 2026, time.February); err != nil {
		t.Fatalf("AnnotateMonth: %v", err)
	}

	stored, err := cache.Get(context.Background(), "trip-1", "2026-02-05")
	if err != nil {
		t.Fatal(err)
	}
	if stored == nil || stored.WeatherCode != 61 {
		t.Errorf("fetched forecast not cached: %+v", stored)
	}
}

func TestAnnotateMonthFetchError(t *testing.T) {
	provider := &fakeProvider{
		errors: map[string]error{
			"2026-02-06": errors.New("upstream down"),
		},
		forecasts: map[string]*models.Forecast{
			"2026-02-07": {Date: "2026-02-07", WeatherCode: 0},
		},
	}
	annotator := annotatorAt("2026-02-01", provider, newFakeCache())

	days, err := annotator.AnnotateMonth(context.Background(), calendarTrip(), 2026, time.February)
	if err != nil {
		t.Fatalf("AnnotateMonth: %v", err)
	}

	for _, day := range days {
		switch day.Date {
		case "2026-02-06":
			if day.FetchError == "" {
				t.Error("failed lookup should surface a FetchError")
			}
			if day.Forecast != nil {
				t.Error("failed lookup must not carry a forecast")
			}
		case "2026-02-07":
			if day.FetchError != "" {
				t.Errorf("one day's failure leaked onto another: %q", day.FetchError)
			}
			if day.Forecast == nil {
				t.Error("successful lookup lost its forecast")
			}
		}
	}
}
