package weather

import (
	"context"
	"sync"
	"time"

	"alpsconnect/models"
	"alpsconnect/services/booking"
	"alpsconnect/utils"

	"go.uber.org/zap"
)

// Annotator builds the booking calendar for a trip: a month grid padded to
// full weeks, each day flagged bookable and, inside the forecast horizon,
// annotated with the day's forecast.
type Annotator struct {
	Provider ForecastProvider
	Cache    ForecastCache

	now func() time.Time
}

func NewAnnotator(provider ForecastProvider, cache ForecastCache) *Annotator {
	return &Annotator{
		Provider: provider,
		Cache:    cache,
		now:      time.Now,
	}
}

// MonthGridRange returns the first and last day of the month grid for
// (year, month): the month padded to full Monday-started weeks. The end is
// inclusive.
func MonthGridRange(year int, month time.Month) (time.Time, time.Time) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	return startOfWeek(monthStart), startOfWeek(monthEnd).AddDate(0, 0, 6)
}

func startOfWeek(t time.Time) time.Time {
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return t.AddDate(0, 0, -offset)
}

type fetchResult struct {
	date     string
	forecast *models.Forecast
	err      error
}

// AnnotateMonth returns one cell per grid day. Forecast lookups fan out
// concurrently for eligible uncached days; a failed lookup marks its cell
// with FetchError instead of silently leaving it bare, while a day the
// upstream has no data for simply stays unannotated.
func (a *Annotator) AnnotateMonth(ctx context.Context, trip *models.Trip, year int, month time.Month) ([]models.CalendarDay, error) {
	logger := utils.GetLogger()
	today := booking.Day(a.now().UTC())
	gridStart, gridEnd := MonthGridRange(year, month)

	days := make([]models.CalendarDay, 0, 42)
	forecasts := make(map[string]*models.Forecast)
	var toFetch []string

	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		date := day.Format(booking.DayFormat)
		days = append(days, models.CalendarDay{
			Date:     date,
			InMonth:  day.Month() == month,
			Bookable: booking.IsDateAvailable(trip, day, today),
		})

		diff := int(day.Sub(today).Hours() / 24)
		if diff < 0 || diff > ForecastHorizonDays {
			continue
		}

		cached, err := a.Cache.Get(ctx, trip.ID, date)
		if err != nil {
			logger.Warn("forecast cache read failed", zap.String("date", date), zap.Error(err))
		}
		if cached != nil {
			forecasts[date] = cached
			continue
		}
		toFetch = append(toFetch, date)
	}

	results := make([]fetchResult, len(toFetch))
	var wg sync.WaitGroup
	for i, date := range toFetch {
		wg.Add(1)
		go func(i int, date string) {
			defer wg.Done()
			forecast, err := a.Provider.FetchForecast(ctx, trip.Coordinates.Lat, trip.Coordinates.Lng, date)
			results[i] = fetchResult{date: date, forecast: forecast, err: err}
		}(i, date)
	}
	wg.Wait()

	fetchErrors := make(map[string]string)
	for _, res := range results {
		if res.err != nil {
			logger.Warn("forecast fetch failed", zap.String("date", res.date), zap.Error(res.err))
			fetchErrors[res.date] = res.err.Error()
			continue
		}
		if res.forecast == nil {
			continue
		}
		forecasts[res.date] = res.forecast
		if err := a.Cache.Set(ctx, trip.ID, res.date, *res.forecast); err != nil {
			logger.Warn("forecast cache write failed", zap.String("date", res.date), zap.Error(err))
		}
	}

	for i := range days {
		if forecast, ok := forecasts[days[i].Date]; ok {
			days[i].Forecast = forecast
			days[i].Condition = string(ConditionForCode(forecast.WeatherCode))
			continue
		}
		if msg, ok := fetchErrors[days[i].Date]; ok {
			days[i].FetchError = msg
		}
	}
	return days, nil
}
