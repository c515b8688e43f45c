package service

import (
	"context"
	"fmt"
	"time"

	"github.com/katiamach/climate-service-api/internal/model"
)

//go:generate mockgen -source=service.go -destination=mock/mock.go -package=mock Repository

const dateLayout = "2006-01-02"

// ReferenceDate is the latest date of the dataset, used as "today" for yearly queries.
var ReferenceDate = time.Date(2017, time.August, 23, 0, 0, 0, 0, time.UTC)

// YearAgo is the first date of the last year of data.
var YearAgo = ReferenceDate.AddDate(0, 0, -365).Format(dateLayout)

// Repository provides necessary repo methods.
type Repository interface {
	ScanByDateRange(ctx context.Context, dr model.DateRange) ([]*model.Measurement, error)
	CountByStation(ctx context.Context) ([]*model.StationActivity, error)
	MostActiveStation(ctx context.Context) (string, error)
	AggregateTemperature(ctx context.Context, start, end string) (*model.TemperatureSummary, error)
}

// ClimateService provides climate service functionality.
type ClimateService struct {
	repo Repository
}

// New creates new ClimateService.
func New(repo Repository) *ClimateService {
	return &ClimateService{
		repo: repo,
	}
}

// GetPrecipitation returns precipitation for the last year of data, oldest first.
func (cs *ClimateService) GetPrecipitation(ctx context.Context) ([]*model.Precipitation, error) {
	measurements, err := cs.repo.ScanByDateRange(ctx, model.DateRange{Start: YearAgo})
	if err != nil {
		return nil, fmt.Errorf("failed to get measurements: %w", err)
	}

	precipitation := make([]*model.Precipitation, 0, len(measurements))
	for _, m := range measurements {
		precipitation = append(precipitation, &model.Precipitation{
			Date:          m.Date,
			Precipitation: m.Precipitation,
		})
	}

	return precipitation, nil
}

// GetStations returns stations with their number of observations, most active first.
func (cs *ClimateService) GetStations(ctx context.Context) ([]*model.StationActivity, error) {
	activity, err := cs.repo.CountByStation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count station observations: %w", err)
	}

	if activity == nil {
		activity = []*model.StationActivity{}
	}

	return activity, nil
}

// GetTemperatureObservations returns last year temperatures of the most active station, newest first.
func (cs *ClimateService) GetTemperatureObservations(ctx context.Context) ([]*model.TemperatureObservation, error) {
	station, err := cs.repo.MostActiveStation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get most active station: %w", err)
	}

	if station == "" {
		return []*model.TemperatureObservation{}, nil
	}

	measurements, err := cs.repo.ScanByDateRange(ctx, model.DateRange{
		Station:    station,
		Start:      YearAgo,
		Descending: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get station %s measurements: %w", station, err)
	}

	observations := make([]*model.TemperatureObservation, 0, len(measurements))
	for _, m := range measurements {
		observations = append(observations, &model.TemperatureObservation{
			Date:        m.Date,
			Temperature: m.Temperature,
		})
	}

	return observations, nil
}

// GetTemperatureSummary returns min, average and max temperature from start date
// up to end date inclusive. Empty end means no upper bound.
func (cs *ClimateService) GetTemperatureSummary(ctx context.Context, start, end string) ([]*model.TemperatureSummary, error) {
	summary, err := cs.repo.AggregateTemperature(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate temperature: %w", err)
	}

	return []*model.TemperatureSummary{summary}, nil
}
