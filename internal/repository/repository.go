// Package repository provides read-only access to the climate observation store.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/katiamach/climate-service-api/internal/config"
	"github.com/katiamach/climate-service-api/internal/model"
)

// Measurements table and collection.
const measurementCollection = "measurement"

// DB errors.
var (
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Store is a read-only climate store handle.
type Store interface {
	ScanByDateRange(ctx context.Context, dr model.DateRange) ([]*model.Measurement, error)
	CountByStation(ctx context.Context) ([]*model.StationActivity, error)
	MostActiveStation(ctx context.Context) (string, error)
	AggregateTemperature(ctx context.Context, start, end string) (*model.TemperatureSummary, error)
	Close() error
}

// New opens the store selected by the configured driver.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite, config.DriverPostgres:
		db, err := OpenSQL(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewSQLRepository(db, cfg.Driver, cfg.QueryTimeout), nil
	case config.DriverMongo:
		repo, err := NewMongoRepository(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}
