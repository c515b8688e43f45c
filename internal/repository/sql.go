package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/katiamach/climate-service-api/internal/config"
	"github.com/katiamach/climate-service-api/internal/logger"
	"github.com/katiamach/climate-service-api/internal/model"
)

//go:embed sql/scan-measurements.sql
var scanMeasurementsSQL string

//go:embed sql/count-by-station.sql
var countByStationSQL string

//go:embed sql/most-active-station.sql
var mostActiveStationSQL string

//go:embed sql/aggregate-temperature.sql
var aggregateTemperatureSQL string

// SQLRepository reads measurements from a sqlite or postgres database.
type SQLRepository struct {
	db      *sql.DB
	driver  string
	timeout time.Duration
}

// OpenSQL opens the configured sql database and checks the connection.
func OpenSQL(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	dsn := cfg.ConnString
	if cfg.Driver == config.DriverSQLite {
		dsn = sqliteDSN(cfg.Path)
	}

	db, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctxWithTimeout); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.Driver, err)
	}

	return db, nil
}

// sqliteDSN opens file-backed databases read-only.
func sqliteDSN(path string) string {
	if path == ":memory:" {
		return path
	}
	if strings.HasPrefix(path, "file:") {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + "mode=ro"
	}

	return fmt.Sprintf("file:%s?mode=ro", path)
}

// NewSQLRepository creates new repository from sql database.
func NewSQLRepository(db *sql.DB, driver string, timeout time.Duration) *SQLRepository {
	return &SQLRepository{
		db:      db,
		driver:  driver,
		timeout: timeout,
	}
}

// Close closes database connection.
func (r *SQLRepository) Close() error {
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// ScanByDateRange returns measurements within the date range ordered by date.
func (r *SQLRepository) ScanByDateRange(ctx context.Context, dr model.DateRange) ([]*model.Measurement, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	where, args := dateConditions(dr.Start, dr.End)
	if dr.Station != "" {
		where = append(where, "station = ?")
		args = append(args, dr.Station)
	}

	order := "ASC"
	if dr.Descending {
		order = "DESC"
	}

	query := scanMeasurementsSQL + whereClause(where) + " ORDER BY date " + order
	rows, err := r.db.QueryContext(ctxWithTimeout, r.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query measurements: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error(fmt.Errorf("failed to close measurement rows: %w", err))
		}
	}()

	var measurements []*model.Measurement
	for rows.Next() {
		var (
			m          model.Measurement
			prcp, tobs sql.NullFloat64
		)
		if err := rows.Scan(&m.Station, &m.Date, &prcp, &tobs); err != nil {
			return nil, fmt.Errorf("failed to scan measurement: %w", err)
		}
		m.Precipitation = nullFloat(prcp)
		m.Temperature = nullFloat(tobs)

		measurements = append(measurements, &m)
	}

	return measurements, rows.Err()
}

// CountByStation returns number of measurements per station, most active first.
func (r *SQLRepository) CountByStation(ctx context.Context) ([]*model.StationActivity, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctxWithTimeout, countByStationSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to count station measurements: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error(fmt.Errorf("failed to close station count rows: %w", err))
		}
	}()

	var activity []*model.StationActivity
	for rows.Next() {
		var sa model.StationActivity
		if err := rows.Scan(&sa.Station, &sa.Observations); err != nil {
			return nil, fmt.Errorf("failed to scan station count: %w", err)
		}

		activity = append(activity, &sa)
	}

	return activity, rows.Err()
}

// MostActiveStation returns the station with the most measurements.
// Equal counts are resolved by station id. Empty store gives an empty id.
func (r *SQLRepository) MostActiveStation(ctx context.Context) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var station string
	err := r.db.QueryRowContext(ctxWithTimeout, mostActiveStationSQL).Scan(&station)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get most active station: %w", err)
	}

	return station, nil
}

// AggregateTemperature returns min, average and max temperature between dates.
func (r *SQLRepository) AggregateTemperature(ctx context.Context, start, end string) (*model.TemperatureSummary, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	where, args := dateConditions(start, end)
	query := aggregateTemperatureSQL + whereClause(where)

	var lowest, avg, highest sql.NullFloat64
	err := r.db.QueryRowContext(ctxWithTimeout, r.rebind(query), args...).Scan(&lowest, &avg, &highest)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate temperature: %w", err)
	}

	return &model.TemperatureSummary{
		Min:     nullFloat(lowest),
		Average: nullFloat(avg),
		Max:     nullFloat(highest),
	}, nil
}

func dateConditions(start, end string) ([]string, []any) {
	var (
		where []string
		args  []any
	)
	if start != "" {
		where = append(where, "date >= ?")
		args = append(args, start)
	}
	if end != "" {
		where = append(where, "date <= ?")
		args = append(args, end)
	}

	return where, args
}

func whereClause(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}

// rebind replaces ? placeholders with $n for postgres.
func (r *SQLRepository) rebind(query string) string {
	if r.driver != config.DriverPostgres {
		return query
	}

	var (
		b strings.Builder
		n int
	)
	for _, c := range query {
		if c != '?' {
			b.WriteRune(c)
			continue
		}
		n++
		b.WriteString("$" + strconv.Itoa(n))
	}

	return b.String()
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
