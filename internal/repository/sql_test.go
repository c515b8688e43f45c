package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/tj/assert"

	"github.com/katiamach/climate-service-api/internal/config"
	"github.com/katiamach/climate-service-api/internal/model"
)

// Same tables as Resources/hawaii.sqlite.
const testSchema = `
CREATE TABLE station (
  id        INTEGER PRIMARY KEY,
  station   TEXT,
  name      TEXT,
  latitude  FLOAT,
  longitude FLOAT,
  elevation FLOAT
);
CREATE TABLE measurement (
  id      INTEGER PRIMARY KEY,
  station TEXT,
  date    TEXT,
  prcp    FLOAT,
  tobs    FLOAT
);
`

var testStations = []model.Station{
	{Station: "USC00519281", Name: "WAIHEE 837.5, HI US", Latitude: 21.45167, Longitude: -157.84889, Elevation: 32.9},
	{Station: "USC00519397", Name: "WAIKIKI 717.2, HI US", Latitude: 21.2716, Longitude: -157.8168, Elevation: 3},
	{Station: "USC00513117", Name: "KANEOHE 838.1, HI US", Latitude: 21.4234, Longitude: -157.8015, Elevation: 14.6},
}

func ptr(f float64) *float64 {
	return &f
}

func testMeasurements() []model.Measurement {
	return []model.Measurement{
		{Station: "USC00519281", Date: "2016-08-22", Precipitation: ptr(0.4), Temperature: ptr(70)},
		{Station: "USC00519281", Date: "2016-08-23", Precipitation: ptr(1.79), Temperature: ptr(77)},
		{Station: "USC00519281", Date: "2017-08-18", Precipitation: nil, Temperature: ptr(79)},
		{Station: "USC00519397", Date: "2016-08-23", Precipitation: ptr(0), Temperature: ptr(81)},
		{Station: "USC00519397", Date: "2017-08-23", Precipitation: ptr(0), Temperature: ptr(81)},
		{Station: "USC00513117", Date: "2017-08-23", Precipitation: ptr(0.5), Temperature: nil},
	}
}

func setupTestDB(t *testing.T, measurements []model.Measurement) *SQLRepository {
	t.Helper()

	db, err := sql.Open(config.DriverSQLite, ":memory:")
	assert.Nil(t, err)
	db.SetMaxOpenConns(1)

	_, err = db.Exec(testSchema)
	assert.Nil(t, err)

	for _, st := range testStations {
		_, err := db.Exec(`INSERT INTO station (station, name, latitude, longitude, elevation) VALUES (?, ?, ?, ?, ?)`,
			st.Station, st.Name, st.Latitude, st.Longitude, st.Elevation)
		assert.Nil(t, err)
	}

	for _, m := range measurements {
		_, err := db.Exec(`INSERT INTO measurement (station, date, prcp, tobs) VALUES (?, ?, ?, ?)`,
			m.Station, m.Date, m.Precipitation, m.Temperature)
		assert.Nil(t, err)
	}

	repo := NewSQLRepository(db, config.DriverSQLite, 5*time.Second)
	t.Cleanup(func() {
		assert.Nil(t, repo.Close())
	})

	return repo
}

func dates(measurements []*model.Measurement) []string {
	out := make([]string, 0, len(measurements))
	for _, m := range measurements {
		out = append(out, m.Date)
	}
	return out
}

func TestScanByDateRange(t *testing.T) {
	repo := setupTestDB(t, testMeasurements())
	ctx := context.Background()

	cases := []struct {
		name          string
		dateRange     model.DateRange
		expectedDates []string
	}{
		{
			name:          "no bounds",
			dateRange:     model.DateRange{},
			expectedDates: []string{"2016-08-22", "2016-08-23", "2016-08-23", "2017-08-18", "2017-08-23", "2017-08-23"},
		},
		{
			name:          "start bound is inclusive",
			dateRange:     model.DateRange{Start: "2016-08-23"},
			expectedDates: []string{"2016-08-23", "2016-08-23", "2017-08-18", "2017-08-23", "2017-08-23"},
		},
		{
			name:          "end bound is inclusive",
			dateRange:     model.DateRange{Start: "2016-08-23", End: "2017-08-18"},
			expectedDates: []string{"2016-08-23", "2016-08-23", "2017-08-18"},
		},
		{
			name:          "station descending",
			dateRange:     model.DateRange{Station: "USC00519281", Start: "2016-08-23", Descending: true},
			expectedDates: []string{"2017-08-18", "2016-08-23"},
		},
		{
			name:          "unknown station",
			dateRange:     model.DateRange{Station: "USC00000000"},
			expectedDates: []string{},
		},
		{
			name:          "malformed date matches nothing",
			dateRange:     model.DateRange{Start: "not-a-date"},
			expectedDates: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			measurements, err := repo.ScanByDateRange(ctx, tc.dateRange)
			assert.Nil(t, err)
			assert.Equal(t, tc.expectedDates, dates(measurements))

			for _, m := range measurements {
				if tc.dateRange.Station != "" {
					assert.Equal(t, tc.dateRange.Station, m.Station)
				}
			}
		})
	}
}

func TestScanByDateRangeKeepsNulls(t *testing.T) {
	repo := setupTestDB(t, testMeasurements())

	measurements, err := repo.ScanByDateRange(context.Background(), model.DateRange{Start: "2017-08-18", End: "2017-08-18"})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(measurements))
	assert.Nil(t, measurements[0].Precipitation)
	assert.Equal(t, 79.0, *measurements[0].Temperature)
}

func TestCountByStation(t *testing.T) {
	measurements := testMeasurements()
	repo := setupTestDB(t, measurements)

	activity, err := repo.CountByStation(context.Background())
	assert.Nil(t, err)

	expected := []*model.StationActivity{
		{Station: "USC00519281", Observations: 3},
		{Station: "USC00519397", Observations: 2},
		{Station: "USC00513117", Observations: 1},
	}
	assert.Equal(t, expected, activity)

	var total int64
	for _, a := range activity {
		total += a.Observations
	}
	assert.Equal(t, int64(len(measurements)), total)
}

func TestMostActiveStation(t *testing.T) {
	ctx := context.Background()

	t.Run("matches first station count", func(t *testing.T) {
		repo := setupTestDB(t, testMeasurements())

		station, err := repo.MostActiveStation(ctx)
		assert.Nil(t, err)

		activity, err := repo.CountByStation(ctx)
		assert.Nil(t, err)
		assert.Equal(t, activity[0].Station, station)
	})

	t.Run("ties resolved by station id", func(t *testing.T) {
		repo := setupTestDB(t, []model.Measurement{
			{Station: "USC2", Date: "2017-01-01", Temperature: ptr(70)},
			{Station: "USC1", Date: "2017-01-01", Temperature: ptr(71)},
		})

		station, err := repo.MostActiveStation(ctx)
		assert.Nil(t, err)
		assert.Equal(t, "USC1", station)
	})

	t.Run("empty store", func(t *testing.T) {
		repo := setupTestDB(t, nil)

		station, err := repo.MostActiveStation(ctx)
		assert.Nil(t, err)
		assert.Equal(t, "", station)
	})
}

func TestAggregateTemperature(t *testing.T) {
	ctx := context.Background()

	t.Run("start and end", func(t *testing.T) {
		repo := setupTestDB(t, []model.Measurement{
			{Station: "USC1", Date: "2017-08-23", Precipitation: ptr(0.5), Temperature: ptr(80)},
			{Station: "USC1", Date: "2017-08-24", Precipitation: ptr(0), Temperature: ptr(82)},
		})

		summary, err := repo.AggregateTemperature(ctx, "2017-08-23", "2017-08-24")
		assert.Nil(t, err)
		assert.Equal(t, 80.0, *summary.Min)
		assert.Equal(t, 81.0, *summary.Average)
		assert.Equal(t, 82.0, *summary.Max)
	})

	t.Run("start only ignores null temperatures", func(t *testing.T) {
		repo := setupTestDB(t, testMeasurements())

		summary, err := repo.AggregateTemperature(ctx, "2017-01-01", "")
		assert.Nil(t, err)
		assert.Equal(t, 79.0, *summary.Min)
		assert.Equal(t, 80.0, *summary.Average)
		assert.Equal(t, 81.0, *summary.Max)
	})

	t.Run("ordered aggregates", func(t *testing.T) {
		repo := setupTestDB(t, testMeasurements())

		summary, err := repo.AggregateTemperature(ctx, "2016-01-01", "2017-12-31")
		assert.Nil(t, err)
		assert.True(t, *summary.Min <= *summary.Average)
		assert.True(t, *summary.Average <= *summary.Max)
	})

	t.Run("no matching rows", func(t *testing.T) {
		repo := setupTestDB(t, testMeasurements())

		summary, err := repo.AggregateTemperature(ctx, "2018-01-01", "2018-12-31")
		assert.Nil(t, err)
		assert.Equal(t, &model.TemperatureSummary{}, summary)
	})

	t.Run("malformed date", func(t *testing.T) {
		repo := setupTestDB(t, testMeasurements())

		summary, err := repo.AggregateTemperature(ctx, "yesterday", "")
		assert.Nil(t, err)
		assert.Equal(t, &model.TemperatureSummary{}, summary)
	})
}

func TestRebind(t *testing.T) {
	query := "SELECT * FROM measurement WHERE date >= ? AND date <= ? AND station = ?"

	sqlite := NewSQLRepository(nil, config.DriverSQLite, time.Second)
	assert.Equal(t, query, sqlite.rebind(query))

	postgres := NewSQLRepository(nil, config.DriverPostgres, time.Second)
	assert.Equal(t, "SELECT * FROM measurement WHERE date >= $1 AND date <= $2 AND station = $3", postgres.rebind(query))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file:Resources/hawaii.sqlite?mode=ro", sqliteDSN("Resources/hawaii.sqlite"))
	assert.Equal(t, "file:/data/hawaii.sqlite?cache=shared&mode=ro", sqliteDSN("file:/data/hawaii.sqlite?cache=shared"))
	assert.Equal(t, ":memory:", sqliteDSN(":memory:"))
}

func TestNewUnsupportedDriver(t *testing.T) {
	_, err := New(context.Background(), &config.Config{Driver: "oracle"})
	assert.True(t, errors.Is(err, ErrUnsupportedDriver))
}

func TestOpenSQLMissingFile(t *testing.T) {
	cfg := &config.Config{Driver: config.DriverSQLite, Path: t.TempDir() + "/missing.sqlite"}

	_, err := OpenSQL(context.Background(), cfg)
	assert.NotNil(t, err)
}
