package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/katiamach/climate-service-api/internal/config"
	"github.com/katiamach/climate-service-api/internal/model"
)

// NewMongoDBClient initializes new mongoDB client.
func NewMongoDBClient(ctx context.Context, connString string) (*mongo.Client, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(connString).SetReadPreference(readpref.SecondaryPreferred())
	client, err := mongo.Connect(ctxWithTimeout, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	err = client.Ping(ctxWithTimeout, readpref.Primary())
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return client, nil
}

// MongoRepository wraps database and mongo client.
type MongoRepository struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

// NewMongoRepository creates new repository from mongo database.
func NewMongoRepository(ctx context.Context, cfg *config.Config) (*MongoRepository, error) {
	client, err := NewMongoDBClient(ctx, cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	return &MongoRepository{
		client:  client,
		db:      client.Database(cfg.DBName),
		timeout: cfg.QueryTimeout,
	}, nil
}

// Close closes mongo db connection.
func (r *MongoRepository) Close() error {
	if err := r.client.Disconnect(context.TODO()); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}

	return nil
}

// ScanByDateRange returns measurements within the date range ordered by date.
func (r *MongoRepository) ScanByDateRange(ctx context.Context, dr model.DateRange) ([]*model.Measurement, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := dateFilter(dr.Start, dr.End)
	if dr.Station != "" {
		filter["station"] = dr.Station
	}

	order := 1
	if dr.Descending {
		order = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: order}})

	cur, err := r.db.Collection(measurementCollection).Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find measurements: %w", err)
	}
	defer cur.Close(ctxWithTimeout)

	var measurements []*model.Measurement
	for cur.Next(ctxWithTimeout) {
		m := model.Measurement{}
		err := cur.Decode(&m)
		if err != nil {
			return nil, fmt.Errorf("failed to decode measurement: %w", err)
		}

		measurements = append(measurements, &m)
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}

	return measurements, nil
}

// CountByStation returns number of measurements per station, most active first.
func (r *MongoRepository) CountByStation(ctx context.Context) ([]*model.StationActivity, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return r.stationActivity(ctxWithTimeout, 0)
}

// MostActiveStation returns the station with the most measurements.
// Equal counts are resolved by station id. Empty store gives an empty id.
func (r *MongoRepository) MostActiveStation(ctx context.Context) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	activity, err := r.stationActivity(ctxWithTimeout, 1)
	if err != nil {
		return "", err
	}
	if len(activity) == 0 {
		return "", nil
	}

	return activity[0].Station, nil
}

func (r *MongoRepository) stationActivity(ctx context.Context, limit int64) ([]*model.StationActivity, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$station"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "_id", Value: 1},
		}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}

	cur, err := r.db.Collection(measurementCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count station measurements: %w", err)
	}

	var activity []*model.StationActivity
	if err := cur.All(ctx, &activity); err != nil {
		return nil, fmt.Errorf("failed to decode station counts: %w", err)
	}

	return activity, nil
}

// AggregateTemperature returns min, average and max temperature between dates.
func (r *MongoRepository) AggregateTemperature(ctx context.Context, start, end string) (*model.TemperatureSummary, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: dateFilter(start, end)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "min", Value: bson.D{{Key: "$min", Value: "$tobs"}}},
			{Key: "average", Value: bson.D{{Key: "$avg", Value: "$tobs"}}},
			{Key: "max", Value: bson.D{{Key: "$max", Value: "$tobs"}}},
		}}},
	}

	cur, err := r.db.Collection(measurementCollection).Aggregate(ctxWithTimeout, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate temperature: %w", err)
	}

	var summaries []*model.TemperatureSummary
	if err := cur.All(ctxWithTimeout, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode temperature aggregate: %w", err)
	}

	if len(summaries) == 0 {
		return &model.TemperatureSummary{}, nil
	}

	return summaries[0], nil
}

func dateFilter(start, end string) bson.M {
	filter := bson.M{}

	bounds := bson.M{}
	if start != "" {
		bounds["$gte"] = start
	}
	if end != "" {
		bounds["$lte"] = end
	}
	if len(bounds) > 0 {
		filter["date"] = bounds
	}

	return filter
}
