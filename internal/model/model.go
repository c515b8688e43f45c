package model

// Measurement is a single dated observation at a station.
type Measurement struct {
	Station       string   `json:"station" bson:"station"`
	Date          string   `json:"date" bson:"date"`
	Precipitation *float64 `json:"prcp" bson:"prcp"`
	Temperature   *float64 `json:"tobs" bson:"tobs"`
}

// Station contains weather station metadata.
type Station struct {
	Station   string  `json:"station" bson:"station"`
	Name      string  `json:"name" bson:"name"`
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	Elevation float64 `json:"elevation" bson:"elevation"`
}

// DateRange selects measurements by date. Empty bounds are open.
type DateRange struct {
	Station    string
	Start      string
	End        string
	Descending bool
}

// StationActivity is the number of measurements recorded by a station.
type StationActivity struct {
	Station      string `json:"station" bson:"_id"`
	Observations int64  `json:"number of observations" bson:"count"`
}

// Precipitation is a dated precipitation reading.
type Precipitation struct {
	Date          string   `json:"date"`
	Precipitation *float64 `json:"precipitation"`
}

// TemperatureObservation is a dated temperature reading.
type TemperatureObservation struct {
	Date        string   `json:"date"`
	Temperature *float64 `json:"temperature"`
}

// TemperatureSummary holds temperature aggregates, nil when nothing matched.
type TemperatureSummary struct {
	Min     *float64 `json:"min" bson:"min"`
	Average *float64 `json:"average" bson:"average"`
	Max     *float64 `json:"max" bson:"max"`
}
