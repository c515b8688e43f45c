package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"golang.org/x/net/html"

	"github.com/katiamach/climate-service-api/internal/logger"
	"github.com/katiamach/climate-service-api/internal/model"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go -package=mock ClimateService

// API routes.
const (
	RoutePrecipitation = "/api/v1.0/precipitation"
	RouteStations      = "/api/v1.0/stations"
	RouteTobs          = "/api/v1.0/tobs"
	RouteStart         = "/api/v1.0/{start}"
	RouteStartEnd      = "/api/v1.0/{start}/{end}"
)

var availableRoutes = []string{
	RoutePrecipitation,
	RouteStations,
	RouteTobs,
	"/api/v1.0/<start>",
	"/api/v1.0/<start>/<end>",
}

// ClimateService provides climate service methods.
type ClimateService interface {
	GetPrecipitation(ctx context.Context) ([]*model.Precipitation, error)
	GetStations(ctx context.Context) ([]*model.StationActivity, error)
	GetTemperatureObservations(ctx context.Context) ([]*model.TemperatureObservation, error)
	GetTemperatureSummary(ctx context.Context, start, end string) ([]*model.TemperatureSummary, error)
}

// ClimateServer is a server for climate data queries.
type ClimateServer struct {
	service ClimateService
}

// NewClimateServer creates new ClimateServer.
func NewClimateServer(service ClimateService) *ClimateServer {
	return &ClimateServer{service}
}

// HomeHandler lists available routes.
func (s *ClimateServer) HomeHandler(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString("Available Routes:<br/>")
	for _, route := range availableRoutes {
		b.WriteString(html.EscapeString(route))
		b.WriteString("<br/>")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(b.String())); err != nil {
		logger.Error(fmt.Errorf("failed to write routes: %w", err))
	}
}

// PrecipitationHandler handles GetPrecipitation request.
func (s *ClimateServer) PrecipitationHandler(w http.ResponseWriter, r *http.Request) {
	precipitation, err := s.service.GetPrecipitation(r.Context())
	if err != nil {
		logger.Error(fmt.Errorf("failed to get precipitation: %w", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, precipitation)
}

// StationsHandler handles GetStations request.
func (s *ClimateServer) StationsHandler(w http.ResponseWriter, r *http.Request) {
	stations, err := s.service.GetStations(r.Context())
	if err != nil {
		logger.Error(fmt.Errorf("failed to get stations: %w", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, stations)
}

// TobsHandler handles GetTemperatureObservations request.
func (s *ClimateServer) TobsHandler(w http.ResponseWriter, r *http.Request) {
	observations, err := s.service.GetTemperatureObservations(r.Context())
	if err != nil {
		logger.Error(fmt.Errorf("failed to get temperature observations: %w", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, observations)
}

// TemperatureSummaryHandler handles GetTemperatureSummary request.
// Dates are passed to the store as is, so malformed dates give empty aggregates.
func (s *ClimateServer) TemperatureSummaryHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	summary, err := s.service.GetTemperatureSummary(r.Context(), vars["start"], vars["end"])
	if err != nil {
		logger.Error(fmt.Errorf("failed to get temperature summary: %w", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, summary)
}
