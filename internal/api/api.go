package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/katiamach/climate-service-api/internal/config"
	"github.com/katiamach/climate-service-api/internal/logger"
	"github.com/katiamach/climate-service-api/internal/service"
	"github.com/katiamach/climate-service-api/internal/transport/rest/handler"
)

const shutdownTimeout = 10 * time.Second

// NewRouter registers climate API routes.
func NewRouter(svc handler.ClimateService) *mux.Router {
	server := handler.NewClimateServer(svc)

	r := mux.NewRouter()

	r.HandleFunc("/", server.HomeHandler).Methods(http.MethodGet)
	// fixed routes go before {start} so they are not taken for dates
	r.HandleFunc(handler.RoutePrecipitation, server.PrecipitationHandler).Methods(http.MethodGet)
	r.HandleFunc(handler.RouteStations, server.StationsHandler).Methods(http.MethodGet)
	r.HandleFunc(handler.RouteTobs, server.TobsHandler).Methods(http.MethodGet)
	r.HandleFunc(handler.RouteStart, server.TemperatureSummaryHandler).Methods(http.MethodGet)
	r.HandleFunc(handler.RouteStartEnd, server.TemperatureSummaryHandler).Methods(http.MethodGet)

	return r
}

// NewHandler wraps router with CORS, access logging and panic recovery.
func NewHandler(cfg *config.Config, router http.Handler, accessLog io.Writer) http.Handler {
	h := handlers.CORS(setupCorsOptions(cfg.Origin)...)(router)
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{}))(h)
	return handlers.CombinedLoggingHandler(accessLog, h)
}

// RunAPI runs climate service API until ctx is done.
func RunAPI(ctx context.Context, cfg *config.Config, repo service.Repository) error {
	accessLog := logger.Writer()
	defer accessLog.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewHandler(cfg, NewRouter(service.New(repo)), accessLog),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Starting climate service api at port %s", cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down climate service api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	logger.Error(fmt.Errorf("recovered from panic: %s", fmt.Sprint(v...)))
}
