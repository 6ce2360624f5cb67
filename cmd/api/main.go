package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/dmehra/clinicdesk/internal/config"
	"github.com/dmehra/clinicdesk/internal/handler"
	appointmentHandler "github.com/dmehra/clinicdesk/internal/handler/appointment"
	doctorHandler "github.com/dmehra/clinicdesk/internal/handler/doctor"
	serviceHandler "github.com/dmehra/clinicdesk/internal/handler/service"
	statsHandler "github.com/dmehra/clinicdesk/internal/handler/stats"
	"github.com/dmehra/clinicdesk/internal/middleware"
	"github.com/dmehra/clinicdesk/internal/router"
	"github.com/dmehra/clinicdesk/internal/service/booking"
	"github.com/dmehra/clinicdesk/internal/service/catalog"
	"github.com/dmehra/clinicdesk/internal/service/dashboard"
	"github.com/dmehra/clinicdesk/internal/service/directory"
	"github.com/dmehra/clinicdesk/internal/storage"
	"github.com/dmehra/clinicdesk/internal/store"
	"github.com/dmehra/clinicdesk/pkg/logger"
	"github.com/dmehra/clinicdesk/pkg/metrics"
	"github.com/dmehra/clinicdesk/pkg/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	ctx := context.Background()

	m := metrics.New("clinicdesk", prometheus.DefaultRegisterer)

	st, err := storage.Open(ctx, cfg.StorageOptions())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage")
	}
	defer st.Close()
	instrumented := storage.Instrument(st, m)

	// State containers; each seeds itself when its storage key is empty.
	doctorDir, err := store.NewDoctorDirectory(ctx, instrumented)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize doctor directory")
	}
	serviceCat, err := store.NewServiceCatalog(ctx, instrumented)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize service catalog")
	}
	ledger, err := store.NewAppointmentLedger(ctx, instrumented)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize appointment ledger")
	}

	// Services
	directorySvc := directory.NewService(doctorDir)
	catalogSvc := catalog.NewService(serviceCat)
	bookingSvc := booking.NewService(ledger, doctorDir, serviceCat, m)
	dashboardSvc := dashboard.NewService(doctorDir, serviceCat, ledger)

	// Handlers
	v := validator.New()
	h := handler.NewHandler(instrumented)
	doctorH := doctorHandler.NewHandler(directorySvc, v)
	serviceH := serviceHandler.NewHandler(catalogSvc, v)
	appointmentH := appointmentHandler.NewHandler(bookingSvc, v)
	statsH := statsHandler.NewHandler(dashboardSvc)

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
	}

	r := router.NewRouter(h, router.Config{
		RateLimit:     rate.Limit(cfg.RateLimit.RPS),
		RateBurst:     cfg.RateLimit.Burst,
		CORSConfig:    corsCfg,
		MetricsPrefix: "clinicdesk_http",
		Registry:      prometheus.DefaultRegisterer,
	}, doctorH, serviceH, appointmentH, statsH)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Str("storage", cfg.Storage.Backend).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
