package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/tfdeleon/bdnetworking/internal/api/handlers/create_booking"
	getAvailableTimesHandler "github.com/tfdeleon/bdnetworking/internal/api/handlers/get_available_times"
	getBookingsHandler "github.com/tfdeleon/bdnetworking/internal/api/handlers/get_bookings"
	"github.com/tfdeleon/bdnetworking/internal/api/middleware"
	"github.com/tfdeleon/bdnetworking/internal/config"
	journalRepo "github.com/tfdeleon/bdnetworking/internal/infra/storage/journal"
	googleCalendarClient "github.com/tfdeleon/bdnetworking/internal/integrations/googlecalendar"
	mailerClient "github.com/tfdeleon/bdnetworking/internal/integrations/mailer"
	recaptchaClient "github.com/tfdeleon/bdnetworking/internal/integrations/recaptcha"
	createBookingUC "github.com/tfdeleon/bdnetworking/internal/usecase/create_booking"
	getAvailableTimesUC "github.com/tfdeleon/bdnetworking/internal/usecase/get_available_times"
	"github.com/tfdeleon/bdnetworking/pkg/logger"
	"github.com/tfdeleon/bdnetworking/pkg/metrics"
	"github.com/tfdeleon/bdnetworking/pkg/slotlock"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking service...")

	policy, err := cfg.WorkingHours()
	if err != nil {
		log.Fatal("Invalid working hours policy: %v", err)
	}
	log.Info("Working hours: %s-%s, %d min slots, timezone %s",
		policy.Start, policy.End, policy.SlotDurationMinutes, cfg.Booking.Timezone)

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// The calendar is the sole source of booking truth; without it the
	// service has nothing to serve, so fail fast.
	calendarCfg := googleCalendarClient.Config{
		CalendarID:   cfg.Calendar.CalendarID,
		ClientID:     cfg.Calendar.ClientID,
		ClientSecret: cfg.Calendar.ClientSecret,
		RedirectURL:  cfg.Calendar.RedirectURL,
		TokensJSON:   cfg.Calendar.TokensJSON,
		Timeout:      time.Duration(cfg.Calendar.Timeout) * time.Second,
	}
	calendar, err := googleCalendarClient.NewClient(context.Background(), calendarCfg, policy.Location, log)
	if err != nil {
		log.Fatal("Failed to initialize calendar client: %v", err)
	}
	log.Info("Calendar client initialized (calendar_id=%s)", cfg.Calendar.CalendarID)

	var verifier createBookingUC.Verifier
	if cfg.Recaptcha.Enabled {
		verifier = recaptchaClient.NewClient(
			cfg.Recaptcha.SecretKey,
			cfg.Recaptcha.VerifyURL,
			time.Duration(cfg.Recaptcha.Timeout)*time.Second,
			log,
		)
		log.Info("Captcha verification enabled")
	} else {
		log.Warn("Captcha verification is DISABLED")
	}

	var notifier createBookingUC.Notifier
	if cfg.Mailer.Enabled {
		notifier = mailerClient.New(
			cfg.Mailer.Host,
			cfg.Mailer.Port,
			cfg.Mailer.Username,
			cfg.Mailer.Password,
			cfg.Mailer.From,
			log,
		)
		log.Info("Confirmation mailer enabled (host=%s)", cfg.Mailer.Host)
	} else {
		log.Warn("Confirmation mailer is DISABLED")
	}

	// The journal database is optional: bookings live in the calendar,
	// the journal only aids reconciliation.
	var journal *journalRepo.Repository
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to open database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Journal database connected (host=%s, db=%s)", cfg.Database.Host, cfg.Database.DBName)

		journal = journalRepo.NewRepository(db)
	} else {
		log.Info("Journal database disabled")
	}

	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(calendar, policy, log)

	// Passing nil interface values keeps the optional collaborators
	// truly optional inside the use case.
	var journalDep createBookingUC.JournalRepository
	if journal != nil {
		journalDep = journal
	}

	createBookingUseCase := createBookingUC.NewUseCase(
		calendar,
		verifier,
		notifier,
		journalDep,
		getAvailableTimesUseCase,
		slotlock.New(),
		policy,
		metricsCollector,
		log,
	)

	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)

	var journalReader getBookingsHandler.JournalReader
	if journal != nil {
		journalReader = journal
	}
	getBookings := getBookingsHandler.NewHandler(journalReader, log)

	r := mux.NewRouter()
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes.
	api.HandleFunc("/available-times", getAvailableTimes.Handle).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Ops-only journal listing.
	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))
	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
