package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/student-performance-web/config"
	httpapi "github.com/GoSim-25-26J-441/student-performance-web/internal/api/http"
	"github.com/GoSim-25-26J-441/student-performance-web/internal/bootstrap"
	"github.com/GoSim-25-26J-441/student-performance-web/internal/logging"
	predhttp "github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/http"
	"github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/repository"
	"github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/service"
	"github.com/GoSim-25-26J-441/student-performance-web/internal/retention"
	"github.com/GoSim-25-26J-441/student-performance-web/internal/session"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// inflightTTL bounds how long a crashed submission can block its session.
const inflightTTL = 2 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal("open redis", zap.Error(err))
	}
	defer rdb.Close()

	results := repository.NewResultRepository(rdb, cfg.Session.TTL, max(inflightTTL, cfg.Predictor.Timeout+10*time.Second))

	// A nil interface keeps logging off; a typed nil pointer would not.
	var (
		predictionLog service.PredictionLog
		dbPinger      httpapi.Pinger
		scheduler     *retention.Scheduler
	)
	if cfg.Database.Enabled {
		db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN()})
		if err != nil {
			logger.Fatal("open database", zap.Error(err))
		}
		defer db.Close()

		logRepo := repository.NewLogRepository(db)
		if err := logRepo.EnsureSchema(ctx); err != nil {
			logger.Fatal("ensure prediction log schema", zap.Error(err))
		}
		predictionLog, dbPinger = logRepo, logRepo

		scheduler = retention.NewScheduler(logRepo, cfg.Retention.Days, logger.Named("retention"))
		if err := scheduler.Start(cfg.Retention.Schedule); err != nil {
			logger.Fatal("start retention scheduler", zap.Error(err))
		}
		logger.Info("prediction log enabled", zap.String("db_host", cfg.Database.Host))
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.Predictor.RateLimit), cfg.Predictor.RateBurst)
	predictor := predhttp.NewPredictorClient(cfg.Predictor.BaseURL, cfg.Predictor.Timeout, limiter)
	predictions := service.NewPredictionService(predictor, results, predictionLog, logger.Named("prediction"))

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: cfg.App.ServiceName,
		Version:     cfg.App.Version,
		Predictions: predictions,
		Redis:       results,
		DB:          dbPinger,
		Session: session.Options{
			CookieName: cfg.Session.CookieName,
			Secure:     cfg.Session.Secure,
		},
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logger.Named("http"),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	idle := make(chan struct{})
	go func() {
		defer close(idle)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
		<-sigCh
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if scheduler != nil {
			scheduler.Stop(shutdownCtx)
		}
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening",
		zap.String("addr", server.Addr),
		zap.String("predictor", cfg.Predictor.BaseURL),
		zap.String("env", cfg.App.Environment),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
	<-idle
}
