package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"grampanchayat/internal/config"
	"grampanchayat/internal/handler"
	"grampanchayat/internal/logger"
	"grampanchayat/internal/port"
	"grampanchayat/internal/repository/postgres"
	"grampanchayat/internal/router"
	"grampanchayat/internal/service"
	s3storage "grampanchayat/internal/storage/s3"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log := logger.New("gp-server", &cfg.Log)
	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(cfg *config.Config, log *logrus.Logger) error {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	villageRepo := postgres.NewVillageRepo(db)
	userRepo := postgres.NewUserRepo(db)
	accessRepo := postgres.NewVillageAccessRepo(db)
	propertyRepo := postgres.NewPropertyRepo(db)
	statsRepo := postgres.NewStatsRepo(db)
	rateRepos := service.RateRepos{
		Construction: postgres.NewConstructionLandRateRepo(db),
		Depreciation: postgres.NewDepreciationRateRepo(db),
		Usage:        postgres.NewUsageFactorRepo(db),
		Water:        postgres.NewWaterSupplyRateRepo(db),
		Slab:         postgres.NewSlabTaxRateRepo(db),
	}

	// Initialize storage
	var storage port.ObjectStorage
	if cfg.S3.Enabled {
		storage, err = s3storage.NewS3Client(context.Background(), &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		log.WithField("bucket", cfg.S3.Bucket).Info("register archiving enabled")
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, accessRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo, accessRepo, villageRepo)
	villageSvc := service.NewVillageService(villageRepo)
	propertySvc := service.NewPropertyService(propertyRepo, villageRepo)
	rateSvc := service.NewRateService(rateRepos)
	assessmentSvc := service.NewAssessmentService(propertyRepo, villageRepo, rateRepos, cfg.Assessment, log)
	registerSvc := service.NewRegisterService(assessmentSvc, storage)
	statsSvc := service.NewStatsService(statsRepo)

	// Setup router
	r := router.Setup(cfg, log, authSvc, router.Handlers{
		Auth:       handler.NewAuthHandler(authSvc, cfg.JWT),
		User:       handler.NewUserHandler(userSvc),
		Village:    handler.NewVillageHandler(villageSvc),
		Property:   handler.NewPropertyHandler(propertySvc),
		Rate:       handler.NewRateHandler(rateSvc),
		Assessment: handler.NewAssessmentHandler(assessmentSvc, registerSvc),
		Stats:      handler.NewStatsHandler(statsSvc),
		Health:     handler.NewHealthHandler(db),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":          cfg.Server.Port,
			"default_as_of": cfg.Assessment.DefaultAsOf,
		}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
