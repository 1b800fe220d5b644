// Command archiveregisters renders the assessment register of every active
// village and stores it in the archive bucket.
// Usage: go run ./cmd/archiveregisters [-as-of 2025-04-01]
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"grampanchayat/internal/config"
	"grampanchayat/internal/domain"
	"grampanchayat/internal/logger"
	"grampanchayat/internal/repository/postgres"
	"grampanchayat/internal/service"
	s3storage "grampanchayat/internal/storage/s3"
)

const batchSize = 100

func main() {
	asOfFlag := flag.String("as-of", "", "assessment date (YYYY-MM-DD); empty uses the configured default")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	log := logger.New("gp-archive", &cfg.Log)

	if err := run(cfg, log, *asOfFlag); err != nil {
		log.WithError(err).Fatal("archive run failed")
	}
}

func run(cfg *config.Config, log *logrus.Logger, asOfFlag string) error {
	asOf, err := service.ParseOptionalDate(asOfFlag)
	if err != nil {
		return err
	}
	if !cfg.S3.Enabled {
		return domain.ErrStorageDisabled
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	storage, err := s3storage.NewS3Client(ctx, &cfg.S3)
	if err != nil {
		return fmt.Errorf("initializing S3 client: %w", err)
	}

	villageRepo := postgres.NewVillageRepo(db)
	rateRepos := service.RateRepos{
		Construction: postgres.NewConstructionLandRateRepo(db),
		Depreciation: postgres.NewDepreciationRateRepo(db),
		Usage:        postgres.NewUsageFactorRepo(db),
		Water:        postgres.NewWaterSupplyRateRepo(db),
		Slab:         postgres.NewSlabTaxRateRepo(db),
	}
	assessmentSvc := service.NewAssessmentService(postgres.NewPropertyRepo(db), villageRepo, rateRepos, cfg.Assessment, log)
	registerSvc := service.NewRegisterService(assessmentSvc, storage)

	archived, skipped := 0, 0
	for offset := 0; ; {
		villages, _, err := villageRepo.List(ctx, offset, batchSize)
		if err != nil {
			return fmt.Errorf("listing villages at offset %d: %w", offset, err)
		}
		if len(villages) == 0 {
			break
		}

		for i := range villages {
			v := &villages[i]
			entry := log.WithFields(logrus.Fields{"village_id": v.ID, "village": v.Name})
			if v.Status != domain.StatusActive {
				skipped++
				continue
			}
			out, err := registerSvc.Archive(ctx, v.ID, asOf)
			if err != nil {
				entry.WithError(err).Warn("archive failed")
				skipped++
				continue
			}
			entry.WithField("key", out.Key).Info("register archived")
			archived++
		}

		offset += len(villages)
	}

	log.WithFields(logrus.Fields{"archived": archived, "skipped": skipped}).Info("archive run complete")
	return nil
}
