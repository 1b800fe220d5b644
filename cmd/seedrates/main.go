// Command seedrates converts a global rate workbook into a SQL seed file.
// Usage: go run ./cmd/seedrates -in rates.xlsx -out db/seeds/global_rates.sql
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"grampanchayat/internal/config"
	"grampanchayat/internal/logger"
	"grampanchayat/internal/seed"
)

func main() {
	in := flag.String("in", "global_rates.xlsx", "rate workbook to read")
	outPath := flag.String("out", "db/seeds/global_rates.sql", "SQL file to write")
	flag.Parse()

	log := logger.New("gp-seedrates", &config.LogConfig{Level: "info"})
	if err := run(log, *in, *outPath); err != nil {
		log.WithError(err).Fatal("seed generation failed")
	}
}

func run(log *logrus.Logger, in, outPath string) error {
	f, err := excelize.OpenFile(in)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	book, err := seed.ReadBook(f)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"construction_land": len(book.Construction),
		"depreciation":      len(book.Depreciation),
		"usage_factors":     len(book.Usage),
		"water_supply":      len(book.Water),
		"slab_tax":          len(book.Slab),
	}).Info("workbook read")

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if err := seed.WriteSQL(out, book); err != nil {
		return fmt.Errorf("write seed: %w", err)
	}

	log.WithFields(logrus.Fields{"rows": book.Len(), "out": outPath}).Info("seed written")
	return nil
}
