// Package ioprocess orchestrates the full pipeline of a run: load the
// country reference, stream the regions extract through the
// classifier, and write the report workbook. It is the only package
// that wires ingest, classify, report and the file system together.
package ioprocess

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"

	"gnsadm/internal/ioingest"
	"gnsadm/internal/ioreport"
	"gnsadm/pkg/classify"
	"gnsadm/pkg/config"
	"gnsadm/pkg/gnsadm"
)

type processor struct {
	cfg *config.Config
}

// New creates a Processor reading all paths and policy settings
// from cfg.
func New(cfg *config.Config) gnsadm.Processor {
	return &processor{cfg: cfg}
}

// Process runs the pipeline once: load, filter, deduplicate, enrich,
// report. A run either completes with a fully written workbook or
// fails without leaving a partial one behind.
func (p *processor) Process(ctx context.Context) error {
	start := time.Now()
	runID := uuid.NewString()
	slog.Info("Starting run",
		"run_id", runID,
		"regions", p.cfg.Input.RegionsFile,
		"countries", p.cfg.Input.CountriesFile,
	)

	countries, err := ioingest.LoadCountries(p.cfg.Input.CountriesFile)
	if err != nil {
		return err
	}
	gn.Info("Loaded <em>%s</em> countries from the reference table",
		humanize.Comma(int64(len(countries))))

	cls := classify.New(countries, classify.Policy{
		Display:           classify.DisplayPolicy(p.cfg.Dedup.DisplayPolicy),
		PriorityLanguages: p.cfg.Dedup.PriorityLanguages,
	})

	rows, err := ioingest.ReadRegions(p.cfg.Input.RegionsFile, cls)
	if err != nil {
		return err
	}

	stats := cls.Stats()
	slog.Info("Classified records",
		"rows", rows,
		"malformed", stats.Malformed,
		"admin_level", stats.AdminLevel,
		"displayable", stats.Displayable,
		"with_coords", stats.WithCoords,
		"unique_features", stats.UniqueFeature,
	)
	gn.Info("Read <em>%s</em> rows, kept <em>%s</em> unique divisions",
		humanize.Comma(int64(rows)),
		humanize.Comma(int64(stats.UniqueFeature)))
	if stats.Malformed > 0 {
		gn.Warn("Skipped <em>%s</em> malformed rows",
			humanize.Comma(int64(stats.Malformed)))
	}

	divs := cls.Divisions()
	if len(divs) == 0 {
		// Not an error: downstream tooling still wants the workbook
		// with its stable sheet layout.
		gn.Warn("No records survived filtering; writing an empty report")
	}

	if err = ioreport.Write(
		p.cfg.Report.File, divs, p.cfg.Report.TopCountries, runID,
	); err != nil {
		return err
	}

	duration := time.Since(start)
	slog.Info("Run complete",
		"run_id", runID,
		"workbook", p.cfg.Report.File,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info("Created <em>%s</em> in %s",
		p.cfg.Report.File, gnfmt.TimeString(duration.Seconds()))

	return nil
}
