// Command polefig bins pole directions on modified Lambert squares and
// renders the result as a stereographic pole figure.
//
// Directions are read as whitespace separated "x y z" triples, one per
// line. The pole figure is written as a grayscale PNG and, optionally,
// as a PDF.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/golang/geo/r3"
	"go.uber.org/zap"

	"seehuhn.de/go/lambert"
	"seehuhn.de/go/lambert/internal/config"
	"seehuhn.de/go/lambert/internal/export"
	"seehuhn.de/go/lambert/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("pole figure failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	dirs, err := loadDirections(cfg.Run.Input)
	if err != nil {
		return err
	}
	logger.Info("read directions",
		zap.String("input", cfg.Run.Input),
		zap.Int("count", len(dirs)))

	start := time.Now()
	pair, stats, err := lambert.BuildProjection(dirs, cfg.Projection.Dimension, cfg.EffectiveResolution(),
		&lambert.AccumulateOptions{
			Workers:    cfg.Run.Workers,
			Degenerate: cfg.DegeneratePolicy(),
			Logger:     logger.Log,
		})
	if err != nil {
		return err
	}
	logger.Info("projection built",
		zap.Stringer("stats", stats),
		zap.Int("dimension", pair.Dimension()),
		zap.Float64("resolution", pair.Resolution()),
		zap.Duration("elapsed", time.Since(start)))

	if cfg.Projection.MRD {
		err = pair.NormalizeToMRD()
	} else {
		err = pair.Normalize()
	}
	if err != nil {
		if pair.Empty() {
			return err
		}
		// A hemisphere without directions stays at zero.
		logger.Warn("empty hemisphere", zap.Error(err))
	}

	start = time.Now()
	img, err := lambert.Resample(pair, cfg.Image.Size, &lambert.ResampleOptions{
		Workers: cfg.Run.Workers,
		Edge:    cfg.EdgePolicy(),
	})
	if err != nil {
		return err
	}
	lo, hi := img.Range()
	logger.Info("pole figure resampled",
		zap.Int("size", img.Size),
		zap.Float64("min", lo),
		zap.Float64("max", hi),
		zap.Stringer("edges", cfg.EdgePolicy()),
		zap.Duration("elapsed", time.Since(start)))

	if cfg.Image.Output != "" {
		if err := writePNG(cfg, img, lo, hi); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.Image.Output, err)
		}
		logger.Info("wrote PNG", zap.String("path", cfg.Image.Output))
	}
	if cfg.Image.PDF != "" {
		err := export.WritePDF(cfg.Image.PDF, img, lo, hi, &export.PDFOptions{Rim: cfg.Image.Rim})
		if err != nil {
			return fmt.Errorf("writing %s: %w", cfg.Image.PDF, err)
		}
		logger.Info("wrote PDF", zap.String("path", cfg.Image.PDF))
	}
	return nil
}

func loadDirections(path string) ([]r3.Vector, error) {
	if path == "-" {
		return readDirections(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dirs, err := readDirections(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dirs, nil
}

func writePNG(cfg *config.Config, img *lambert.Image, lo, hi float64) error {
	gray := export.Upscale(export.Gray(img, lo, hi), cfg.Image.Scale)
	if cfg.Image.Rim {
		export.DrawRim(gray, float32(cfg.Image.Scale))
	}

	var w io.Writer = os.Stdout
	if cfg.Image.Output != "-" {
		f, err := os.Create(cfg.Image.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return export.WritePNG(w, gray)
}
