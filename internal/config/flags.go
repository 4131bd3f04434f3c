package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagIn         = flag.String("in", "", "Directions file (x y z per line), - for stdin")
	flagOut        = flag.String("out", "", "PNG output file, - for stdout")
	flagPDF        = flag.String("pdf", "", "PDF output file")
	flagDimension  = flag.Int("dimension", 0, "Lambert grid dimension")
	flagResolution = flag.Float64("resolution", 0, "Lambert cell edge length")
	flagSize       = flag.Int("size", 0, "Pole figure size in pixels")
	flagScale      = flag.Int("scale", 0, "PNG upscaling factor")
	flagWorkers    = flag.Int("workers", 0, "Number of worker goroutines")
	flagMRD        = flag.Bool("mrd", false, "Normalize to multiples of random distribution")
	flagNoMRD      = flag.Bool("prob", false, "Normalize to a probability distribution")
	flagClamp      = flag.Bool("clamp-edges", false, "Clamp instead of wrap at the grid edges")
	flagStrict     = flag.Bool("strict", false, "Fail on degenerate directions")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile    = flag.String("log-file", "", "Write logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagIn != "" {
		cfg.Run.Input = *flagIn
	}
	if *flagOut != "" {
		cfg.Image.Output = *flagOut
	}
	if *flagPDF != "" {
		cfg.Image.PDF = *flagPDF
	}
	if *flagDimension > 0 {
		cfg.Projection.Dimension = *flagDimension
	}
	if *flagResolution > 0 {
		cfg.Projection.Resolution = *flagResolution
	}
	if *flagSize > 0 {
		cfg.Image.Size = *flagSize
	}
	if *flagScale > 0 {
		cfg.Image.Scale = *flagScale
	}
	if *flagWorkers > 0 {
		cfg.Run.Workers = *flagWorkers
	}
	if *flagMRD {
		cfg.Projection.MRD = true
	}
	if *flagNoMRD {
		cfg.Projection.MRD = false
	}
	if *flagClamp {
		cfg.Projection.ClampEdges = true
	}
	if *flagStrict {
		cfg.Run.SkipDegenerate = false
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
