// Package config holds the fixed printer and layout constants, overridable
// through LM_* environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries every tunable the print pipeline needs for one job.
type Config struct {
	PrinterHost string
	PrinterPort int

	// PrinterDots is the printable width of the target device in dots.
	PrinterDots int

	MinBaseHeight int
	MinFinalRows  int

	BandRows      int
	BaseDelay     time.Duration
	DarknessDelay time.Duration
	SocketTimeout time.Duration

	PreviewPath string
	RunLogPath  string
}

// Default returns the configuration for the kiosk's Epson TM-T88.
func Default() Config {
	return Config{
		PrinterHost:   "192.168.192.168",
		PrinterPort:   9100,
		PrinterDots:   512,
		MinBaseHeight: 900,
		MinFinalRows:  900,
		BandRows:      96,
		BaseDelay:     15 * time.Millisecond,
		DarknessDelay: 60 * time.Millisecond,
		SocketTimeout: 25 * time.Second,
		PreviewPath:   "last-art-preview.png",
		RunLogPath:    "printed-art-ids.txt",
	}
}

// FromEnv returns Default with any LM_* overrides applied.
func FromEnv() Config {
	cfg := Default()
	cfg.PrinterHost = envString("LM_PRINTER_IP", cfg.PrinterHost)
	cfg.PrinterPort = envInt("LM_PRINTER_PORT", cfg.PrinterPort)
	cfg.PrinterDots = envInt("LM_PRINTER_DOTS", cfg.PrinterDots)
	cfg.MinBaseHeight = envInt("LM_MIN_BASE_HEIGHT", cfg.MinBaseHeight)
	cfg.MinFinalRows = envInt("LM_MIN_FINAL_ROWS", cfg.MinFinalRows)
	cfg.PreviewPath = envString("LM_PREVIEW_PNG", cfg.PreviewPath)
	cfg.RunLogPath = envString("LM_LOG_FILE", cfg.RunLogPath)
	return cfg
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
