// Command artprint generates one deterministic piece of receipt art and
// streams it to a thermal printer. The kiosk invokes it once per session:
//
//	artprint --name "ALICE" --trait "CURIOUS" --archetype "ORACLE" --style cloudy
package main

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/gousb"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kioskworks/artprint/compose"
	"github.com/kioskworks/artprint/config"
	"github.com/kioskworks/artprint/prep"
	"github.com/kioskworks/artprint/printer"
	"github.com/kioskworks/artprint/runlog"
	"github.com/kioskworks/artprint/style"
)

var opts struct {
	name      string
	trait     string
	archetype string
	style     string

	transport  string
	serialPort string
	baudRate   int
	usbVendor  string
	usbProduct string

	seed   int64
	dryRun bool
	out    string
}

func main() {
	root := &cobra.Command{
		Use:          "artprint",
		Short:        "Generate receipt art and print it over ESC/POS",
		RunE:         run,
		SilenceUsage: true,
	}

	f := root.Flags()
	f.StringVar(&opts.name, "name", "", "participant name (printed in header)")
	f.StringVar(&opts.trait, "trait", "", "assigned trait (printed in header)")
	f.StringVar(&opts.archetype, "archetype", "", "quiz archetype (printed in header)")
	f.StringVar(&opts.style, "style", "", fmt.Sprintf("force style: one of %s", strings.Join(style.Names(), ", ")))
	f.StringVar(&opts.transport, "transport", "tcp", "printer link: tcp, serial or usb")
	f.StringVar(&opts.serialPort, "serial-port", "/dev/ttyUSB0", "serial port for --transport serial")
	f.IntVar(&opts.baudRate, "baud", 115200, "baud rate for --transport serial")
	f.StringVar(&opts.usbVendor, "usb-vendor", "04b8", "USB vendor id (hex) for --transport usb")
	f.StringVar(&opts.usbProduct, "usb-product", "0202", "USB product id (hex) for --transport usb")
	f.Int64Var(&opts.seed, "seed", -1, "force the run seed (default: derived from a fresh run id)")
	f.BoolVar(&opts.dryRun, "dry-run", false, "generate preview and log, skip the printer")
	f.StringVar(&opts.out, "out", "", "preview PNG path (default from config)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if opts.out != "" {
		cfg.PreviewPath = opts.out
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	name := headerField(opts.name, "Participant")
	trait := headerField(opts.trait, "Curious")
	archetype := headerField(opts.archetype, "")

	runID := uuid.New()
	seed := binary.BigEndian.Uint32(runID[12:16])
	if opts.seed >= 0 {
		seed = uint32(opts.seed)
	}

	recipe := style.Choose(strings.ToLower(strings.TrimSpace(opts.style)),
		rand.New(rand.NewSource(int64(seed))))

	logger.Info("print run",
		zap.String("run_id", runID.String()),
		zap.String("style", recipe.Name),
		zap.Uint32("seed", seed),
		zap.String("name", name),
		zap.String("trait", trait),
		zap.String("archetype", archetype),
	)

	art := compose.Art(int64(seed), recipe, cfg.PrinterDots, cfg.MinBaseHeight)
	canvas, err := compose.WithHeader(art, []string{name, trait, archetype}, cfg.PrinterDots, cfg.MinBaseHeight)
	if err != nil {
		return fmt.Errorf("compose header: %w", err)
	}
	prepared := prep.ForPrinter(canvas, cfg.PrinterDots, cfg.MinFinalRows)

	if err := savePreview(cfg.PreviewPath, prepared); err != nil {
		return err
	}
	logger.Info("preview saved", zap.String("path", cfg.PreviewPath))

	if err := runlog.Append(cfg.RunLogPath, runlog.Entry{
		Time:      time.Now(),
		RunID:     runID,
		Style:     recipe.Name,
		Seed:      seed,
		Name:      name,
		Trait:     trait,
		Archetype: archetype,
	}); err != nil {
		return err
	}

	if opts.dryRun {
		logger.Info("dry run, skipping printer")
		return nil
	}

	tr, err := openTransport(cfg)
	if err != nil {
		return err
	}
	p := printer.NewPrinter(tr)
	defer p.Close()

	engine := printer.NewEngine(cfg.BandRows, cfg.BaseDelay, cfg.DarknessDelay, logger)
	if err := engine.Send(p, prepared); err != nil {
		return fmt.Errorf("send to printer: %w", err)
	}
	logger.Info("sent to printer",
		zap.Int("width", prepared.Bounds().Dx()),
		zap.Int("height", prepared.Bounds().Dy()),
	)
	return nil
}

func openTransport(cfg config.Config) (printer.Transport, error) {
	switch opts.transport {
	case "tcp":
		return printer.NewTCPTransport(cfg.PrinterHost, cfg.PrinterPort, cfg.SocketTimeout)
	case "serial":
		return printer.NewSerialTransport(opts.serialPort, opts.baudRate)
	case "usb":
		vendor, err := strconv.ParseUint(opts.usbVendor, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid usb vendor id %q", opts.usbVendor)
		}
		product, err := strconv.ParseUint(opts.usbProduct, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid usb product id %q", opts.usbProduct)
		}
		return printer.NewUSBTransport(gousb.ID(vendor), gousb.ID(product))
	}
	return nil, fmt.Errorf("unknown transport %q", opts.transport)
}

// headerField trims, upper-cases and defaults one header line.
func headerField(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		v = fallback
	}
	return strings.ToUpper(v)
}

func savePreview(path string, img *image.Gray) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}
