// Command clipdemo renders the canvas clipping demonstration to a PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/clipdemo"
	"github.com/gogpu/clipdemo/config"
	"github.com/gogpu/clipdemo/raster"
	"github.com/gogpu/clipdemo/recording"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		output     = flag.String("output", "clipdemo.png", "output file")
		density    = flag.Float64("density", 0, "pixels per dp (overrides config)")
		probe      = flag.String("probe", "", "quick-reject candidate: inside or outside (overrides config)")
		fontPath   = flag.String("font", "", "TTF/OTF font file (default Go Regular)")
		dump       = flag.Bool("dump", false, "print the recorded command stream")
		writeCfg   = flag.String("write-config", "", "write the effective configuration to this file and exit")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		clipdemo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *density != 0 {
		cfg.Density = *density
	}
	if *probe != "" {
		cfg.Probe = *probe
	}

	if *writeCfg != "" {
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid config: %v", err)
		}
		if err := config.Save(*writeCfg, cfg); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Printf("Config written to %s\n", *writeCfg)
		return
	}

	r, err := cfg.NewRenderer()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	font, err := loadFont(*fontPath)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	defer func() { _ = font.Close() }()

	w, h := r.Layout().CanvasSize()

	if *dump {
		rec := recording.NewRecorder(w, h)
		r.Render(rec)
		if _, err := rec.FinishRecording().WriteTo(os.Stdout); err != nil {
			log.Fatalf("Failed to dump commands: %v", err)
		}
	}

	s := raster.New(w, h, raster.WithFont(font))
	r.Render(s)

	if err := s.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, w, h)
}

func loadFont(path string) (*text.FontSource, error) {
	if path == "" {
		return text.NewFontSource(goregular.TTF)
	}
	return text.NewFontSourceFromFile(path)
}
