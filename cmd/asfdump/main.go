// asfdump lists the objects stored in an ASF byte stream.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/robert-malhotra/go-asf/asf"
	"github.com/robert-malhotra/go-asf/internal/config"
	"github.com/robert-malhotra/go-asf/internal/fingerprint"
	"github.com/robert-malhotra/go-asf/internal/logging"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML config file")
		verbose    = flag.Bool("v", false, "log every decoded object")
		printCID   = flag.Bool("fingerprint", false, "print a content identifier per object")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: asfdump [-config file.toml] [-v] [-fingerprint] <file>")
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fatalf("%v", err)
		}
		cfg = loaded
	}
	if *printCID {
		cfg.Fingerprint = true
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logging.ApplyEnv(&logCfg)
	if *verbose {
		logCfg.Level = zerolog.DebugLevel
	}
	logger := logging.New("asfdump", logCfg)

	if err := run(os.Stdout, flag.Arg(0), cfg, logger); err != nil {
		logger.Error().Err(err).Msg("dump failed")
		os.Exit(1)
	}
}

func run(w io.Writer, path string, cfg config.Config, logger zerolog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}

	reg := asf.DefaultRegistry()
	for id, name := range cfg.Names {
		if err := reg.Register(asf.Descriptor{ID: id, Name: name}); err != nil {
			logger.Warn().Err(err).Msg("ignoring configured name")
		}
	}

	opts := []asf.Option{
		asf.WithRegistry(reg),
		asf.WithLogger(logger),
		asf.WithMaxObjectSize(cfg.MaxObjectSize),
	}
	if cfg.StrictSize {
		opts = append(opts, asf.WithStrictSize())
	}

	fmt.Fprintf(w, "=== %s (%d bytes) ===\n\n", path, info.Size())
	return dump(w, asf.NewScanner(f, info.Size(), opts...), reg, cfg.Fingerprint)
}

func dump(w io.Writer, s *asf.Scanner, reg *asf.Registry, withFingerprint bool) error {
	count := 0
	err := s.Walk(func(offset int64, obj asf.Object) error {
		count++
		raw, err := asf.Encode(obj)
		if err != nil {
			return fmt.Errorf("encoding object at offset %d: %w", offset, err)
		}

		fmt.Fprintf(w, "%08d  %s  %-28s %d bytes\n", offset, obj.ID(), reg.Name(obj.ID()), len(raw))

		switch o := obj.(type) {
		case asf.ErrorCorrection:
			typ, _ := o.Type()
			fmt.Fprintf(w, "          type: %s (%s)\n", typ, schemeName(typ))
			fmt.Fprintf(w, "          data: %d bytes\n", len(o.Data()))
		case asf.Unknown:
			fmt.Fprintf(w, "          body: %d bytes\n", len(o.Body()))
		}

		if withFingerprint {
			c, err := fingerprint.Of(obj)
			if err != nil {
				return fmt.Errorf("fingerprinting object at offset %d: %w", offset, err)
			}
			fmt.Fprintf(w, "          cid:  %s\n", c)
		}
		return nil
	})

	fmt.Fprintf(w, "\n%d objects\n", count)
	return err
}

func schemeName(id asf.GUID) string {
	switch id {
	case asf.NoErrorCorrection:
		return "No Error Correction"
	case asf.AudioSpread:
		return "Audio Spread"
	default:
		return "unrecognized scheme"
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "asfdump: "+format+"\n", args...)
	os.Exit(1)
}
