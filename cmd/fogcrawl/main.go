// Package main is the entry point for fogcrawl.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samdwyer/fogcrawl/internal/game"
	"github.com/samdwyer/fogcrawl/internal/gamedata"
	"github.com/samdwyer/fogcrawl/internal/server"
	"github.com/samdwyer/fogcrawl/internal/telemetry"
)

func main() {
	presets := gamedata.MustLoadPresetRegistry()

	configPath := flag.String("config", "", "dotenv file to read settings from")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	preset := flag.String("preset", "", "generator preset: "+strings.Join(presets.IDs(), ", "))
	width := flag.Int("width", 0, "map width")
	height := flag.Int("height", 0, "map height")
	radius := flag.Int("radius", 0, "vision radius")
	dump := flag.Bool("dump", false, "print one generated map and exit")
	sshAddr := flag.String("ssh", "", "serve over SSH on this address, e.g. :2222")
	hostKey := flag.String("hostkey", "", "SSH host key path, created when missing")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(), "\nPresets:\n")
		for _, p := range presets.All() {
			fmt.Fprintf(flag.CommandLine.Output(), "  %-8s %s (%dx%d): %s\n", p.ID, p.Name, p.Width, p.Height, p.Description)
		}
	}
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Flags win over the environment. The preset goes first so the other
	// flags can adjust it.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["preset"] {
		p, err := presets.Lookup(*preset)
		if err != nil {
			log.Fatalf("Configuration error: %v", err)
		}
		cfg.ApplyPreset(p)
	}
	if set["seed"] {
		cfg.Seed = *seed
	}
	if set["width"] {
		cfg.Gen.Width = *width
	}
	if set["height"] {
		cfg.Gen.Height = *height
	}
	if set["radius"] {
		cfg.VisionRadius = *radius
	}
	if set["ssh"] {
		cfg.SSHAddr = *sshAddr
	}
	if set["hostkey"] {
		cfg.SSHHostKey = *hostKey
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	switch {
	case *dump:
		err = runDump(ctx, cfg)
	case cfg.SSHAddr != "":
		err = runServer(ctx, cfg)
	default:
		err = runLocal(ctx, cfg)
	}
	if err != nil {
		log.Printf("Error: %v", err)
		// Deferred telemetry shutdown does not run after os.Exit.
		if shutdown != nil {
			shutdown(ctx)
		}
		os.Exit(1)
	}
}

func loadConfig(path string) (game.Config, error) {
	if path != "" {
		return game.LoadConfigFile(path)
	}
	return game.ConfigFromEnv(os.LookupEnv)
}

func runDump(ctx context.Context, cfg game.Config) error {
	s, err := game.NewSession(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Print(s.Dump())
	fmt.Fprintln(os.Stderr, s.Summary())
	return nil
}

func runServer(ctx context.Context, cfg game.Config) error {
	srv, err := server.NewSSHServer(cfg)
	if err != nil {
		return err
	}
	log.Printf("Starting fogcrawl - connect with: ssh -p <port> localhost (listening on %s)", cfg.SSHAddr)
	return srv.Start(ctx)
}

func runLocal(ctx context.Context, cfg game.Config) error {
	g, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}
	return g.Run(ctx)
}
