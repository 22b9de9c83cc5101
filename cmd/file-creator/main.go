package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"file-creator/internal/bundle"
	"file-creator/internal/fixture"
	"file-creator/internal/fs"
	"file-creator/internal/manifest"
	"file-creator/internal/random"
	"file-creator/pkg/config"
)

const appName = "file-creator"

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			fmt.Print(config.Usage(appName))
			return
		}
		fmt.Fprintf(os.Stderr, "❌ %v\n\n%s", err, config.Usage(appName))
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}

func run(cfg *config.Config) error {
	payload := payloadFor(cfg)

	// Reject impossible payloads before touching the filesystem at all.
	if _, err := payload.Size(); err != nil {
		return err
	}

	if err := fs.EnsureDir(cfg.OutDir); err != nil {
		return err
	}

	if cfg.Clean {
		pattern := fmt.Sprintf("%s_*.%s", cfg.Prefix, cfg.Extension)
		removed, err := fs.RemoveMatching(cfg.OutDir, pattern)
		if err != nil {
			return err
		}
		if removed > 0 {
			fmt.Printf("🧹 Removed %d stale fixture file(s) matching %s\n", removed, pattern)
		}
	}

	gen := &fixture.Generator{
		Prefix:    cfg.Prefix,
		Extension: cfg.Extension,
		Count:     cfg.Count,
		ZeroPad:   cfg.ZeroPad,
		Payload:   payload,
		Source:    random.New(),
		Progress:  os.Stdout,
	}

	if cfg.Manifest != "" {
		gen.Manifest = manifest.New()
	}

	if cfg.Archive != "" {
		archive, err := bundle.Create(cfg.Archive)
		if err != nil {
			return err
		}
		gen.Sink = archive
	} else {
		gen.Sink = fs.NewDirSink(cfg.OutDir)
	}

	if cfg.Verbose {
		fmt.Println(banner(cfg))
	}

	start := time.Now()
	stats, runErr := gen.Run()
	closeErr := gen.Sink.Close()
	if runErr != nil {
		return runErr
	}
	if closeErr != nil {
		return closeErr
	}

	if cfg.Manifest != "" {
		if err := gen.Manifest.WriteFile(cfg.Manifest); err != nil {
			return err
		}
		fmt.Printf("📋 Manifest written to %s\n", cfg.Manifest)
	}

	if cfg.Verbose {
		elapsed := time.Since(start)
		line := fmt.Sprintf("✨ Created %d file(s), %s in %.2fs",
			stats.Files, formatBytes(stats.Bytes), elapsed.Seconds())
		if secs := elapsed.Seconds(); secs > 0 && stats.Bytes > 0 {
			line += fmt.Sprintf(" (%s)", formatRate(float64(stats.Bytes)/secs))
		}
		fmt.Println(line)
	}

	return nil
}

func payloadFor(cfg *config.Config) fixture.Payload {
	if cfg.BMP {
		return fixture.BitmapPayload{Width: cfg.Width, Height: cfg.Height}
	}
	return fixture.RandomPayload{SizeBytes: cfg.SizeBytes}
}

func banner(cfg *config.Config) string {
	dest := cfg.OutDir
	if cfg.Archive != "" {
		dest = "archive " + cfg.Archive
	}
	if cfg.BMP {
		return fmt.Sprintf("🎨 Generating %d BMP fixture(s) of %dx%d into %s", cfg.Count, cfg.Width, cfg.Height, dest)
	}
	return fmt.Sprintf("🎲 Generating %d random fixture(s) of %d bytes into %s", cfg.Count, cfg.SizeBytes, dest)
}

func formatBytes(n int64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
	)
	switch {
	case n >= GB:
		return fmt.Sprintf("%.2f GB", float64(n)/GB)
	case n >= MB:
		return fmt.Sprintf("%.2f MB", float64(n)/MB)
	case n >= KB:
		return fmt.Sprintf("%.2f KB", float64(n)/KB)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func formatRate(bytesPerSec float64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
	)
	switch {
	case bytesPerSec >= GB:
		return fmt.Sprintf("%.2f GB/s", bytesPerSec/GB)
	case bytesPerSec >= MB:
		return fmt.Sprintf("%.2f MB/s", bytesPerSec/MB)
	case bytesPerSec >= KB:
		return fmt.Sprintf("%.2f KB/s", bytesPerSec/KB)
	default:
		return fmt.Sprintf("%.0f B/s", bytesPerSec)
	}
}
