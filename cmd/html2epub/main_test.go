package main

import (
	"context"
	"log/slog"
	"testing"
)

func TestReadCLIOptions_Defaults(t *testing.T) {
	cmd := newRootCmd()
	opts, err := readCLIOptions(cmd, []string{"./input/book.html"})
	if err != nil {
		t.Fatalf("readCLIOptions() error = %v", err)
	}

	if opts.OutputPath != "./input/book.epub" {
		t.Fatalf("OutputPath = %q, want %q", opts.OutputPath, "./input/book.epub")
	}
	if opts.MaxImageWidth != 0 {
		t.Fatalf("MaxImageWidth = %d, want 0 (optimization off by default)", opts.MaxImageWidth)
	}
	if opts.Logger == nil {
		t.Fatal("Logger is nil, want non-nil")
	}
	if !opts.Logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("Logger should be enabled at INFO level by default")
	}
}

func TestReadCLIOptions_CustomFlags(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{
		"--output", "./out/custom.epub",
		"--max-image-width", "720",
		"--quality", "90",
		"--log-level", "warn",
	}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	opts, err := readCLIOptions(cmd, []string{"./input/book.html"})
	if err != nil {
		t.Fatalf("readCLIOptions() error = %v", err)
	}

	if opts.OutputPath != "./out/custom.epub" {
		t.Fatalf("OutputPath = %q", opts.OutputPath)
	}
	if opts.MaxImageWidth != 720 {
		t.Fatalf("MaxImageWidth = %d", opts.MaxImageWidth)
	}
	if opts.JPEGQuality != 90 {
		t.Fatalf("JPEGQuality = %d", opts.JPEGQuality)
	}
	if opts.Logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("Logger should not be enabled at INFO level with --log-level warn")
	}
}

func TestReadCLIOptions_NoExtensionInput(t *testing.T) {
	cmd := newRootCmd()
	opts, err := readCLIOptions(cmd, []string{"book"})
	if err != nil {
		t.Fatalf("readCLIOptions() error = %v", err)
	}
	if opts.OutputPath != "book.epub" {
		t.Fatalf("OutputPath = %q, want %q", opts.OutputPath, "book.epub")
	}
}

func TestReadCLIOptions_BadLogLevel(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--log-level", "loud"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if _, err := readCLIOptions(cmd, []string{"book.html"}); err == nil {
		t.Fatal("readCLIOptions() expected error for unknown log level")
	}
}
