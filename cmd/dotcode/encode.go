package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahue/dotcode"
	"github.com/ahue/dotcode/internal/bmpwriter"
	"github.com/ahue/dotcode/internal/config"
	"github.com/ahue/dotcode/internal/plotter"
)

func runEncode(cmd *cobra.Command, args []string) error {
	cfg := config.Defaults()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	applyFlagOverrides(cfg)

	if err := setupLogging(cfg.LogLevel); err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	msg := []byte(args[0])
	slog.Debug("encoding message", "bytes", len(msg), "literal", flagLiteral)

	opts := dotcode.Options{
		Literal: flagLiteral,
		Fast:    flagFast,
		Height:  flagHeight,
		Width:   flagWidth,
	}
	if flagMask >= 0 && flagMask <= 7 {
		opts = opts.ForceMask(flagMask)
	}
	if flagShow {
		opts.Show = os.Stderr
	}

	result, err := dotcode.Encode(msg, opts)
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}
	slog.Info("encoded symbol", "rows", result.Rows, "cols", result.Cols, "mask", result.Mask, "codewords", len(result.Codewords))

	if flagPlot {
		if err := plotter.Plot(os.Stdout, result.Bitmap); err != nil {
			return fmt.Errorf("plotting symbol: %w", err)
		}
	}

	f, err := os.Create(flagOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagOut, err)
	}
	defer f.Close()

	round := strings.EqualFold(cfg.DotShape, "round")
	bmpOpts := bmpwriter.Options{
		XDim:      cfg.XDim,
		Undercut:  cfg.Undercut,
		QuietZone: cfg.QuietZone,
		Round:     round,
	}
	if err := bmpwriter.Encode(f, result.Bitmap, bmpOpts); err != nil {
		return fmt.Errorf("writing %s: %w", flagOut, err)
	}
	slog.Info("wrote symbol", "path", flagOut)
	return nil
}

// applyFlagOverrides merges any explicitly-set CLI flags over cfg, which
// starts from either config.Defaults() or a loaded file.
func applyFlagOverrides(cfg *config.Config) {
	if flagXDim > 0 {
		cfg.XDim = flagXDim
	}
	if flagUndercut >= 0 {
		cfg.Undercut = flagUndercut
	}
	if flagQuietZone >= 0 {
		cfg.QuietZone = flagQuietZone
	}
	if flagDotShape != "" {
		cfg.DotShape = flagDotShape
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
}

func setupLogging(level string) error {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
	return nil
}
