package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dotcode [message]",
	Short: "Encode a message as a DotCode 2-D barcode",
	Long: "dotcode compacts a message, applies GF(113) Reed-Solomon error\n" +
		"correction, and renders the result as a DotCode dot-lattice symbol,\n" +
		"written as a BMP file, optionally with an ASCII preview.",
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	flagConfig    string
	flagOut       string
	flagXDim      int
	flagUndercut  int
	flagHeight    int
	flagWidth     int
	flagQuietZone int
	flagDotShape  string
	flagLiteral   bool
	flagShow      bool
	flagPlot      bool
	flagFast      bool
	flagMask      int
	flagLogLevel  string
)

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "config file (default: none, built-in defaults apply)")
	rootCmd.Flags().StringVar(&flagOut, "out", "DotCode.bmp", "output BMP file path")
	rootCmd.Flags().IntVar(&flagXDim, "xdim", 0, "X-dimension in pixels per dot (config/default: 5)")
	rootCmd.Flags().IntVar(&flagUndercut, "undercut", -1, "dot undercut in pixels, 0..xdim-1 (config/default: 0)")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "symbol height hint in dot rows")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "symbol width hint in dot columns")
	rootCmd.Flags().IntVar(&flagQuietZone, "quiet-zone", -1, "quiet zone width in dots (config/default: 3)")
	rootCmd.Flags().StringVar(&flagDotShape, "dot-shape", "", "\"round\" or \"square\" (config/default: round)")
	rootCmd.Flags().BoolVar(&flagLiteral, "literal", false, "encode every byte literally, disabling '#' escapes")
	rootCmd.Flags().BoolVar(&flagShow, "show", false, "print compaction details to stderr")
	rootCmd.Flags().BoolVar(&flagPlot, "plot", false, "print an ASCII preview of the symbol to stdout")
	rootCmd.Flags().BoolVar(&flagFast, "fast", false, "stop at the first mask whose score clears the threshold")
	rootCmd.Flags().IntVar(&flagMask, "mask", -1, "force mask 0..7 (4..7 = corner-lit variant) instead of selecting automatically")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "debug, info, warn, or error (config/default: warn)")
}
