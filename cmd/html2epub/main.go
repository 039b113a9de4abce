package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmalkin/convert-html-to-epub/internal/converter"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html2epub <input.html>",
		Short: "Convert an HTML file to an EPUB 3 publication",
		Long: `html2epub converts a single HTML document into a valid EPUB 3 file.

The title, body content, and embedded base64 images are extracted from the
input and packaged into a conformant EPUB container.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := readCLIOptions(cmd, args)
			if err != nil {
				return err
			}

			opts.Logger.Info("converting", "input", opts.InputPath, "output", opts.OutputPath)

			p := converter.NewPipeline(opts)
			if err := p.Convert(); err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file path (default: input with .epub extension)")
	cmd.Flags().Int("max-image-width", 0, "Downscale images wider than this many pixels (0 disables optimization)")
	cmd.Flags().Int("quality", 0, "JPEG re-encode quality used when optimizing images")
	cmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")

	return cmd
}

// readCLIOptions resolves flags and arguments into conversion options.
func readCLIOptions(cmd *cobra.Command, args []string) (converter.ConvertOptions, error) {
	inputPath := args[0]

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".epub"
	}

	maxImageWidth, _ := cmd.Flags().GetInt("max-image-width")
	quality, _ := cmd.Flags().GetInt("quality")

	levelName, _ := cmd.Flags().GetString("log-level")
	level, err := parseLogLevel(levelName)
	if err != nil {
		return converter.ConvertOptions{}, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return converter.ConvertOptions{
		InputPath:     inputPath,
		OutputPath:    outputPath,
		MaxImageWidth: maxImageWidth,
		JPEGQuality:   quality,
		Logger:        logger,
	}, nil
}

func parseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %q", name)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
